package models

import "time"

// ChargingSession identifies an in-progress charging session.
type ChargingSession struct {
	ID          string    `json:"sessionId"`
	StationID   string    `json:"stationId"`
	ConnectorID string    `json:"connectorId"`
	UserID      string    `json:"userId,omitempty"`
	StartTime   time.Time `json:"startTime"`
	Status      string    `json:"status"`
}

// SessionSnapshot carries live telemetry for an active session. Values come
// from the telemetry feed; the current feed is a placeholder generator.
type SessionSnapshot struct {
	SessionID         string  `json:"sessionId"`
	Status            string  `json:"status"`
	BatteryPercent    int     `json:"battery"`
	PowerKW           int     `json:"power"`
	Duration          string  `json:"duration"`
	EnergyDeliveredKW float64 `json:"energyDelivered"`
	Cost              float64 `json:"cost"`
	MinutesToFull     int     `json:"estimatedTimeToFull"`
}
