package models

// EmergencyType enumerates supported roadside request kinds.
type EmergencyType string

const (
	EmergencySOS           EmergencyType = "sos"
	EmergencyMobileCharger EmergencyType = "mobile_charger"
	EmergencyTowing        EmergencyType = "towing"
)

// Location is a coordinate pair with a display address.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// EmergencyRequest is a dispatched roadside assistance request.
type EmergencyRequest struct {
	ID               string        `json:"requestId"`
	Type             EmergencyType `json:"type"`
	Location         Location      `json:"location"`
	Description      string        `json:"description,omitempty"`
	EstimatedArrival int           `json:"estimatedArrival"`
	Status           string        `json:"status"`
	ContactNumber    string        `json:"contactNumber"`
}
