package models

// Booking confirms a reserved charging slot.
type Booking struct {
	ID            string  `json:"bookingId"`
	StationID     string  `json:"stationId"`
	Date          string  `json:"date"`
	TimeSlot      string  `json:"timeSlot"`
	VehicleType   string  `json:"vehicleType"`
	DurationHours int     `json:"duration"`
	EstimatedCost float64 `json:"estimatedCost"`
	Status        string  `json:"status"`
}
