package models

// VehicleCategory enumerates vehicle classes a station can serve.
type VehicleCategory string

const (
	Vehicle2W    VehicleCategory = "2W"
	Vehicle3W    VehicleCategory = "3W"
	VehicleCar   VehicleCategory = "Car"
	VehicleSUV   VehicleCategory = "SUV"
	VehicleTruck VehicleCategory = "Truck"
	VehicleBus   VehicleCategory = "Bus"
)

// Station describes a charging station as returned to clients. Records are
// immutable once fetched; the station service is the source of truth.
type Station struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Location          string            `json:"location"`
	Lat               float64           `json:"lat,omitempty"`
	Lng               float64           `json:"lng,omitempty"`
	Distance          string            `json:"distance"`
	Type              string            `json:"type"`
	Price             float64           `json:"price"`
	Available         int               `json:"available"`
	Total             int               `json:"total"`
	Rating            float64           `json:"rating"`
	OnDemand          bool              `json:"onDemand"`
	SupportedVehicles []VehicleCategory `json:"supportedVehicles,omitempty"`
}

// SupportsVehicle reports whether the station lists the given category.
// Stations with an empty set support nothing.
func (s Station) SupportsVehicle(v VehicleCategory) bool {
	for _, supported := range s.SupportedVehicles {
		if supported == v {
			return true
		}
	}
	return false
}

// StationStatus is a point-in-time availability snapshot for one station.
type StationStatus struct {
	StationID   string `json:"stationId"`
	Available   int    `json:"available"`
	Total       int    `json:"total"`
	LastUpdated string `json:"lastUpdated"`
	Occupancy   int    `json:"occupancy"`
	AvgWaitMins int    `json:"avgWaitTime"`
}
