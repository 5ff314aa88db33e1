package stations

import (
	"context"

	"vibrovolt/internal/models"
)

// Repository yields the full station list. No pagination or partial results;
// callers treat a failed fetch as an empty state.
type Repository interface {
	List(ctx context.Context) ([]models.Station, error)
}

// MemoryRepository serves a fixed station set. It stands in for the real
// station directory and can be swapped for the Postgres implementation
// without touching consumers.
type MemoryRepository struct {
	stations []models.Station
}

// NewMemoryRepository returns a repository seeded with the Hyderabad pilot
// stations.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{stations: seedStations()}
}

// List returns a copy of the station set.
func (r *MemoryRepository) List(_ context.Context) ([]models.Station, error) {
	out := make([]models.Station, len(r.stations))
	copy(out, r.stations)
	return out, nil
}

func seedStations() []models.Station {
	return []models.Station{
		{
			ID:                "1",
			Name:              "Hitech City Super Charger",
			Location:          "HITEC City, Madhapur",
			Lat:               17.4485,
			Lng:               78.3908,
			Distance:          "2.3 km",
			Type:              "DC Fast",
			Price:             15,
			Available:         3,
			Total:             6,
			Rating:            4.8,
			OnDemand:          true,
			SupportedVehicles: []models.VehicleCategory{models.Vehicle2W, models.Vehicle3W, models.VehicleCar, models.VehicleSUV},
		},
		{
			ID:                "2",
			Name:              "Gachibowli Financial District",
			Location:          "Financial District, Gachibowli",
			Lat:               17.4239,
			Lng:               78.3480,
			Distance:          "3.1 km",
			Type:              "AC Fast",
			Price:             12,
			Available:         2,
			Total:             4,
			Rating:            4.6,
			OnDemand:          false,
			SupportedVehicles: []models.VehicleCategory{models.VehicleCar, models.VehicleSUV},
		},
		{
			ID:                "3",
			Name:              "Banjara Hills Premium",
			Location:          "Road No. 12, Banjara Hills",
			Lat:               17.4126,
			Lng:               78.4486,
			Distance:          "4.2 km",
			Type:              "DC Fast",
			Price:             18,
			Available:         1,
			Total:             3,
			Rating:            4.9,
			OnDemand:          true,
			SupportedVehicles: []models.VehicleCategory{models.Vehicle2W, models.VehicleCar, models.VehicleSUV, models.VehicleBus},
		},
		{
			ID:                "4",
			Name:              "Charminar Heritage Hub",
			Location:          "Charminar, Old City",
			Lat:               17.3616,
			Lng:               78.4747,
			Distance:          "8.5 km",
			Type:              "AC Standard",
			Price:             10,
			Available:         4,
			Total:             8,
			Rating:            4.3,
			OnDemand:          false,
			SupportedVehicles: []models.VehicleCategory{models.Vehicle2W, models.Vehicle3W, models.VehicleCar},
		},
		{
			ID:                "5",
			Name:              "Shamshabad RGIA Airport",
			Location:          "Rajiv Gandhi International Airport",
			Lat:               17.2403,
			Lng:               78.4294,
			Distance:          "25.8 km",
			Type:              "DC Ultra Fast",
			Price:             22,
			Available:         6,
			Total:             12,
			Rating:            4.7,
			OnDemand:          true,
			SupportedVehicles: []models.VehicleCategory{models.VehicleCar, models.VehicleSUV, models.VehicleBus},
		},
		{
			ID:                "6",
			Name:              "Kondapur IT Hub",
			Location:          "Kondapur, IT Corridor",
			Lat:               17.4647,
			Lng:               78.3639,
			Distance:          "1.8 km",
			Type:              "DC Fast",
			Price:             16,
			Available:         0,
			Total:             4,
			Rating:            4.5,
			OnDemand:          true,
			SupportedVehicles: []models.VehicleCategory{models.Vehicle2W, models.VehicleCar, models.VehicleSUV},
		},
	}
}
