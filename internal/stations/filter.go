package stations

import (
	"strings"

	"vibrovolt/internal/models"
)

// Category selects a station subset on the discovery screen.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryFastDC    Category = "fast"
	CategoryAvailable Category = "available"
	CategoryOnDemand  Category = "ondemand"
)

// VehicleAll disables the vehicle predicate.
const VehicleAll models.VehicleCategory = "All"

// Filter is the full discovery filter state. The zero value matches every
// station except that an empty Vehicle means "All".
type Filter struct {
	Query    string
	Category Category
	Vehicle  models.VehicleCategory
}

// ApplyFilter returns the stations satisfying every active predicate,
// preserving input order. The input slice is never mutated; an empty result
// is valid.
func ApplyFilter(list []models.Station, f Filter) []models.Station {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Station, 0, len(list))
	for _, station := range list {
		if query != "" && !strings.Contains(strings.ToLower(station.Name), query) {
			continue
		}
		if !matchesCategory(station, f.Category) {
			continue
		}
		if !matchesVehicle(station, f.Vehicle) {
			continue
		}
		out = append(out, station)
	}
	return out
}

func matchesCategory(station models.Station, category Category) bool {
	switch category {
	case CategoryFastDC:
		// Exact type match, not fuzzy: "DC Ultra Fast" does not qualify.
		return station.Type == "DC Fast"
	case CategoryAvailable:
		return station.Available > 0
	case CategoryOnDemand:
		return station.OnDemand
	default:
		return true
	}
}

func matchesVehicle(station models.Station, vehicle models.VehicleCategory) bool {
	if vehicle == "" || vehicle == VehicleAll {
		return true
	}
	return station.SupportsVehicle(vehicle)
}
