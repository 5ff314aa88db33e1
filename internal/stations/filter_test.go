package stations

import (
	"context"
	"testing"

	"vibrovolt/internal/models"
)

func seedList(t *testing.T) []models.Station {
	t.Helper()
	list, err := NewMemoryRepository().List(context.Background())
	if err != nil {
		t.Fatalf("list stations: %v", err)
	}
	if len(list) != 6 {
		t.Fatalf("expected 6 seed stations, got %d", len(list))
	}
	return list
}

func ids(list []models.Station) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyFilterCategories(t *testing.T) {
	list := seedList(t)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "all is identity", filter: Filter{Category: CategoryAll}, want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "empty category is identity", filter: Filter{}, want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "fast requires exact DC Fast type", filter: Filter{Category: CategoryFastDC}, want: []string{"1", "3", "6"}},
		{name: "available requires open connector", filter: Filter{Category: CategoryAvailable}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "ondemand requires flag", filter: Filter{Category: CategoryOnDemand}, want: []string{"1", "3", "5", "6"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyFilter(list, tc.filter)
			if !equalIDs(ids(got), tc.want) {
				t.Fatalf("expected ids %v, got %v", tc.want, ids(got))
			}
		})
	}
}

func TestApplyFilterTextQuery(t *testing.T) {
	list := seedList(t)

	got := ApplyFilter(list, Filter{Query: "hItEcH"})
	if !equalIDs(ids(got), []string{"1"}) {
		t.Fatalf("case-insensitive query should match station 1, got %v", ids(got))
	}

	got = ApplyFilter(list, Filter{Query: "no such station"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

func TestApplyFilterVehicle(t *testing.T) {
	list := seedList(t)

	// Bus is supported only by stations 3 and 5.
	got := ApplyFilter(list, Filter{Vehicle: models.VehicleBus})
	if !equalIDs(ids(got), []string{"3", "5"}) {
		t.Fatalf("expected bus stations [3 5], got %v", ids(got))
	}

	// A station with no supported set never passes a specific vehicle filter.
	bare := models.Station{ID: "x", Name: "Bare", Available: 1}
	got = ApplyFilter([]models.Station{bare}, Filter{Vehicle: models.Vehicle2W})
	if len(got) != 0 {
		t.Fatalf("station with empty vehicle set must be excluded, got %v", ids(got))
	}

	// "All" and empty disable the predicate.
	got = ApplyFilter([]models.Station{bare}, Filter{Vehicle: VehicleAll})
	if len(got) != 1 {
		t.Fatalf("vehicle All must pass every station")
	}
}

func TestApplyFilterConjunctionAndOrder(t *testing.T) {
	list := seedList(t)

	got := ApplyFilter(list, Filter{Query: "h", Category: CategoryFastDC, Vehicle: models.Vehicle2W})
	// DC Fast AND name contains "h" AND supports 2W: stations 1, 3 and 6.
	if !equalIDs(ids(got), []string{"1", "3", "6"}) {
		t.Fatalf("conjunction mismatch: %v", ids(got))
	}

	// Result must be a subset in original relative order.
	pos := map[string]int{}
	for i, s := range list {
		pos[s.ID] = i
	}
	last := -1
	for _, s := range got {
		idx, ok := pos[s.ID]
		if !ok {
			t.Fatalf("station %s not from input", s.ID)
		}
		if idx <= last {
			t.Fatalf("input order not preserved: %v", ids(got))
		}
		last = idx
	}
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	list := seedList(t)
	before := ids(list)

	_ = ApplyFilter(list, Filter{Category: CategoryAvailable, Vehicle: models.VehicleCar})

	if !equalIDs(ids(list), before) {
		t.Fatalf("input slice was mutated")
	}
}
