package stations

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestStatusServiceWithoutCache(t *testing.T) {
	service := NewStatusService(nil, zap.NewNop())
	service.now = func() time.Time { return time.Date(2024, time.December, 20, 9, 0, 0, 0, time.UTC) }
	service.intn = func(n int) int { return n - 1 }

	status, err := service.Status(context.Background(), "3")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.StationID != "3" {
		t.Fatalf("unexpected station id: %s", status.StationID)
	}
	if status.Available < 1 || status.Available > 6 {
		t.Fatalf("available out of range: %d", status.Available)
	}
	if status.Occupancy < 0 || status.Occupancy > 99 {
		t.Fatalf("occupancy out of range: %d", status.Occupancy)
	}
	if status.LastUpdated != "2024-12-20T09:00:00Z" {
		t.Fatalf("unexpected timestamp: %s", status.LastUpdated)
	}
}
