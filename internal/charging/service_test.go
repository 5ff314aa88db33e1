package charging

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestService() *Service {
	service := NewService(NewMemoryStore(), zap.NewNop())
	service.now = func() time.Time { return time.Date(2024, time.December, 20, 9, 30, 0, 0, time.UTC) }
	service.intn = func(n int) int { return n / 2 }
	return service
}

func TestSessionLifecycle(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	session, err := service.Start(ctx, "3", "2", "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.Status != "initializing" {
		t.Fatalf("expected initializing status, got %s", session.Status)
	}
	if session.ID == "" {
		t.Fatalf("expected session id")
	}

	snap, err := service.Snapshot(ctx, session.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.SessionID != session.ID || snap.Status != "charging" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.BatteryPercent < 45 || snap.BatteryPercent > 85 {
		t.Fatalf("battery out of range: %d", snap.BatteryPercent)
	}
	if snap.PowerKW < 100 || snap.PowerKW > 150 {
		t.Fatalf("power out of range: %d", snap.PowerKW)
	}

	if err := service.Stop(ctx, session.ID); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if _, err := service.Snapshot(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after stop, got %v", err)
	}
}

func TestStartValidatesIDs(t *testing.T) {
	service := newTestService()

	if _, err := service.Start(context.Background(), "", "2", ""); err == nil {
		t.Fatalf("expected error for missing station id")
	}
	if _, err := service.Start(context.Background(), "3", " ", ""); err == nil {
		t.Fatalf("expected error for missing connector id")
	}
}

func TestSnapshotUnknownSession(t *testing.T) {
	service := newTestService()

	if _, err := service.Snapshot(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := service.Stop(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on stop, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	session, err := newTestService().Start(ctx, "1", "1", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StationID != "1" {
		t.Fatalf("unexpected session: %+v", got)
	}
	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
