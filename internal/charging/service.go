package charging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vibrovolt/internal/models"
)

// Service runs charging session lifecycle and serves telemetry snapshots.
// Telemetry is generated data standing in for the device feed; swapping in a
// real feed only replaces the generator.
type Service struct {
	store  SessionStore
	logger *zap.Logger
	now    func() time.Time
	intn   func(n int) int
}

// NewService builds service.
func NewService(store SessionStore, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		intn:   rand.Intn,
	}
}

// Start opens a session at the given station connector.
func (s *Service) Start(ctx context.Context, stationID, connectorID, userID string) (models.ChargingSession, error) {
	if strings.TrimSpace(stationID) == "" || strings.TrimSpace(connectorID) == "" {
		return models.ChargingSession{}, errors.New("charging: station and connector ids required")
	}

	session := models.ChargingSession{
		ID:          uuid.NewString(),
		StationID:   stationID,
		ConnectorID: connectorID,
		UserID:      userID,
		StartTime:   s.now().UTC(),
		Status:      "initializing",
	}
	if err := s.store.Save(ctx, session); err != nil {
		return models.ChargingSession{}, err
	}

	s.logger.Info("charging session started",
		zap.String("session_id", session.ID),
		zap.String("station_id", stationID),
	)
	return session, nil
}

// Snapshot returns current telemetry for an active session.
func (s *Service) Snapshot(ctx context.Context, sessionID string) (models.SessionSnapshot, error) {
	if _, err := s.store.Get(ctx, sessionID); err != nil {
		return models.SessionSnapshot{}, err
	}

	return models.SessionSnapshot{
		SessionID:         sessionID,
		Status:            "charging",
		BatteryPercent:    s.intn(40) + 45,
		PowerKW:           s.intn(50) + 100,
		Duration:          fmt.Sprintf("%d:%02d", s.intn(60), s.intn(60)),
		EnergyDeliveredKW: float64(s.intn(30) + 10),
		Cost:              float64(s.intn(500) + 200),
		MinutesToFull:     s.intn(45) + 15,
	}, nil
}

// Stop closes an active session.
func (s *Service) Stop(ctx context.Context, sessionID string) error {
	if _, err := s.store.Get(ctx, sessionID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info("charging session stopped", zap.String("session_id", sessionID))
	return nil
}
