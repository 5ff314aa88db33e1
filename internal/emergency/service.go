package emergency

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vibrovolt/internal/models"
)

const dispatchContact = "+91 98765 43210"

// Service dispatches roadside assistance requests. Dispatch itself is mocked;
// every valid request is accepted with a randomized arrival estimate.
type Service struct {
	logger *zap.Logger
	intn   func(n int) int
}

// NewService builds service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger, intn: rand.Intn}
}

// Request files an emergency request.
func (s *Service) Request(kind models.EmergencyType, location models.Location, description string) (models.EmergencyRequest, error) {
	switch kind {
	case models.EmergencySOS, models.EmergencyMobileCharger, models.EmergencyTowing:
	default:
		return models.EmergencyRequest{}, errors.New("emergency: unknown request type")
	}
	if location.Address == "" {
		return models.EmergencyRequest{}, errors.New("emergency: address required")
	}

	req := models.EmergencyRequest{
		ID:               uuid.NewString(),
		Type:             kind,
		Location:         location,
		Description:      description,
		EstimatedArrival: s.intn(30) + 15,
		Status:           "dispatched",
		ContactNumber:    dispatchContact,
	}

	s.logger.Info("emergency dispatched",
		zap.String("request_id", req.ID),
		zap.String("type", string(kind)),
	)
	return req, nil
}
