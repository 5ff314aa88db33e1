package booking

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vibrovolt/internal/models"
)

// ErrSlotUnavailable is returned when the requested time slot is taken.
// The failure is terminal for that attempt; callers simply retry.
var ErrSlotUnavailable = errors.New("booking: selected time slot is no longer available")

const pricePerHour = 15

// SlotRequest describes a booking attempt.
type SlotRequest struct {
	StationID     string `json:"stationId"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	VehicleType   string `json:"vehicleType"`
	DurationHours int    `json:"duration"`
}

// Validate checks required fields.
func (r SlotRequest) Validate() error {
	if strings.TrimSpace(r.StationID) == "" {
		return errors.New("booking: station id required")
	}
	if strings.TrimSpace(r.Date) == "" || strings.TrimSpace(r.TimeSlot) == "" {
		return errors.New("booking: date and time slot required")
	}
	if r.DurationHours <= 0 {
		return errors.New("booking: duration must be positive")
	}
	return nil
}

// Service books charging slots. Availability comes from a placeholder check
// standing in for the real reservation backend.
type Service struct {
	logger    *zap.Logger
	available func() bool
	newID     func() string
}

// NewService builds service.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger:    logger,
		available: func() bool { return rand.Float64() > 0.2 },
		newID:     func() string { return uuid.NewString() },
	}
}

// BookSlot reserves a slot or fails with ErrSlotUnavailable.
func (s *Service) BookSlot(req SlotRequest) (models.Booking, error) {
	if err := req.Validate(); err != nil {
		return models.Booking{}, err
	}

	if !s.available() {
		s.logger.Info("slot unavailable",
			zap.String("station_id", req.StationID),
			zap.String("time_slot", req.TimeSlot),
		)
		return models.Booking{}, ErrSlotUnavailable
	}

	booking := models.Booking{
		ID:            s.newID(),
		StationID:     req.StationID,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		VehicleType:   req.VehicleType,
		DurationHours: req.DurationHours,
		EstimatedCost: float64(req.DurationHours * pricePerHour),
		Status:        "confirmed",
	}

	s.logger.Info("slot booked",
		zap.String("booking_id", booking.ID),
		zap.String("station_id", booking.StationID),
	)
	return booking, nil
}
