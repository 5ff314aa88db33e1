package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"vibrovolt/internal/booking"
)

// BookingHandlers serves slot booking.
type BookingHandlers struct {
	service *booking.Service
	logger  *zap.Logger
}

// NewBookingHandlers returns handler.
func NewBookingHandlers(service *booking.Service, logger *zap.Logger) *BookingHandlers {
	return &BookingHandlers{service: service, logger: logger}
}

// BookSlot handles POST /api/booking/slot.
func (h *BookingHandlers) BookSlot(w http.ResponseWriter, r *http.Request) {
	var req booking.SlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.service.BookSlot(req)
	if err != nil {
		if errors.Is(err, booking.ErrSlotUnavailable) {
			writeError(w, http.StatusConflict, "Selected time slot is no longer available")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"bookingId":     result.ID,
		"stationId":     result.StationID,
		"date":          result.Date,
		"timeSlot":      result.TimeSlot,
		"vehicleType":   result.VehicleType,
		"duration":      result.DurationHours,
		"estimatedCost": result.EstimatedCost,
		"status":        result.Status,
	})
}
