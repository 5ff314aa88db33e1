package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"vibrovolt/internal/emergency"
	"vibrovolt/internal/models"
)

// EmergencyHandlers serves roadside assistance requests.
type EmergencyHandlers struct {
	service *emergency.Service
	logger  *zap.Logger
}

// NewEmergencyHandlers returns handler.
func NewEmergencyHandlers(service *emergency.Service, logger *zap.Logger) *EmergencyHandlers {
	return &EmergencyHandlers{service: service, logger: logger}
}

// Request handles POST /api/emergency/request.
func (h *EmergencyHandlers) Request(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type        models.EmergencyType `json:"type"`
		Location    models.Location      `json:"location"`
		Description string               `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.service.Request(req.Type, req.Location, req.Description)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"requestId":        result.ID,
		"type":             result.Type,
		"location":         result.Location,
		"description":      result.Description,
		"estimatedArrival": result.EstimatedArrival,
		"status":           result.Status,
		"contactNumber":    result.ContactNumber,
	})
}
