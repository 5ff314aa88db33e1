package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"vibrovolt/internal/models"
	"vibrovolt/internal/stations"
)

// StationsHandlers serves station discovery endpoints.
type StationsHandlers struct {
	service *stations.Service
	status  *stations.StatusService
	logger  *zap.Logger
}

// NewStationsHandlers returns handler.
func NewStationsHandlers(service *stations.Service, status *stations.StatusService, logger *zap.Logger) *StationsHandlers {
	return &StationsHandlers{service: service, status: status, logger: logger}
}

// Nearby handles GET /api/stations/nearby. lat, lng and radius query params
// are accepted but not enforced. Optional q, category and vehicle params run
// the discovery filter server-side.
func (h *StationsHandlers) Nearby(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := stations.Filter{
		Query:    query.Get("q"),
		Category: stations.Category(strings.ToLower(query.Get("category"))),
		Vehicle:  models.VehicleCategory(query.Get("vehicle")),
	}

	list, err := h.service.Filtered(r.Context(), filter)
	if err != nil {
		h.logger.Error("station fetch failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "stations unavailable")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Status handles GET /api/stations/status.
func (h *StationsHandlers) Status(w http.ResponseWriter, r *http.Request) {
	stationID := r.URL.Query().Get("station_id")
	if stationID == "" {
		writeError(w, http.StatusBadRequest, "station_id is required")
		return
	}

	status, err := h.status.Status(r.Context(), stationID)
	if err != nil {
		h.logger.Error("station status failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "station status unavailable")
		return
	}

	writeJSON(w, http.StatusOK, status)
}
