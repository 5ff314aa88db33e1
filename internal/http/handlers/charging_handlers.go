package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"vibrovolt/internal/charging"
	"vibrovolt/internal/http/middleware"
)

// ChargingHandlers serves charging session lifecycle and telemetry.
type ChargingHandlers struct {
	service *charging.Service
	logger  *zap.Logger
}

// NewChargingHandlers returns handler.
func NewChargingHandlers(service *charging.Service, logger *zap.Logger) *ChargingHandlers {
	return &ChargingHandlers{service: service, logger: logger}
}

// Session routes POST (start) and GET (snapshot) on /api/charging/session.
func (h *ChargingHandlers) Session(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.start(w, r)
	case http.MethodGet:
		h.snapshot(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *ChargingHandlers) start(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StationID   string `json:"stationId"`
		ConnectorID string `json:"connectorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	session, err := h.service.Start(r.Context(), req.StationID, req.ConnectorID, userID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"sessionId":   session.ID,
		"stationId":   session.StationID,
		"connectorId": session.ConnectorID,
		"startTime":   session.StartTime,
		"status":      session.Status,
	})
}

func (h *ChargingHandlers) snapshot(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	snap, err := h.service.Snapshot(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, charging.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error("session snapshot failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to read session")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Stop handles POST /api/charging/session/stop.
func (h *ChargingHandlers) Stop(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.service.Stop(r.Context(), req.SessionID); err != nil {
		if errors.Is(err, charging.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to stop session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
