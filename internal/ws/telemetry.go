package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"vibrovolt/internal/charging"
)

// TelemetryServer upgrades HTTP connections and pushes session telemetry
// snapshots until the client disconnects or the session disappears.
type TelemetryServer struct {
	service  *charging.Service
	logger   *zap.Logger
	interval time.Duration
	upgrader websocket.Upgrader
}

// NewTelemetryServer builds the server.
func NewTelemetryServer(service *charging.Service, interval time.Duration, logger *zap.Logger) *TelemetryServer {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &TelemetryServer{
		service:  service,
		logger:   logger,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleWS is the HTTP handler for /api/charging/stream.
func (s *TelemetryServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	go s.stream(ctx, cancel, conn, sessionID)
	s.logger.Info("telemetry stream opened", zap.String("session_id", sessionID))
}

func (s *TelemetryServer) stream(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, sessionID string) {
	defer cancel()
	defer conn.Close()

	// Reader goroutine drains control frames and detects client disconnect.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, err := s.service.Snapshot(ctx, sessionID)
			if err != nil {
				s.logger.Info("telemetry stream closed", zap.String("session_id", sessionID), zap.Error(err))
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				return
			}
		}
	}
}
