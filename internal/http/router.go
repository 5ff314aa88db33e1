package httpserver

import (
	"net/http"

	"vibrovolt/internal/http/handlers"
	"vibrovolt/internal/http/middleware"
	"vibrovolt/internal/metrics"
)

// RouterDeps collects handler dependencies.
type RouterDeps struct {
	AuthHandlers      *handlers.AuthHandlers
	StationsHandlers  *handlers.StationsHandlers
	WalletHandlers    *handlers.WalletHandlers
	BookingHandlers   *handlers.BookingHandlers
	ChargingHandlers  *handlers.ChargingHandlers
	EmergencyHandlers *handlers.EmergencyHandlers
	TelemetryWS       http.HandlerFunc
	HealthHandler     http.HandlerFunc
}

// NewRouter wires HTTP routes with middleware.
func NewRouter(deps RouterDeps, authMiddleware func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/health", method(http.MethodGet, deps.HealthHandler))
	mux.Handle("/metrics", method(http.MethodGet, metrics.Handler()))

	mux.Handle("/api/auth/login", method(http.MethodPost, http.HandlerFunc(deps.AuthHandlers.Login)))
	mux.Handle("/api/auth/register", method(http.MethodPost, http.HandlerFunc(deps.AuthHandlers.Register)))

	mux.Handle("/api/stations/nearby", method(http.MethodGet, http.HandlerFunc(deps.StationsHandlers.Nearby)))
	mux.Handle("/api/stations/status", method(http.MethodGet, http.HandlerFunc(deps.StationsHandlers.Status)))

	mux.Handle("/api/booking/slot", method(http.MethodPost, http.HandlerFunc(deps.BookingHandlers.BookSlot)))
	mux.Handle("/api/emergency/request", method(http.MethodPost, http.HandlerFunc(deps.EmergencyHandlers.Request)))

	authenticated := func(handler http.HandlerFunc) http.Handler {
		return middleware.Chain(handler, authMiddleware)
	}

	mux.Handle("/api/wallet", method(http.MethodGet, authenticated(http.HandlerFunc(deps.WalletHandlers.Get))))
	mux.Handle("/api/wallet/funds", method(http.MethodPost, authenticated(http.HandlerFunc(deps.WalletHandlers.AddFunds))))
	mux.Handle("/api/wallet/redeem", method(http.MethodPost, authenticated(http.HandlerFunc(deps.WalletHandlers.Redeem))))

	mux.Handle("/api/charging/session", authenticated(http.HandlerFunc(deps.ChargingHandlers.Session)))
	mux.Handle("/api/charging/session/stop", method(http.MethodPost, authenticated(http.HandlerFunc(deps.ChargingHandlers.Stop))))
	mux.Handle("/api/charging/stream", method(http.MethodGet, deps.TelemetryWS))

	mux.Handle("/api/profile", method(http.MethodPut, authenticated(http.HandlerFunc(deps.AuthHandlers.UpdateProfile))))

	return mux
}

func method(expected string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
