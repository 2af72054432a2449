package handlers

//go:generate mockgen -source=healthz.go -destination=healthz_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

// Pinger checks that a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthzHandler reports whether the database is reachable.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.StatusResponse
// @Failure 503 {object} handlers.StatusResponse
// @Router /healthz [get]
func NewHealthzHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	}
}
