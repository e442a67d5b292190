package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/JellyBot_Go/internal/database"
	"github.com/osse101/JellyBot_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

// HealthResponse is the body of /healthz and /readyz.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	DBLatency string `json:"db_latency,omitempty"`
}

var healthOK = HealthResponse{Status: "ok"}

// HandleHealthz answers while the process is up.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, healthOK)
	}
}

// HandleReadyz is ready only while the database answers a ping within
// readinessTimeout.
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		started := time.Now()
		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "database connection failed",
			})
			return
		}

		resp := healthOK
		resp.DBLatency = time.Since(started).Round(time.Microsecond).String()
		respondJSON(w, http.StatusOK, resp)
	}
}
