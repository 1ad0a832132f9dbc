package router

import (
	"encoding/json"
	"net/http"

	"github.com/straye-as/pipeline-api/internal/database"
	"go.uber.org/zap"
)

func writeHealth(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// health is the liveness probe
func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// healthDB reports database reachability with pool statistics
func (rt *Router) healthDB(w http.ResponseWriter, r *http.Request) {
	stats, err := database.HealthCheckWithStats(rt.db)
	if err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		writeHealth(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"error":   err.Error(),
			"service": "database",
		})
		return
	}

	writeHealth(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "database",
		"stats": map[string]interface{}{
			"max_open_connections": stats.MaxOpenConnections,
			"open_connections":     stats.OpenConnections,
			"in_use":               stats.InUse,
			"idle":                 stats.Idle,
			"wait_count":           stats.WaitCount,
			"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		},
	})
}

// healthReady is the readiness probe: the database must answer. The board
// size is reported for information.
func (rt *Router) healthReady(w http.ResponseWriter, r *http.Request) {
	checks := map[string]interface{}{
		"board": map[string]interface{}{
			"status": "healthy",
			"leads":  rt.board.Len(),
		},
	}
	status := http.StatusOK
	overall := "healthy"

	if err := database.HealthCheck(rt.db); err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		checks["database"] = map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	} else {
		checks["database"] = map[string]interface{}{"status": "healthy"}
	}

	writeHealth(w, status, map[string]interface{}{
		"status": overall,
		"checks": checks,
	})
}
