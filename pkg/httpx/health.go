package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (RedisClient and kv.MemoryStore both qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies checked by the health endpoint.
type HealthChecks struct {
	Store   HealthChecker
	Backend string // reported as-is, e.g. "redis" or "memory"
}

type healthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Backend string `json:"backend,omitempty"`
}

// HealthHandler returns an http.HandlerFunc that pings the menu store and
// reports degraded status if it fails.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:  "ok",
			Store:   "ok",
			Backend: checks.Backend,
		}

		if checks.Store == nil {
			resp.Status = "degraded"
			resp.Store = "unconfigured"
		} else if err := checks.Store.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Store = "unreachable"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
