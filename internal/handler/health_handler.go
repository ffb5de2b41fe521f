package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"article-generator/internal/infrastructure/database"
)

const pingTimeout = 2 * time.Second

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps    map[string]database.Pinger
	version string
}

// NewHealthHandler creates a new HealthHandler. deps maps a dependency name
// such as "database" or "redis" to its pinger; it may be empty.
func NewHealthHandler(version string, deps map[string]database.Pinger) *HealthHandler {
	if deps == nil {
		deps = map[string]database.Pinger{}
	}
	return &HealthHandler{deps: deps, version: version}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// check pings every dependency and reports whether all are healthy.
func (h *HealthHandler) check(ctx context.Context) (map[string]string, bool) {
	services := make(map[string]string, len(h.deps))
	healthy := true
	for name, dep := range h.deps {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := dep.Ping(pingCtx)
		cancel()

		if err != nil {
			services[name] = "unhealthy"
			healthy = false
			continue
		}
		services[name] = "healthy"
	}
	return services, healthy
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.check(c.Request.Context())
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  h.version,
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if _, healthy := h.check(c.Request.Context()); !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
