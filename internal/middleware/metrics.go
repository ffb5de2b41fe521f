// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"article-generator/internal/metrics"
)

// unobservedPaths are scraped or probed often enough to drown real traffic.
var unobservedPaths = map[string]bool{
	"/metrics": true,
	"/live":    true,
}

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests:
// totals by method, route and status, a duration histogram and in-flight requests.
// CORS preflights are answered before routing and are counted under "preflight".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if unobservedPaths[c.FullPath()] {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := routeLabel(c)

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

func routeLabel(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	if c.Request.Method == "OPTIONS" {
		return "preflight"
	}
	return "unmatched"
}
