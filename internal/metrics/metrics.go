// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, the generation pipeline,
// publishing and database operations.
package metrics

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "article_generator"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Pipeline metrics - track where generation requests end
	GenerationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "requests_total",
			Help:      "Total number of generation requests by result (success or error code)",
		},
		[]string{"result"},
	)

	RateLimitRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ratelimit",
			Name:      "rejections_total",
			Help:      "Total number of requests rejected by the rate limiter by window",
		},
		[]string{"window"},
	)

	RateLimitStoreErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ratelimit",
			Name:      "store_errors_total",
			Help:      "Total number of rate limit store failures (requests admitted without counting)",
		},
	)

	ModerationFindingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "moderation",
			Name:      "findings_total",
			Help:      "Total number of moderation findings by stage (input, output) and kind (violation, warning)",
		},
		[]string{"stage", "kind"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "duration_seconds",
			Help:      "External service call duration in seconds by service and outcome",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"service", "outcome"},
	)

	// Publishing metrics
	PublicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "publish",
			Name:      "requests_total",
			Help:      "Total number of publish requests by result",
		},
		[]string{"result"},
	)

	// Database metrics - track connection pool usage
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// ObserveGeneration records the final result of one generation request.
func ObserveGeneration(result string) {
	GenerationRequestsTotal.WithLabelValues(result).Inc()
}

// ObserveRateLimitRejection records a rejection by the named window.
func ObserveRateLimitRejection(window string) {
	RateLimitRejectionsTotal.WithLabelValues(window).Inc()
}

// ObserveModeration records moderation findings for a stage.
func ObserveModeration(stage string, violations, warnings int) {
	if violations > 0 {
		ModerationFindingsTotal.WithLabelValues(stage, "violation").Add(float64(violations))
	}
	if warnings > 0 {
		ModerationFindingsTotal.WithLabelValues(stage, "warning").Add(float64(warnings))
	}
}

// ObservePublication records the result of one publish request.
func ObservePublication(result string) {
	PublicationsTotal.WithLabelValues(result).Inc()
}

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}
