package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "bedir", Subsystem: "http", Name: "requests_total", Help: "HTTP requests by method, route and status."},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "bedir", Subsystem: "http", Name: "request_duration_seconds", Help: "HTTP request latency.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)
	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "bedir", Subsystem: "http", Name: "in_flight_requests", Help: "Requests currently being served."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal, RequestDuration, RequestsInFlight)
}

// GinMiddleware records per-request metrics keyed by the route pattern
// (not the raw URL, to keep cardinality bounded).
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		RequestsInFlight.Inc()
		defer RequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		RequestsTotal.With(labels).Inc()
		RequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}
