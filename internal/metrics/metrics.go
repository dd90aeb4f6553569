package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketplace",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Name:      "bookings_created_total",
			Help:      "Bookings created by service type.",
		},
		[]string{"service"},
	)

	statusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Name:      "booking_status_changes_total",
			Help:      "Booking status transitions by target status.",
		},
		[]string{"status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			bookingsCreated,
			statusChanges,
		)
	})
}

// IncBookingCreated increments the creation counter for a service tag.
func IncBookingCreated(service string) {
	bookingsCreated.WithLabelValues(service).Inc()
}

// IncStatusChange increments the transition counter for a target status.
func IncStatusChange(status string) {
	statusChanges.WithLabelValues(status).Inc()
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequests.WithLabelValues(
			route,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
