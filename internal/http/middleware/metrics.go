// Prometheus instrumentation for the view server. Labels stay low-cardinality
// by using the registered Gin route as the path label, falling back to the
// raw URL path when no route matched.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// viewReqs counts requests by method, route path, and status code.
	viewReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of view-server HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// viewLat records request duration in seconds by method and route path.
	// Status is omitted to keep histogram cardinality down.
	viewLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of view-server HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// viewInflight gauges currently processing requests.
	viewInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_http_requests_inflight",
			Help: "Current number of in-flight view-server HTTP requests.",
		},
	)
)

func init() {
	prometheus.MustRegister(viewReqs, viewLat, viewInflight)
}

// Metrics returns a Gin middleware that instruments requests with Prometheus.
//
// Usage:
//
//	r := gin.New()
//	r.Use(middleware.Metrics())
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		viewInflight.Inc()
		defer viewInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		viewReqs.WithLabelValues(method, path, status).Inc()
		viewLat.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
