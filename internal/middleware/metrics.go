package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dealer_dashboard",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// SearchQueries counts search operations by kind (orders, dealers,
	// suggestions, filters). Incremented by the search handler.
	SearchQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dealer_dashboard",
			Name:      "search_queries_total",
			Help:      "Total number of search queries",
		},
		[]string{"kind"},
	)

	// ReportsGenerated counts generated reports by kind.
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dealer_dashboard",
			Name:      "reports_generated_total",
			Help:      "Total number of generated reports",
		},
		[]string{"kind"},
	)
)

// MetricsMiddleware counts requests per route and status.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
