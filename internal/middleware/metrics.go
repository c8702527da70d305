package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muhammadanas3/currency-exchange-api/internal/metrics"
)

// MetricsMiddleware records request latency per method, route and status.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
