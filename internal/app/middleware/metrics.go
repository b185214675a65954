package middleware

import (
	"strconv"
	"time"

	"github.com/estatedesk/lead-notification-service/internal/observability/metrics"
	"github.com/gin-gonic/gin"
)

// RequestMetrics records per-endpoint request counts and durations.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}
