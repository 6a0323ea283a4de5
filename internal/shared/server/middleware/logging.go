package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ai-roadmap/internal/shared/metrics"
	"ai-roadmap/internal/shared/telemetry"
)

// SelectionKey is the context key handlers use to expose the resolved selection to the request log.
const SelectionKey = "selection"

// Logging emits a structured log per request and records its duration.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(status), latency.Seconds())

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if sel, ok := c.Get(SelectionKey); ok {
			fields["selection"] = sel
		}
		telemetry.Info("request.complete", fields)
	}
}
