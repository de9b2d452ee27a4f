package middleware

import (
	"time"

	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs every request with its outcome. Authenticated
// requests carry the caller's account id so donation activity can be
// traced per donor.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		// Process request
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := map[string]any{
			"method":     method,
			"path":       path,
			"query":      c.Request.URL.RawQuery,
			"status":     statusCode,
			"latency_ms": latency.Milliseconds(),
			"ip":         ip,
			"request_id": c.GetHeader("X-Request-ID"),
			"errors":     c.Errors.Errors(),
		}

		// Present once the auth middleware has run
		if caller, ok := CallerIdentity(c); ok {
			fields["caller_id"] = caller.UserID
			fields["caller_role"] = string(caller.Role)
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request failed", fields)
		case statusCode >= 400:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
