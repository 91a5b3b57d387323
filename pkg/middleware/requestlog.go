package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs one line when a request arrives and one when it
// completes, including elapsed time and outcome. Purely observational.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		ip := clientIP(c)

		logger.Info("incoming request",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", ip),
			zap.String(ContextTraceID, GetTraceID(c)),
		)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		if len(c.Errors) > 0 {
			logger.Error("request completed with error",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", status),
				zap.Duration("duration", duration),
				zap.String("error", c.Errors.Last().Error()),
				zap.String(ContextTraceID, GetTraceID(c)),
			)
		} else {
			logger.Info("request completed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", status),
				zap.Duration("duration", duration),
				zap.String(ContextTraceID, GetTraceID(c)),
			)
		}
	}
}

// clientIP resolves the caller address, preferring forwarding headers set by
// proxies over the raw connection address.
func clientIP(c *gin.Context) string {
	if fwd := c.Request.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if real := c.Request.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	return c.Request.RemoteAddr
}
