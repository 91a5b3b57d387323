package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/inguzdev/gitly/pkg/response"
)

// NewLimiter builds a process-local limiter; rps=0 means unlimited (nil).
func NewLimiter(rps, burst int) *rate.Limiter {
	if rps <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// RateLimit rejects requests over the limiter budget with a 429 envelope.
// A nil limiter disables the check.
func RateLimit(limiter *rate.Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow() {
			logger.Warn("rate limit exceeded",
				zap.String("path", c.Request.URL.Path),
				zap.String(ContextTraceID, GetTraceID(c)),
			)
			env := response.ErrorWith("Too many requests", &response.ErrorDetail{
				Code:    "RATE_LIMITED",
				Details: "Request rate limit exceeded. Please retry later.",
			}).WithPath(c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, env)
			return
		}
		c.Next()
	}
}
