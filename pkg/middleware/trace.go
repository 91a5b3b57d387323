package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderTraceID carries the trace ID between client and service.
	HeaderTraceID = "X-Trace-Id"
	// ContextTraceID is the gin context key holding the trace ID.
	ContextTraceID = "trace_id"
)

// TraceID propagates an inbound trace ID or generates one, exposing it to
// handlers via the context and echoing it in the response header.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.Request.Header.Get(HeaderTraceID)
		if traceID == "" {
			traceID = uuid.New().String()
		}
		c.Set(ContextTraceID, traceID)
		c.Writer.Header().Set(HeaderTraceID, traceID)
		c.Next()
	}
}

// GetTraceID returns the trace ID stored by TraceID, or "" when absent.
func GetTraceID(c *gin.Context) string {
	return c.GetString(ContextTraceID)
}
