package middleware

import (
	"casemonitor/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceHeader carries the request trace id in and out
const TraceHeader = "X-Request-ID"

// Trace tags the request context with a trace id so every log line of the
// request can be correlated. An incoming X-Request-ID is reused.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(TraceHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), id))
		c.Header(TraceHeader, id)
		c.Next()
	}
}
