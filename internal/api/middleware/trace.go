package middleware

import (
	"Trendscope/internal/pkg/logger"
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// TraceMiddleware 沿用上游传入的 trace_id，没有则生成
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceHeader)
		if traceID == "" || len(traceID) > 64 {
			traceID = uuid.NewString()
		}

		c.Set(logger.TraceIDKey, traceID)
		ctx := context.WithValue(c.Request.Context(), logger.TraceIDKey, traceID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(traceHeader, traceID)
		c.Next()
	}
}
