package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const maxAuditBody = 4096

// AuditMiddleware 记录管理端与调度端的请求体、操作者和处理结果
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(reqBody))
		}
		logged := reqBody
		if len(logged) > maxAuditBody {
			logged = logged[:maxAuditBody]
		}
		startTime := time.Now()

		c.Next()

		log.InfoContext(ctx, "privileged request",
			log.String("method", c.Request.Method),
			log.String("path", c.FullPath()),
			log.String("query", c.Request.URL.RawQuery),
			log.String("req_body", string(logged)),
			log.Uint64("operator", c.GetUint64(CtxUserID)),
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
		)
	}
}
