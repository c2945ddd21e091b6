package middleware

import (
	"Trendscope/internal/pkg/response"
	"Trendscope/internal/pkg/security"
	"Trendscope/internal/pkg/util"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// CronSecretMiddleware 外部调度器以 Bearer <secret> 调用，secretHash 为 bcrypt 哈希。
// 未配置哈希时拒绝所有请求
func CronSecretMiddleware(secretHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secretHash == "" {
			log.WarnContext(c.Request.Context(), "cron secret not configured, request rejected")
			response.Fail(c, response.Unauthorized, "Unauthorized")
			c.Abort()
			return
		}

		secret, ok := util.BearerToken(c.GetHeader("Authorization"))
		if !ok || security.CheckSecret(secret, secretHash) != nil {
			response.Fail(c, response.Unauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Next()
	}
}
