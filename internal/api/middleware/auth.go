package middleware

import (
	"Trendscope/internal/pkg/response"
	"Trendscope/internal/pkg/security"
	"Trendscope/internal/pkg/util"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxRoles  = "roles"
)

// AuthMiddleware 验证管理端 JWT 并将身份信息注入 Context
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := util.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(secret, tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRoles, claims.Roles)
		c.Next()
	}
}
