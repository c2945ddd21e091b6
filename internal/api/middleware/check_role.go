package middleware

import (
	"Trendscope/internal/pkg/response"
	"slices"

	"github.com/gin-gonic/gin"
)

// CheckRoles 检查当前用户是否拥有至少一个指定的角色
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := c.GetStringSlice(CtxRoles)

		hasPermission := slices.ContainsFunc(requiredRoles, func(required string) bool {
			return slices.Contains(roles, required)
		})
		if !hasPermission {
			response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
			c.Abort()
			return
		}

		c.Next()
	}
}
