package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTIssuer         = "Trendscope"
	JWTExpirationTime = time.Hour * 12
)

// AdminClaims 管理端 Token 携带的身份信息
type AdminClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

func (c *AdminClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
