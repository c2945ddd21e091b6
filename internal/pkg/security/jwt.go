package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("token 无效或已过期")

// GenerateToken 签发管理端 Token
func GenerateToken(secret string, userID uint64, roles []string, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}

	claims := &AdminClaims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(JWTExpirationTime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    JWTIssuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("签名 Token 失败: %w", err)
	}
	return signed, nil
}

// ValidateToken 校验签名、签发方与有效期并解析出 Claims
func ValidateToken(secret string, tokenString string) (*AdminClaims, error) {
	if secret == "" {
		return nil, ErrTokenInvalid
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(JWTIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
