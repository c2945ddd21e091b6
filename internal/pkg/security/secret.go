package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrSecretMismatch = errors.New("secret mismatch")

// HashSecret 生成共享密钥的 bcrypt 哈希，配置文件中只保存哈希
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("secret cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(hashed), nil
}

// CheckSecret 校验明文密钥与哈希是否匹配
func CheckSecret(secret, hash string) error {
	if secret == "" || hash == "" {
		return ErrSecretMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrSecretMismatch
	}
	return err
}
