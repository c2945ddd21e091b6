package util

import (
	"strconv"
	"strings"
)

// ParseID 解析路径中的正整数 ID
func ParseID(s string) (uint64, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// BearerToken 取出 Authorization 头中的 Bearer 凭证
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
