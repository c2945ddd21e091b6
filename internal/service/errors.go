package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid         = errors.New("参数错误")
	ErrInvalidGranularity   = errors.New("不支持的排名周期")
	ErrInvalidReferenceDate = errors.New("无效的参考日期")
	ErrInvalidScope         = errors.New("不支持的排名类型")
	ErrArticleNotFound      = errors.New("文章不存在")
	ErrProductNotFound      = errors.New("商品不存在")
	ErrRankingNotFound      = errors.New("排名记录不存在")
	ErrRankingBusy          = errors.New("排名正在计算中")
	UnauthorizedError       = errors.New("权限不足")
	ForbiddenError          = errors.New("禁止访问")
	UnExpectedError         = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrInvalidGranularity:   BadRequest,
	ErrInvalidReferenceDate: BadRequest,
	ErrInvalidScope:         BadRequest,
	ErrArticleNotFound:      NotFound,
	ErrProductNotFound:      NotFound,
	ErrRankingNotFound:      NotFound,
	ErrRankingBusy:          BadRequest,
	UnauthorizedError:       Unauthorized,
	ForbiddenError:          Forbidden,
	UnExpectedError:         InternalServerError,
}

// ResolveError 沿错误链查找已知业务错误，返回业务码与对外提示
func ResolveError(err error) (int, string, bool) {
	if code, ok := ErrorMap[err]; ok {
		return code, err.Error(), true
	}
	for known, code := range ErrorMap {
		if errors.Is(err, known) {
			return code, known.Error(), true
		}
	}
	return 0, "", false
}
