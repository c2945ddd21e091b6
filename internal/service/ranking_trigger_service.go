package service

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/consts"
	"Trendscope/internal/pkg/period"
	"context"
	"strings"
	"time"
)

// referenceLayouts 参考日期支持的格式，不带时区时按本地时区解析
var referenceLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// RankingLocker 同一 scope 与粒度的计算互斥
type RankingLocker interface {
	Acquire(ctx context.Context, key string) (release func(), ok bool, err error)
}

type RankingTriggerService interface {
	// Trigger 校验参数后分发到商品或文章排名计算，同类计算进行中时返回 ErrRankingBusy
	Trigger(ctx context.Context, scope string, g period.Granularity, ref time.Time) (*RankingResult, error)
}

type rankingTriggerServiceImpl struct {
	productRanking ProductRankingService
	articleRanking ArticleRankingService
	locker         RankingLocker
}

func NewRankingTriggerService(productRanking ProductRankingService, articleRanking ArticleRankingService, locker RankingLocker) RankingTriggerService {
	return &rankingTriggerServiceImpl{
		productRanking: productRanking,
		articleRanking: articleRanking,
		locker:         locker,
	}
}

// NormalizeScope 接受 product / article 等大小写形式
func NormalizeScope(s string) (string, error) {
	scope := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := scopeGranularities[scope]; !ok {
		return "", ErrInvalidScope
	}
	return scope, nil
}

// ParseGranularity 解析粒度字符串，失败返回 ErrInvalidGranularity
func ParseGranularity(s string) (period.Granularity, error) {
	g, err := period.Parse(s)
	if err != nil {
		return "", ErrInvalidGranularity
	}
	return g, nil
}

// ParseReferenceDate 空串返回零值，由计算流程取当前时间
func ParseReferenceDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range referenceLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			if err = ValidateReference(t); err != nil {
				return time.Time{}, err
			}
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidReferenceDate
}

func (s *rankingTriggerServiceImpl) Trigger(ctx context.Context, scope string, g period.Granularity, ref time.Time) (*RankingResult, error) {
	if err := ValidateGranularity(scope, g); err != nil {
		return nil, err
	}
	if !ref.IsZero() {
		if err := ValidateReference(ref); err != nil {
			return nil, err
		}
	}

	if s.locker != nil {
		release, ok, err := s.locker.Acquire(ctx, consts.RankingJobLock+scope+":"+string(g))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrRankingBusy
		}
		defer release()
	}

	if scope == model.ScopeArticle {
		return s.articleRanking.Calculate(ctx, g, ref)
	}
	return s.productRanking.Calculate(ctx, g, ref)
}
