package service

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/period"
	"Trendscope/internal/repository"
	"context"
	"fmt"
	"time"
)

var scopeGranularities = map[string][]period.Granularity{
	model.ScopeProduct: {period.FourHourly, period.Daily, period.Monthly, period.Yearly},
	model.ScopeArticle: {period.Daily, period.Monthly},
}

type PeriodService interface {
	// Resolve 找到或创建 ref 所在的周期，返回周期记录与对应的桶
	Resolve(ctx context.Context, scope string, g period.Granularity, ref time.Time) (*model.RankingPeriod, period.Bucket, error)
	// FindPrevious 查找紧邻的上一周期，从未生成过时返回 nil
	FindPrevious(ctx context.Context, scope string, current period.Bucket) (*model.RankingPeriod, error)
}

type periodServiceImpl struct {
	periodRepo repository.RankingPeriodRepo
}

func NewPeriodService(periodRepo repository.RankingPeriodRepo) PeriodService {
	return &periodServiceImpl{periodRepo: periodRepo}
}

// ValidateGranularity 校验 scope 与粒度组合，文章只支持日榜与月榜
func ValidateGranularity(scope string, g period.Granularity) error {
	supported, ok := scopeGranularities[scope]
	if !ok {
		return ErrInvalidScope
	}
	for _, s := range supported {
		if s == g {
			return nil
		}
	}
	return ErrInvalidGranularity
}

// ValidateReference 参考时间必须落在可表示的年份内
func ValidateReference(ref time.Time) error {
	if ref.IsZero() || ref.Year() < 1970 || ref.Year() > 9999 {
		return ErrInvalidReferenceDate
	}
	return nil
}

func (s *periodServiceImpl) Resolve(ctx context.Context, scope string, g period.Granularity, ref time.Time) (*model.RankingPeriod, period.Bucket, error) {
	if err := ValidateGranularity(scope, g); err != nil {
		return nil, period.Bucket{}, err
	}
	if err := ValidateReference(ref); err != nil {
		return nil, period.Bucket{}, err
	}

	bucket, err := period.Resolve(g, ref)
	if err != nil {
		return nil, period.Bucket{}, ErrInvalidGranularity
	}

	record, err := s.periodRepo.FindOrCreate(ctx, &model.RankingPeriod{
		Scope:      scope,
		PeriodType: string(bucket.Granularity),
		Year:       bucket.Year,
		Month:      bucket.Month,
		Day:        bucket.Day,
		HourSlot:   bucket.HourSlot,
		StartedAt:  bucket.StartedAt,
		EndedAt:    bucket.EndedAt,
	})
	if err != nil {
		return nil, period.Bucket{}, fmt.Errorf("resolve %s %s period: %w", scope, g, err)
	}
	return record, bucket, nil
}

func (s *periodServiceImpl) FindPrevious(ctx context.Context, scope string, current period.Bucket) (*model.RankingPeriod, error) {
	prev, err := period.Previous(current)
	if err != nil {
		return nil, ErrInvalidGranularity
	}

	record, err := s.periodRepo.Find(ctx, scope, prev.Key())
	if err != nil {
		return nil, fmt.Errorf("find previous %s %s period: %w", scope, current.Granularity, err)
	}
	return record, nil
}
