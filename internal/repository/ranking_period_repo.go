package repository

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/period"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RankingPeriodRepo interface {
	// FindOrCreate 按桶键查找周期，不存在则创建。并发调用依赖唯一索引去重
	FindOrCreate(ctx context.Context, p *model.RankingPeriod) (*model.RankingPeriod, error)
	// Find 仅查找，不存在返回 nil
	Find(ctx context.Context, scope string, key period.Key) (*model.RankingPeriod, error)
	GetByID(ctx context.Context, id uint64) (*model.RankingPeriod, error)
	// FindLatest 查找满足部分键的最近周期，用于公开查询
	FindLatest(ctx context.Context, scope string, filter PeriodFilter) (*model.RankingPeriod, error)
	ListWithCounts(ctx context.Context, scope string, periodType string, limit int) ([]*model.RankingPeriodWithCount, error)
}

// PeriodFilter 公开查询条件，Year 为 0 或 nil 字段不参与过滤
type PeriodFilter struct {
	PeriodType string
	Year       int
	Month      *int
	Day        *int
	HourSlot   *int
}

type rankingPeriodRepoImpl struct {
	db *gorm.DB
}

func NewRankingPeriodRepository(db *gorm.DB) RankingPeriodRepo {
	return &rankingPeriodRepoImpl{db: db}
}

func (r *rankingPeriodRepoImpl) FindOrCreate(ctx context.Context, p *model.RankingPeriod) (*model.RankingPeriod, error) {
	existing, err := r.Find(ctx, p.Scope, keyOf(p))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	candidate := *p
	candidate.ID = 0
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&candidate).Error
	if err != nil {
		return nil, err
	}

	// 无论本次是否插入成功，都以唯一索引上的那一行为准
	created, err := r.Find(ctx, p.Scope, keyOf(p))
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.New("ranking period vanished after insert")
	}
	return created, nil
}

func (r *rankingPeriodRepoImpl) Find(ctx context.Context, scope string, key period.Key) (*model.RankingPeriod, error) {
	var p model.RankingPeriod
	err := r.db.WithContext(ctx).
		Where("scope = ? AND period_type = ? AND year = ? AND month = ? AND day = ? AND hour_slot = ?",
			scope, string(key.Granularity), key.Year, key.Month, key.Day, key.HourSlot).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *rankingPeriodRepoImpl) GetByID(ctx context.Context, id uint64) (*model.RankingPeriod, error) {
	var p model.RankingPeriod
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *rankingPeriodRepoImpl) FindLatest(ctx context.Context, scope string, filter PeriodFilter) (*model.RankingPeriod, error) {
	q := r.db.WithContext(ctx).
		Where("scope = ? AND period_type = ?", scope, filter.PeriodType)
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Month != nil {
		q = q.Where("month = ?", *filter.Month)
	}
	if filter.Day != nil {
		q = q.Where("day = ?", *filter.Day)
	}
	if filter.HourSlot != nil {
		q = q.Where("hour_slot = ?", *filter.HourSlot)
	}

	var p model.RankingPeriod
	err := q.Order("started_at DESC").First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// ListWithCounts 最近创建的周期及其排名条数
func (r *rankingPeriodRepoImpl) ListWithCounts(ctx context.Context, scope string, periodType string, limit int) ([]*model.RankingPeriodWithCount, error) {
	rankingTable := model.ProductRanking{}.TableName()
	if scope == model.ScopeArticle {
		rankingTable = model.ArticleRanking{}.TableName()
	}

	q := r.db.WithContext(ctx).
		Table("ranking_periods AS p").
		Select("p.*, (SELECT COUNT(*) FROM "+rankingTable+" r WHERE r.period_id = p.id) AS rankings_count").
		Where("p.scope = ?", scope)
	if periodType != "" {
		q = q.Where("p.period_type = ?", periodType)
	}

	list := make([]*model.RankingPeriodWithCount, 0)
	err := q.Order("p.created_at DESC").Order("p.id DESC").Limit(limit).Scan(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func keyOf(p *model.RankingPeriod) period.Key {
	return period.Key{
		Granularity: period.Granularity(p.PeriodType),
		Year:        p.Year,
		Month:       p.Month,
		Day:         p.Day,
		HourSlot:    p.HourSlot,
	}
}
