package repository

import (
	"Trendscope/internal/model"
	"context"

	"gorm.io/gorm"
)

type ArticleRankingRepo interface {
	ListRanks(ctx context.Context, periodID uint64) ([]model.RankEntry, error)
	Replace(ctx context.Context, periodID uint64, rows []*model.ArticleRanking) error
	ListByPeriod(ctx context.Context, periodID uint64, offset, limit int) ([]*model.ArticleRanking, int64, error)
}

type articleRankingRepoImpl struct {
	db *gorm.DB
}

func NewArticleRankingRepository(db *gorm.DB) ArticleRankingRepo {
	return &articleRankingRepoImpl{db: db}
}

func (r *articleRankingRepoImpl) ListRanks(ctx context.Context, periodID uint64) ([]model.RankEntry, error) {
	entries := make([]model.RankEntry, 0)
	err := r.db.WithContext(ctx).
		Model(&model.ArticleRanking{}).
		Select("article_id AS entity_id, rank_no").
		Where("period_id = ?", periodID).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *articleRankingRepoImpl) Replace(ctx context.Context, periodID uint64, rows []*model.ArticleRanking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("period_id = ?", periodID).Delete(&model.ArticleRanking{}).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, replaceBatchSize).Error
	})
}

// ListByPeriod 分页查询周期内文章排名，只包含有效文章
func (r *articleRankingRepoImpl) ListByPeriod(ctx context.Context, periodID uint64, offset, limit int) ([]*model.ArticleRanking, int64, error) {
	scoped := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&model.ArticleRanking{}).
			Joins("JOIN articles ON articles.id = article_rankings.article_id").
			Where("article_rankings.period_id = ?", periodID).
			Where("articles.is_active = ?", true)
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rankings := make([]*model.ArticleRanking, 0)
	err := scoped().
		Select("article_rankings.*").
		Preload("Article").
		Order("article_rankings.rank_no ASC").
		Offset(offset).
		Limit(limit).
		Find(&rankings).Error
	if err != nil {
		return nil, 0, err
	}
	return rankings, total, nil
}
