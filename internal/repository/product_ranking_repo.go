package repository

import (
	"Trendscope/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// replaceBatchSize 替换排名时单批插入的行数
const replaceBatchSize = 200

type ProductRankingRepo interface {
	// ListRanks 某周期内每个商品的名次
	ListRanks(ctx context.Context, periodID uint64) ([]model.RankEntry, error)
	// Replace 在一个事务内删除周期旧排名并写入新排名
	Replace(ctx context.Context, periodID uint64, rows []*model.ProductRanking) error
	// ListByPeriod 分页查询周期排名，只包含上架商品，可按分类过滤
	ListByPeriod(ctx context.Context, periodID uint64, category string, offset, limit int) ([]*model.ProductRanking, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductRanking, error)
	// UpdateOverride 管理员手动修正名次或分数
	UpdateOverride(ctx context.Context, id uint64, updates map[string]interface{}) error
}

type productRankingRepoImpl struct {
	db *gorm.DB
}

func NewProductRankingRepository(db *gorm.DB) ProductRankingRepo {
	return &productRankingRepoImpl{db: db}
}

func (r *productRankingRepoImpl) ListRanks(ctx context.Context, periodID uint64) ([]model.RankEntry, error) {
	entries := make([]model.RankEntry, 0)
	err := r.db.WithContext(ctx).
		Model(&model.ProductRanking{}).
		Select("product_id AS entity_id, rank_no").
		Where("period_id = ?", periodID).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *productRankingRepoImpl) Replace(ctx context.Context, periodID uint64, rows []*model.ProductRanking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("period_id = ?", periodID).Delete(&model.ProductRanking{}).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, replaceBatchSize).Error
	})
}

func (r *productRankingRepoImpl) ListByPeriod(ctx context.Context, periodID uint64, category string, offset, limit int) ([]*model.ProductRanking, int64, error) {
	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).
			Model(&model.ProductRanking{}).
			Joins("JOIN products ON products.id = product_rankings.product_id").
			Where("product_rankings.period_id = ?", periodID).
			Where("products.is_active = ?", true)
		if category != "" {
			q = q.Where("products.category = ?", category)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rankings := make([]*model.ProductRanking, 0)
	err := scoped().
		Select("product_rankings.*").
		Preload("Product").
		Order("product_rankings.rank_no ASC").
		Offset(offset).
		Limit(limit).
		Find(&rankings).Error
	if err != nil {
		return nil, 0, err
	}
	return rankings, total, nil
}

func (r *productRankingRepoImpl) GetByID(ctx context.Context, id uint64) (*model.ProductRanking, error) {
	var ranking model.ProductRanking
	err := r.db.WithContext(ctx).First(&ranking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ranking, nil
}

func (r *productRankingRepoImpl) UpdateOverride(ctx context.Context, id uint64, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.ProductRanking{}).
		Where("id = ?", id).
		Updates(updates).Error
}
