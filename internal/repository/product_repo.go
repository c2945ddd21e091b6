package repository

import (
	"Trendscope/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// metricLookupChunk 单次 IN 查询的视频数量上限
const metricLookupChunk = 500

type ProductRepo interface {
	// ListActiveWithVideos 获取所有上架商品及其有效视频，视频附带最新指标快照
	ListActiveWithVideos(ctx context.Context) ([]*model.Product, error)
	// GetActiveWithVideos 获取单个上架商品，不存在返回 nil
	GetActiveWithVideos(ctx context.Context, id uint64) (*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepo {
	return &productRepoImpl{db: db}
}

func (r *productRepoImpl) ListActiveWithVideos(ctx context.Context) ([]*model.Product, error) {
	products := make([]*model.Product, 0)
	err := r.db.WithContext(ctx).
		Preload("Videos", "is_active = ?", true).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	if err = r.attachLatestMetrics(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepoImpl) GetActiveWithVideos(ctx context.Context, id uint64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Videos", "is_active = ?", true).
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err = r.attachLatestMetrics(ctx, []*model.Product{&product}); err != nil {
		return nil, err
	}
	return &product, nil
}

// attachLatestMetrics 为每个视频挑出 collected_at 最大的快照，同一时刻多条时取 id 最大者
func (r *productRepoImpl) attachLatestMetrics(ctx context.Context, products []*model.Product) error {
	videos := make(map[uint64]*model.Video)
	ids := make([]uint64, 0)
	for _, p := range products {
		for _, v := range p.Videos {
			videos[v.ID] = v
			ids = append(ids, v.ID)
		}
	}

	for start := 0; start < len(ids); start += metricLookupChunk {
		end := start + metricLookupChunk
		if end > len(ids) {
			end = len(ids)
		}

		latest := r.db.Model(&model.VideoMetric{}).
			Select("video_id, MAX(collected_at) AS max_collected_at").
			Where("video_id IN ?", ids[start:end]).
			Group("video_id")

		metrics := make([]*model.VideoMetric, 0)
		err := r.db.WithContext(ctx).
			Table("video_metrics AS m").
			Select("m.*").
			Joins("JOIN (?) AS t ON t.video_id = m.video_id AND t.max_collected_at = m.collected_at", latest).
			Find(&metrics).Error
		if err != nil {
			return err
		}

		for _, m := range metrics {
			v, ok := videos[m.VideoID]
			if !ok {
				continue
			}
			if v.LatestMetric == nil || m.ID > v.LatestMetric.ID {
				v.LatestMetric = m
			}
		}
	}
	return nil
}
