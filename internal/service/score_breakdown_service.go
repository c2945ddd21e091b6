package service

import (
	"Trendscope/internal/api/dto"
	"Trendscope/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type ScoreBreakdownService interface {
	// GetProductScore 按视频最新快照实时计算商品得分明细，不读写排名
	GetProductScore(ctx context.Context, productID uint64) (*dto.ProductScoreDTO, error)
}

type scoreBreakdownServiceImpl struct {
	productRepo repository.ProductRepo
	clock       func() time.Time
}

func NewScoreBreakdownService(productRepo repository.ProductRepo) ScoreBreakdownService {
	return &scoreBreakdownServiceImpl{productRepo: productRepo, clock: time.Now}
}

func (s *scoreBreakdownServiceImpl) GetProductScore(ctx context.Context, productID uint64) (*dto.ProductScoreDTO, error) {
	if productID == 0 {
		return nil, ErrParamInvalid
	}

	product, err := s.productRepo.GetActiveWithVideos(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	now := s.clock()
	breakdown, scored := scoreProduct(product, now)

	result := &dto.ProductScoreDTO{
		Score:      breakdown,
		Videos:     make([]*dto.VideoScoreDTO, 0, len(scored)),
		ComputedAt: now,
	}
	if err = copier.Copy(&result.Product, product); err != nil {
		return nil, err
	}
	for _, sv := range scored {
		result.Videos = append(result.Videos, &dto.VideoScoreDTO{
			ID:           sv.Video.ID,
			YoutubeID:    sv.Video.YoutubeID,
			Title:        sv.Video.Title,
			ChannelTitle: sv.Video.ChannelTitle,
			VideoType:    sv.Video.VideoType,
			PublishedAt:  sv.Video.PublishedAt,
			Score:        sv.Breakdown,
		})
	}
	return result, nil
}
