package service

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/period"
	"Trendscope/internal/repository"
	"context"
	"time"
)

type ProductRankingService interface {
	// Calculate 计算 ref 所在周期的商品排名，ref 为零值时取当前时间
	Calculate(ctx context.Context, g period.Granularity, ref time.Time) (*RankingResult, error)
}

type productRankingServiceImpl struct {
	runner      *rankingRunner
	productRepo repository.ProductRepo
	rankingRepo repository.ProductRankingRepo
}

func NewProductRankingService(
	periodService PeriodService,
	productRepo repository.ProductRepo,
	rankingRepo repository.ProductRankingRepo,
	cache RankingCache,
	publisher RankingPublisher,
) ProductRankingService {
	return &productRankingServiceImpl{
		runner:      newRankingRunner(periodService, cache, publisher),
		productRepo: productRepo,
		rankingRepo: rankingRepo,
	}
}

func (s *productRankingServiceImpl) Calculate(ctx context.Context, g period.Granularity, ref time.Time) (*RankingResult, error) {
	return runRanking(ctx, s.runner, g, ref, rankingRun[*model.ProductRanking]{
		scope:         model.ScopeProduct,
		previousRanks: s.rankingRepo.ListRanks,
		candidates:    s.candidates,
		place: func(row *model.ProductRanking, periodID uint64, rank int, previousRank *int) {
			row.PeriodID = periodID
			row.Rank = rank
			row.PreviousRank = previousRank
		},
		replace: s.rankingRepo.Replace,
	})
}

func (s *productRankingServiceImpl) candidates(ctx context.Context, now time.Time) ([]candidate[*model.ProductRanking], error) {
	products, err := s.productRepo.ListActiveWithVideos(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]candidate[*model.ProductRanking], 0, len(products))
	for _, p := range products {
		b, _ := scoreProduct(p, now)
		if b.VideoCount == 0 {
			continue
		}
		list = append(list, candidate[*model.ProductRanking]{
			entityID: p.ID,
			score:    b.Score,
			row: &model.ProductRanking{
				ProductID:     p.ID,
				Score:         b.Score,
				TotalViews:    b.TotalViews,
				TotalLikes:    b.TotalLikes,
				TotalComments: b.TotalComments,
				VideoCount:    b.VideoCount,
				AvgEngagement: b.AvgEngagement,
			},
		})
	}
	return list, nil
}
