package service

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/period"
	"Trendscope/internal/pkg/scoring"
	"Trendscope/internal/repository"
	"context"
	"time"
)

type ArticleRankingService interface {
	// Calculate 计算 ref 所在周期的文章排名，只支持日榜与月榜
	Calculate(ctx context.Context, g period.Granularity, ref time.Time) (*RankingResult, error)
}

type articleRankingServiceImpl struct {
	runner      *rankingRunner
	articleRepo repository.ArticleRepo
	rankingRepo repository.ArticleRankingRepo
}

func NewArticleRankingService(
	periodService PeriodService,
	articleRepo repository.ArticleRepo,
	rankingRepo repository.ArticleRankingRepo,
	cache RankingCache,
	publisher RankingPublisher,
) ArticleRankingService {
	return &articleRankingServiceImpl{
		runner:      newRankingRunner(periodService, cache, publisher),
		articleRepo: articleRepo,
		rankingRepo: rankingRepo,
	}
}

func (s *articleRankingServiceImpl) Calculate(ctx context.Context, g period.Granularity, ref time.Time) (*RankingResult, error) {
	return runRanking(ctx, s.runner, g, ref, rankingRun[*model.ArticleRanking]{
		scope:         model.ScopeArticle,
		previousRanks: s.rankingRepo.ListRanks,
		candidates:    s.candidates,
		place: func(row *model.ArticleRanking, periodID uint64, rank int, previousRank *int) {
			row.PeriodID = periodID
			row.Rank = rank
			row.PreviousRank = previousRank
		},
		replace: s.rankingRepo.Replace,
	})
}

// candidates 没有任何阅读与分享的文章不参与排名
func (s *articleRankingServiceImpl) candidates(ctx context.Context, now time.Time) ([]candidate[*model.ArticleRanking], error) {
	articles, err := s.articleRepo.ListActiveWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]candidate[*model.ArticleRanking], 0, len(articles))
	for _, a := range articles {
		if a.ViewCount+a.ShareCount <= 0 {
			continue
		}
		b := scoring.CalculateArticleScore(scoring.ArticleMetrics{
			ViewCount:   a.ViewCount,
			ShareCount:  a.ShareCount,
			PublishedAt: a.PublishedAt,
		}, now)

		list = append(list, candidate[*model.ArticleRanking]{
			entityID: a.ID,
			score:    b.TotalScore,
			row: &model.ArticleRanking{
				ArticleID:  a.ID,
				Score:      b.TotalScore,
				ViewCount:  a.ViewCount,
				ShareCount: a.ShareCount,
			},
		})
	}
	return list, nil
}
