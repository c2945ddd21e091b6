package service

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/scoring"
	"time"
)

// ScoredVideo 参与商品评分的视频及其得分明细
type ScoredVideo struct {
	Video     *model.Video
	Breakdown scoring.VideoScoreBreakdown
}

// scoreProduct 用每个视频的最新快照评分，没有快照的视频不参与
func scoreProduct(p *model.Product, now time.Time) (scoring.ProductScoreBreakdown, []ScoredVideo) {
	scored := make([]ScoredVideo, 0, len(p.Videos))
	inputs := make([]scoring.VideoWithScore, 0, len(p.Videos))

	for _, v := range p.Videos {
		m := v.LatestMetric
		if m == nil {
			continue
		}

		b := scoring.CalculateVideoScore(scoring.VideoMetrics{
			ViewCount:       m.ViewCount,
			LikeCount:       m.LikeCount,
			CommentCount:    m.CommentCount,
			SubscriberCount: v.SubscriberCount,
			PublishedAt:     v.PublishedAt,
			VideoType:       scoring.VideoType(v.VideoType),
		}, now)

		scored = append(scored, ScoredVideo{Video: v, Breakdown: b})
		inputs = append(inputs, scoring.VideoWithScore{
			Score:        b.TotalScore,
			ViewCount:    m.ViewCount,
			LikeCount:    m.LikeCount,
			CommentCount: m.CommentCount,
		})
	}

	return scoring.CalculateProductScore(inputs), scored
}
