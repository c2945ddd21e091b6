package dto

import (
	"Trendscope/internal/pkg/scoring"
	"time"
)

type VideoScoreDTO struct {
	ID           uint64                      `json:"id"`
	YoutubeID    string                      `json:"youtubeId"`
	Title        string                      `json:"title"`
	ChannelTitle string                      `json:"channelTitle"`
	VideoType    string                      `json:"videoType"`
	PublishedAt  time.Time                   `json:"publishedAt"`
	Score        scoring.VideoScoreBreakdown `json:"score"`
}

// ProductScoreDTO 商品实时得分明细
type ProductScoreDTO struct {
	Product    ProductBriefDTO               `json:"product"`
	Score      scoring.ProductScoreBreakdown `json:"score"`
	Videos     []*VideoScoreDTO              `json:"videos"`
	ComputedAt time.Time                     `json:"computedAt"`
}
