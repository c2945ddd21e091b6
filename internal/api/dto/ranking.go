package dto

import (
	"Trendscope/internal/pkg/scoring"
	"time"
)

// RankingQueryDTO 公开排名查询参数
type RankingQueryDTO struct {
	Period   string `form:"period" validate:"omitempty,oneof=daily four_hourly monthly yearly DAILY FOUR_HOURLY MONTHLY YEARLY"`
	Year     *int   `form:"year" validate:"omitempty,min=1970,max=9999"`
	Month    *int   `form:"month" validate:"omitempty,min=1,max=12"`
	Day      *int   `form:"day" validate:"omitempty,min=1,max=31"`
	Slot     *int   `form:"slot" validate:"omitempty,min=0,max=20"`
	Category string `form:"category" validate:"omitempty,max=64"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	Limit    int    `form:"limit" validate:"omitempty,min=1"`
}

type PeriodDTO struct {
	ID         uint64    `json:"id"`
	PeriodType string    `json:"periodType"`
	Year       int       `json:"year"`
	Month      *int      `json:"month"`
	Day        *int      `json:"day"`
	HourSlot   *int      `json:"hourSlot"`
	StartedAt  time.Time `json:"startedAt"`
	EndedAt    time.Time `json:"endedAt"`
}

type ProductBriefDTO struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnailUrl"`
	AffiliateURL string `json:"affiliateUrl"`
	Price        int64  `json:"price"`
}

type ProductRankingDTO struct {
	ID            uint64             `json:"id"`
	Rank          int                `json:"rank"`
	PreviousRank  *int               `json:"previousRank"`
	Score         float64            `json:"score"`
	TotalViews    int64              `json:"totalViews"`
	TotalLikes    int64              `json:"totalLikes"`
	TotalComments int64              `json:"totalComments"`
	VideoCount    int                `json:"videoCount"`
	AvgEngagement float64            `json:"avgEngagement"`
	RankChange    scoring.RankChange `json:"rankChange"`
	Product       *ProductBriefDTO   `json:"product"`
}

type ProductRankingPageDTO struct {
	Period     *PeriodDTO           `json:"period"`
	Rankings   []*ProductRankingDTO `json:"rankings"`
	Pagination Pagination           `json:"pagination"`
}

type ArticleBriefDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

type ArticleRankingDTO struct {
	ID           uint64             `json:"id"`
	Rank         int                `json:"rank"`
	PreviousRank *int               `json:"previousRank"`
	Score        float64            `json:"score"`
	ViewCount    int64              `json:"viewCount"`
	ShareCount   int64              `json:"shareCount"`
	RankChange   scoring.RankChange `json:"rankChange"`
	Article      *ArticleBriefDTO   `json:"article"`
}

type ArticleRankingPageDTO struct {
	Period     *PeriodDTO           `json:"period"`
	Rankings   []*ArticleRankingDTO `json:"rankings"`
	Pagination Pagination           `json:"pagination"`
}
