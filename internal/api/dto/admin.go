package dto

import (
	"time"
)

// RankingOverrideDTO 管理员修正名次或分数，至少提供一项
type RankingOverrideDTO struct {
	Rank  *int     `json:"rank" validate:"omitempty,min=1"`
	Score *float64 `json:"score" validate:"omitempty,min=0,max=100"`
}

type RankingCalculateDTO struct {
	Scope      string `json:"scope" binding:"required" validate:"required,oneof=PRODUCT ARTICLE product article"`
	PeriodType string `json:"periodType" binding:"required" validate:"required"`
	Date       string `json:"date" validate:"omitempty"`
}

type PeriodListQueryDTO struct {
	Scope      string `form:"scope" validate:"omitempty,oneof=PRODUCT ARTICLE product article"`
	PeriodType string `form:"periodType" validate:"omitempty"`
	Limit      int    `form:"limit" validate:"omitempty,min=1,max=200"`
}

type PeriodSummaryDTO struct {
	ID            uint64    `json:"id"`
	Scope         string    `json:"scope"`
	PeriodType    string    `json:"periodType"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Day           int       `json:"day"`
	HourSlot      int       `json:"hourSlot"`
	StartedAt     time.Time `json:"startedAt"`
	EndedAt       time.Time `json:"endedAt"`
	CreatedAt     time.Time `json:"createdAt"`
	RankingsCount int64     `json:"rankingsCount"`
}

type ProductRankingAdminDTO struct {
	ID           uint64  `json:"id"`
	PeriodID     uint64  `json:"periodId"`
	ProductID    uint64  `json:"productId"`
	Rank         int     `json:"rank"`
	PreviousRank *int    `json:"previousRank"`
	Score        float64 `json:"score"`
}
