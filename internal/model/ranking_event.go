package model

import (
	"time"
)

// RankingComputedEvent 一次排名计算完成后发布的事件
type RankingComputedEvent struct {
	Scope            string    `json:"scope"`
	PeriodType       string    `json:"periodType"`
	PeriodID         uint64    `json:"periodId"`
	PreviousPeriodID *uint64   `json:"previousPeriodId"`
	Rankings         int       `json:"rankings"`
	ComputedAt       time.Time `json:"computedAt"`
}
