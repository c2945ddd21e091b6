package model

import (
	"time"
)

const (
	ScopeProduct = "PRODUCT"
	ScopeArticle = "ARTICLE"
)

// RankingPeriod 排名周期。未使用的键字段存 0，保证唯一索引对每个桶都生效
type RankingPeriod struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Scope      string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_period_bucket,priority:1" json:"scope"`
	PeriodType string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_period_bucket,priority:2" json:"periodType"`
	Year       int       `gorm:"not null;uniqueIndex:idx_period_bucket,priority:3" json:"year"`
	Month      int       `gorm:"not null;uniqueIndex:idx_period_bucket,priority:4" json:"month"`
	Day        int       `gorm:"not null;uniqueIndex:idx_period_bucket,priority:5" json:"day"`
	HourSlot   int       `gorm:"not null;uniqueIndex:idx_period_bucket,priority:6" json:"hourSlot"`
	StartedAt  time.Time `gorm:"not null" json:"startedAt"`
	EndedAt    time.Time `gorm:"not null" json:"endedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (RankingPeriod) TableName() string {
	return "ranking_periods"
}

// RankingPeriodWithCount 管理端周期列表
type RankingPeriodWithCount struct {
	RankingPeriod
	RankingsCount int64 `gorm:"column:rankings_count" json:"rankingsCount"`
}
