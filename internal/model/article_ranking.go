package model

import (
	"time"
)

type ArticleRanking struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	PeriodID     uint64    `gorm:"not null;uniqueIndex:idx_period_article,priority:1;index:idx_article_period_rank,priority:1" json:"periodId"`
	ArticleID    uint64    `gorm:"not null;uniqueIndex:idx_period_article,priority:2" json:"articleId"`
	Rank         int       `gorm:"column:rank_no;not null;index:idx_article_period_rank,priority:2" json:"rank"`
	PreviousRank *int      `json:"previousRank"`
	Score        float64   `gorm:"not null;default:0" json:"score"`
	ViewCount    int64     `gorm:"not null;default:0" json:"viewCount"`
	ShareCount   int64     `gorm:"not null;default:0" json:"shareCount"`
	CreatedAt    time.Time `json:"createdAt"`

	Article *Article `gorm:"foreignKey:ArticleID;references:ID" json:"article,omitempty"`
}

func (ArticleRanking) TableName() string {
	return "article_rankings"
}

// RankEntry 上期名次查询结果
type RankEntry struct {
	EntityID uint64 `gorm:"column:entity_id"`
	Rank     int    `gorm:"column:rank_no"`
}
