package model

import (
	"time"
)

type ProductRanking struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	PeriodID      uint64    `gorm:"not null;uniqueIndex:idx_period_product,priority:1;index:idx_period_rank,priority:1" json:"periodId"`
	ProductID     uint64    `gorm:"not null;uniqueIndex:idx_period_product,priority:2" json:"productId"`
	Rank          int       `gorm:"column:rank_no;not null;index:idx_period_rank,priority:2" json:"rank"`
	PreviousRank  *int      `json:"previousRank"`
	Score         float64   `gorm:"not null;default:0" json:"score"`
	TotalViews    int64     `gorm:"not null;default:0" json:"totalViews"`
	TotalLikes    int64     `gorm:"not null;default:0" json:"totalLikes"`
	TotalComments int64     `gorm:"not null;default:0" json:"totalComments"`
	VideoCount    int       `gorm:"not null;default:0" json:"videoCount"`
	AvgEngagement float64   `gorm:"not null;default:0" json:"avgEngagement"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Product *Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}

func (ProductRanking) TableName() string {
	return "product_rankings"
}
