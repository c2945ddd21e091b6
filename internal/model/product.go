package model

import (
	"time"
)

type Product struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Category     string    `gorm:"type:varchar(64);index:idx_product_category" json:"category"`
	ThumbnailURL string    `gorm:"type:varchar(512)" json:"thumbnailUrl"`
	AffiliateURL string    `gorm:"type:varchar(512)" json:"affiliateUrl"`
	Price        int64     `gorm:"not null;default:0" json:"price"`
	IsActive     bool      `gorm:"not null;index:idx_product_active" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// 关联关系
	Videos []*Video `gorm:"foreignKey:ProductID;references:ID" json:"videos,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
