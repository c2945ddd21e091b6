package model

import (
	"time"
)

type Article struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Source      string    `gorm:"type:varchar(128)" json:"source"`
	URL         string    `gorm:"type:varchar(512)" json:"url"`
	IsActive    bool      `gorm:"not null;index:idx_article_active" json:"isActive"`
	PublishedAt time.Time `gorm:"not null" json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Article) TableName() string {
	return "articles"
}

// ArticleWithCounts 文章及其累计阅读、分享数
type ArticleWithCounts struct {
	ID          uint64    `gorm:"column:id"`
	PublishedAt time.Time `gorm:"column:published_at"`
	ViewCount   int64     `gorm:"column:view_count"`
	ShareCount  int64     `gorm:"column:share_count"`
}
