package model

import (
	"time"
)

type ArticleView struct {
	ID        uint64    `gorm:"primaryKey"`
	ArticleID uint64    `gorm:"not null;index:idx_article_view_article" json:"articleId"`
	ViewedAt  time.Time `gorm:"not null" json:"viewedAt"`
}

func (ArticleView) TableName() string {
	return "article_views"
}

type ArticleShare struct {
	ID        uint64    `gorm:"primaryKey"`
	ArticleID uint64    `gorm:"not null;index:idx_article_share_article" json:"articleId"`
	Platform  *string   `gorm:"type:varchar(32)" json:"platform"`
	SharedAt  time.Time `gorm:"not null" json:"sharedAt"`
}

func (ArticleShare) TableName() string {
	return "article_shares"
}
