package model

import (
	"time"
)

const (
	VideoTypeRegular = "REGULAR"
	VideoTypeShorts  = "SHORTS"
)

type Video struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	ProductID       uint64    `gorm:"not null;index:idx_video_product" json:"productId"`
	YoutubeID       string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_youtube_id" json:"youtubeId"`
	Title           string    `gorm:"type:varchar(255)" json:"title"`
	ChannelTitle    string    `gorm:"type:varchar(255)" json:"channelTitle"`
	VideoType       string    `gorm:"type:varchar(16);not null;default:'REGULAR'" json:"videoType"`
	SubscriberCount *int64    `json:"subscriberCount"`
	PublishedAt     time.Time `gorm:"not null" json:"publishedAt"`
	IsActive        bool      `gorm:"not null" json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`

	// LatestMetric 由仓储层填充的最新指标快照
	LatestMetric *VideoMetric `gorm:"-" json:"latestMetric,omitempty"`
}

func (Video) TableName() string {
	return "videos"
}
