package model

import (
	"time"
)

// VideoMetric 视频指标快照，按采集时间累积
type VideoMetric struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	VideoID      uint64    `gorm:"not null;index:idx_video_collected" json:"videoId"`
	ViewCount    int64     `gorm:"not null;default:0" json:"viewCount"`
	LikeCount    int64     `gorm:"not null;default:0" json:"likeCount"`
	CommentCount int64     `gorm:"not null;default:0" json:"commentCount"`
	CollectedAt  time.Time `gorm:"not null;index:idx_video_collected" json:"collectedAt"`
}

func (VideoMetric) TableName() string {
	return "video_metrics"
}
