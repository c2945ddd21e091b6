package scoring

import (
	"math"
	"time"
)

type VideoType string

const (
	VideoTypeRegular VideoType = "REGULAR"
	VideoTypeShorts  VideoType = "SHORTS"
)

const (
	videoViewMax       = 35.0
	videoEngagementMax = 30.0
	videoViralityMax   = 20.0
	videoRecencyMax    = 15.0

	// 无订阅数时的中性分
	defaultViralityScore = 10.0
	recencyDecayDays     = 45.0
	shortsMultiplier     = 1.05
)

// VideoMetrics 单个视频的评分输入
type VideoMetrics struct {
	ViewCount       int64
	LikeCount       int64
	CommentCount    int64
	SubscriberCount *int64
	PublishedAt     time.Time
	VideoType       VideoType
}

type VideoScoreDetails struct {
	ViewCount          int64    `json:"viewCount"`
	EngagementRate     float64  `json:"engagementRate"` // 百分比
	ViewToSubRatio     *float64 `json:"viewToSubRatio"`
	DaysSincePublished int      `json:"daysSincePublished"`
	IsShorts           bool     `json:"isShorts"`
}

// VideoScoreBreakdown 视频得分明细，供前端展示
type VideoScoreBreakdown struct {
	ViewScore       float64           `json:"viewScore"`
	EngagementScore float64           `json:"engagementScore"`
	ViralityScore   float64           `json:"viralityScore"`
	RecencyScore    float64           `json:"recencyScore"`
	ShortsBonus     float64           `json:"shortsBonus"`
	TotalScore      float64           `json:"totalScore"`
	Details         VideoScoreDetails `json:"details"`
}

// CalculateVideoScore 计算单个视频得分 (0-100)
//
//	播放 0-35：对数刻度，1000 万播放封顶
//	互动 0-30：(点赞 + 评论*2) / 播放 * 300
//	传播 0-20：播放 / 订阅 * 10，无订阅数时取 10
//	时效 0-15：45 天指数衰减
//	Shorts 额外乘以 1.05
func CalculateVideoScore(m VideoMetrics, now time.Time) VideoScoreBreakdown {
	views := nonNegative(m.ViewCount)
	likes := nonNegative(m.LikeCount)
	comments := nonNegative(m.CommentCount)

	viewScore := 0.0
	if views > 0 {
		viewScore = clamp(math.Log10(float64(views)+1)/7*videoViewMax, 0, videoViewMax)
	}

	engagementRate := 0.0
	engagementScore := 0.0
	if views > 0 {
		engagementRate = float64(likes+comments*2) / float64(views)
		engagementScore = clamp(engagementRate*300, 0, videoEngagementMax)
	}

	viralityScore := defaultViralityScore
	var viewToSubRatio *float64
	if m.SubscriberCount != nil && *m.SubscriberCount > 0 {
		ratio := float64(views) / float64(*m.SubscriberCount)
		viralityScore = clamp(ratio*10, 0, videoViralityMax)
		rounded := Round2(ratio)
		viewToSubRatio = &rounded
	}

	days := DaysBetween(m.PublishedAt, now)
	recencyScore := clamp(videoRecencyMax*math.Exp(-float64(days)/recencyDecayDays), 0, videoRecencyMax)

	isShorts := m.VideoType == VideoTypeShorts
	bonus := 1.0
	if isShorts {
		bonus = shortsMultiplier
	}

	raw := (viewScore + engagementScore + viralityScore + recencyScore) * bonus
	total := math.Min(100, Round2(raw))

	return VideoScoreBreakdown{
		ViewScore:       Round2(viewScore),
		EngagementScore: Round2(engagementScore),
		ViralityScore:   Round2(viralityScore),
		RecencyScore:    Round2(recencyScore),
		ShortsBonus:     bonus,
		TotalScore:      total,
		Details: VideoScoreDetails{
			ViewCount:          views,
			EngagementRate:     Round2(engagementRate * 100),
			ViewToSubRatio:     viewToSubRatio,
			DaysSincePublished: days,
			IsShorts:           isShorts,
		},
	}
}

// DaysBetween 返回 from 到 to 之间的完整天数，不小于 0。
// 按 to 所在时区的日历日计算，夏令时切换当天的 23/25 小时也算一天
func DaysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	from = from.In(to.Location())
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	days := int(toDate.Sub(fromDate) / (24 * time.Hour))
	// 最后一天不足一整天
	if from.AddDate(0, 0, days).After(to) {
		days--
	}
	if days < 0 {
		return 0
	}
	return days
}

// HoursBetween 返回 from 到 to 之间的完整小时数，不小于 0
func HoursBetween(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int(d / time.Hour)
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
