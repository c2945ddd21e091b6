package scoring

import (
	"math"
	"time"
)

const (
	articleViewMax    = 50.0
	articleShareMax   = 30.0
	articleRecencyMax = 20.0

	recencyDecayHours = 24.0
)

// ArticleMetrics 文章评分输入，计数为累计值
type ArticleMetrics struct {
	ViewCount   int64
	ShareCount  int64
	PublishedAt time.Time
}

type ArticleScoreDetails struct {
	ViewCount           int64 `json:"viewCount"`
	ShareCount          int64 `json:"shareCount"`
	HoursSincePublished int   `json:"hoursSincePublished"`
}

type ArticleScoreBreakdown struct {
	ViewScore    float64             `json:"viewScore"`
	ShareScore   float64             `json:"shareScore"`
	RecencyScore float64             `json:"recencyScore"`
	TotalScore   float64             `json:"totalScore"`
	Details      ArticleScoreDetails `json:"details"`
}

// CalculateArticleScore 计算文章得分 (0-100)
//
//	阅读 0-50：对数刻度，约 100 万阅读封顶
//	分享 0-30：平方根刻度，早期分享权重更高
//	时效 0-20：24 小时指数衰减
func CalculateArticleScore(m ArticleMetrics, now time.Time) ArticleScoreBreakdown {
	views := nonNegative(m.ViewCount)
	shares := nonNegative(m.ShareCount)

	viewScore := 0.0
	if views > 0 {
		viewScore = clamp(math.Log10(float64(views)+1)/6*articleViewMax, 0, articleViewMax)
	}

	shareScore := 0.0
	if shares > 0 {
		shareScore = clamp(math.Sqrt(float64(shares))*3, 0, articleShareMax)
	}

	hours := HoursBetween(m.PublishedAt, now)
	recencyScore := clamp(articleRecencyMax*math.Exp(-float64(hours)/recencyDecayHours), 0, articleRecencyMax)

	return ArticleScoreBreakdown{
		ViewScore:    Round2(viewScore),
		ShareScore:   Round2(shareScore),
		RecencyScore: Round2(recencyScore),
		TotalScore:   math.Min(100, Round2(viewScore+shareScore+recencyScore)),
		Details: ArticleScoreDetails{
			ViewCount:           views,
			ShareCount:          shares,
			HoursSincePublished: hours,
		},
	}
}
