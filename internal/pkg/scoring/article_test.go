package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateArticleScore(t *testing.T) {
	tests := []struct {
		name    string
		metrics ArticleMetrics
		view    float64
		share   float64
		recency float64
		total   float64
	}{
		{
			name:    "fresh article without activity",
			metrics: ArticleMetrics{PublishedAt: testNow},
			recency: 20,
			total:   20,
		},
		{
			name:    "one day old",
			metrics: ArticleMetrics{ViewCount: 999, ShareCount: 100, PublishedAt: testNow.Add(-24 * time.Hour)},
			view:    25,
			share:   30,
			recency: 7.36,
			total:   62.36,
		},
		{
			name:    "saturated",
			metrics: ArticleMetrics{ViewCount: 5_000_000, ShareCount: 10_000, PublishedAt: testNow},
			view:    50,
			share:   30,
			recency: 20,
			total:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CalculateArticleScore(tt.metrics, testNow)
			assert.Equal(t, tt.view, res.ViewScore)
			assert.Equal(t, tt.share, res.ShareScore)
			assert.Equal(t, tt.recency, res.RecencyScore)
			assert.Equal(t, tt.total, res.TotalScore)
		})
	}
}

func TestCalculateArticleScore_FutureClamp(t *testing.T) {
	res := CalculateArticleScore(ArticleMetrics{PublishedAt: testNow.Add(5 * time.Hour)}, testNow)
	assert.Equal(t, 0, res.Details.HoursSincePublished)
	assert.Equal(t, 20.0, res.RecencyScore)
}

func TestCalculateArticleScore_ShareMonotonic(t *testing.T) {
	prev := -1.0
	for _, s := range []int64{0, 1, 2, 5, 10, 50, 99, 100, 1000} {
		res := CalculateArticleScore(ArticleMetrics{ShareCount: s, PublishedAt: testNow}, testNow)
		assert.GreaterOrEqual(t, res.ShareScore, prev)
		assert.LessOrEqual(t, res.TotalScore, 100.0)
		assert.False(t, math.IsNaN(res.TotalScore))
		prev = res.ShareScore
	}
}
