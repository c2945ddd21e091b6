package scoring

import (
	"math"
	"sort"
)

// TopVideoCount 参与加权平均的视频数量
const TopVideoCount = 5

// FallbackPositionWeight 超出权重表的名次使用的权重。
// 当前只取前 TopVideoCount 个视频，因此不会被用到；若将来放开 TopVideoCount 需同步评估。
const FallbackPositionWeight = 0.2

var positionWeights = [TopVideoCount]float64{1.0, 0.7, 0.5, 0.35, 0.25}

const maxVideoCountBonus = 5.0

// VideoWithScore 已评分的视频，作为商品聚合的输入
type VideoWithScore struct {
	Score        float64
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
}

type TopVideoScore struct {
	Rank         int     `json:"rank"`
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

type ProductScoreDetail struct {
	TopVideoScores   []TopVideoScore `json:"topVideoScores"`
	WeightedAvgScore float64         `json:"weightedAvgScore"`
	VideoCountBonus  float64         `json:"videoCountBonus"`
}

// ProductScoreBreakdown 商品聚合得分及明细
type ProductScoreBreakdown struct {
	Score         float64            `json:"score"`
	TotalViews    int64              `json:"totalViews"`
	TotalLikes    int64              `json:"totalLikes"`
	TotalComments int64              `json:"totalComments"`
	VideoCount    int                `json:"videoCount"`
	AvgEngagement float64            `json:"avgEngagement"`
	Breakdown     ProductScoreDetail `json:"breakdown"`
}

// PositionWeight 返回第 position 名（从 1 开始）视频的权重
func PositionWeight(position int) float64 {
	if position >= 1 && position <= len(positionWeights) {
		return positionWeights[position-1]
	}
	return FallbackPositionWeight
}

// CalculateProductScore 根据商品下视频得分计算聚合得分 (0-100)
func CalculateProductScore(videos []VideoWithScore) ProductScoreBreakdown {
	if len(videos) == 0 {
		return ProductScoreBreakdown{
			Breakdown: ProductScoreDetail{TopVideoScores: []TopVideoScore{}},
		}
	}

	var totalViews, totalLikes, totalComments int64
	for _, v := range videos {
		totalViews += nonNegative(v.ViewCount)
		totalLikes += nonNegative(v.LikeCount)
		totalComments += nonNegative(v.CommentCount)
	}

	avgEngagement := 0.0
	if totalViews > 0 {
		avgEngagement = float64(totalLikes+totalComments) / float64(totalViews) * 100
	}

	sorted := make([]VideoWithScore, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	top := sorted
	if len(top) > TopVideoCount {
		top = top[:TopVideoCount]
	}

	var weightedSum, totalWeight float64
	topScores := make([]TopVideoScore, 0, len(top))
	for i, v := range top {
		weight := PositionWeight(i + 1)
		score := math.Max(0, v.Score)
		contribution := score * weight
		weightedSum += contribution
		totalWeight += weight
		topScores = append(topScores, TopVideoScore{
			Rank:         i + 1,
			Score:        Round2(score),
			Weight:       Round2(weight),
			Contribution: Round2(contribution),
		})
	}

	weightedAvg := 0.0
	if totalWeight > 0 {
		weightedAvg = weightedSum / totalWeight
	}

	countBonus := math.Min(maxVideoCountBonus, math.Log2(float64(len(videos)+1))*2)

	return ProductScoreBreakdown{
		Score:         math.Min(100, Round2(weightedAvg+countBonus)),
		TotalViews:    totalViews,
		TotalLikes:    totalLikes,
		TotalComments: totalComments,
		VideoCount:    len(videos),
		AvgEngagement: Round2(avgEngagement),
		Breakdown: ProductScoreDetail{
			TopVideoScores:   topScores,
			WeightedAvgScore: Round2(weightedAvg),
			VideoCountBonus:  Round2(countBonus),
		},
	}
}
