package scoring

// MethodComponent 评分项说明
type MethodComponent struct {
	Name        string  `json:"name"`
	MaxPoints   float64 `json:"maxPoints"`
	Formula     string  `json:"formula"`
	Description string  `json:"description"`
}

type MethodSection struct {
	Target     string            `json:"target"`
	Components []MethodComponent `json:"components"`
	Notes      []string          `json:"notes"`
}

// MethodDescription 公开的排名计算方法说明
func MethodDescription() []MethodSection {
	return []MethodSection{
		{
			Target: "video",
			Components: []MethodComponent{
				{Name: "view", MaxPoints: videoViewMax, Formula: "min(35, log10(views+1)/7*35)", Description: "order-of-magnitude reach, saturates near 10M views"},
				{Name: "engagement", MaxPoints: videoEngagementMax, Formula: "min(30, (likes+2*comments)/views*300)", Description: "comments count double"},
				{Name: "virality", MaxPoints: videoViralityMax, Formula: "min(20, views/subscribers*10)", Description: "10 when the subscriber count is unknown"},
				{Name: "recency", MaxPoints: videoRecencyMax, Formula: "min(15, 15*e^(-days/45))", Description: "exponential decay by days since publish"},
			},
			Notes: []string{"shorts receive a 1.05x multiplier", "total capped at 100"},
		},
		{
			Target: "product",
			Components: []MethodComponent{
				{Name: "weightedAverage", MaxPoints: 100, Formula: "Σ(score_i*w_i)/Σw_i over top 5 videos", Description: "weights 1.0, 0.7, 0.5, 0.35, 0.25"},
				{Name: "videoCountBonus", MaxPoints: maxVideoCountBonus, Formula: "min(5, log2(videos+1)*2)", Description: "rewards breadth of coverage"},
			},
			Notes: []string{"products without scored videos are not ranked", "total capped at 100"},
		},
		{
			Target: "article",
			Components: []MethodComponent{
				{Name: "view", MaxPoints: articleViewMax, Formula: "min(50, log10(views+1)/6*50)", Description: "cumulative views"},
				{Name: "share", MaxPoints: articleShareMax, Formula: "min(30, sqrt(shares)*3)", Description: "early shares weigh more"},
				{Name: "recency", MaxPoints: articleRecencyMax, Formula: "min(20, 20*e^(-hours/24))", Description: "exponential decay by hours since publish"},
			},
			Notes: []string{"total capped at 100"},
		},
	}
}
