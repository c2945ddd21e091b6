package scoring

import "strconv"

type RankChangeType string

const (
	RankChangeNew  RankChangeType = "NEW"
	RankChangeUp   RankChangeType = "UP"
	RankChangeDown RankChangeType = "DOWN"
	RankChangeSame RankChangeType = "SAME"
)

// RankChange 名次变化描述
type RankChange struct {
	Type  RankChangeType `json:"type"`
	Value *int           `json:"value"`
	Label string         `json:"label"`
}

// ClassifyRankChange 对比本期与上期名次
func ClassifyRankChange(currentRank int, previousRank *int) RankChange {
	if previousRank == nil || *previousRank == 0 {
		return RankChange{Type: RankChangeNew, Value: nil, Label: "NEW"}
	}

	delta := *previousRank - currentRank
	switch {
	case delta > 0:
		return RankChange{Type: RankChangeUp, Value: &delta, Label: "+" + strconv.Itoa(delta)}
	case delta < 0:
		abs := -delta
		return RankChange{Type: RankChangeDown, Value: &abs, Label: strconv.Itoa(delta)}
	default:
		zero := 0
		return RankChange{Type: RankChangeSame, Value: &zero, Label: "-"}
	}
}
