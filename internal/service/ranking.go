package service

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/period"
	"cmp"
	"context"
	"fmt"
	log "log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// RankingResult 一次排名计算的结果
type RankingResult struct {
	Scope            string             `json:"scope"`
	Granularity      period.Granularity `json:"granularity"`
	PeriodID         uint64             `json:"periodId"`
	PreviousPeriodID *uint64            `json:"previousPeriodId"`
	RankingsWritten  int                `json:"rankingsWritten"`
}

// RankingCache 按周期缓存排名分页。Get 返回的世代号在 Invalidate 后失效，
// Set 只接受仍然有效的世代号
type RankingCache interface {
	Get(ctx context.Context, scope string, periodID uint64, field string, dest interface{}) (hit bool, gen int64, err error)
	Set(ctx context.Context, scope string, periodID uint64, gen int64, field string, value interface{}) (bool, error)
	Invalidate(ctx context.Context, scope string, periodID uint64) error
}

// RankingPublisher 排名写入后的事件通知
type RankingPublisher interface {
	PublishRankingComputed(ctx context.Context, event *model.RankingComputedEvent) error
}

// candidate 一个已评分的待排名实体
type candidate[T any] struct {
	entityID uint64
	score    float64
	row      T
}

// rankingRun 描述一种排名的数据来源与落库方式
type rankingRun[T any] struct {
	scope         string
	previousRanks func(ctx context.Context, periodID uint64) ([]model.RankEntry, error)
	candidates    func(ctx context.Context, now time.Time) ([]candidate[T], error)
	place         func(row T, periodID uint64, rank int, previousRank *int)
	replace       func(ctx context.Context, periodID uint64, rows []T) error
}

type rankingRunner struct {
	periods   PeriodService
	cache     RankingCache
	publisher RankingPublisher
	clock     func() time.Time
}

func newRankingRunner(periods PeriodService, cache RankingCache, publisher RankingPublisher) *rankingRunner {
	return &rankingRunner{
		periods:   periods,
		cache:     cache,
		publisher: publisher,
		clock:     time.Now,
	}
}

// runRanking 解析周期、并发读取上期名次与候选、排序后整体替换本期排名。
// 替换之前的任何失败都不会改动已存储的排名
func runRanking[T any](ctx context.Context, r *rankingRunner, g period.Granularity, ref time.Time, run rankingRun[T]) (*RankingResult, error) {
	now := r.clock()
	if ref.IsZero() {
		ref = now
	}

	current, bucket, err := r.periods.Resolve(ctx, run.scope, g, ref)
	if err != nil {
		return nil, err
	}
	previous, err := r.periods.FindPrevious(ctx, run.scope, bucket)
	if err != nil {
		return nil, err
	}

	var (
		previousRanks map[uint64]int
		candidates    []candidate[T]
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if previous == nil {
			return nil
		}
		entries, err := run.previousRanks(egCtx, previous.ID)
		if err != nil {
			return fmt.Errorf("load previous %s ranks: %w", run.scope, err)
		}
		previousRanks = make(map[uint64]int, len(entries))
		for _, e := range entries {
			previousRanks[e.EntityID] = e.Rank
		}
		return nil
	})
	eg.Go(func() error {
		list, err := run.candidates(egCtx, now)
		if err != nil {
			return fmt.Errorf("load %s candidates: %w", run.scope, err)
		}
		candidates = list
		return nil
	})
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	rows := rankCandidates(candidates, previousRanks, current.ID, run.place)
	if err = run.replace(ctx, current.ID, rows); err != nil {
		return nil, fmt.Errorf("replace %s rankings of period %d: %w", run.scope, current.ID, err)
	}

	result := &RankingResult{
		Scope:           run.scope,
		Granularity:     bucket.Granularity,
		PeriodID:        current.ID,
		RankingsWritten: len(rows),
	}
	if previous != nil {
		id := previous.ID
		result.PreviousPeriodID = &id
	}

	r.afterReplace(ctx, result, now)
	log.InfoContext(ctx, "rankings calculated",
		"scope", result.Scope,
		"granularity", result.Granularity,
		"period_id", result.PeriodID,
		"rankings", result.RankingsWritten,
	)
	return result, nil
}

// rankCandidates 丢弃零分实体，按分数降序、实体 ID 升序排出 1..N 的连续名次
func rankCandidates[T any](cands []candidate[T], previous map[uint64]int, periodID uint64, place func(T, uint64, int, *int)) []T {
	kept := make([]candidate[T], 0, len(cands))
	for _, c := range cands {
		if c.score > 0 {
			kept = append(kept, c)
		}
	}

	slices.SortFunc(kept, func(a, b candidate[T]) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.entityID, b.entityID)
	})

	rows := make([]T, 0, len(kept))
	for i, c := range kept {
		var prev *int
		if p, ok := previous[c.entityID]; ok {
			prev = &p
		}
		place(c.row, periodID, i+1, prev)
		rows = append(rows, c.row)
	}
	return rows
}

// afterReplace 缓存失效与事件发布均为尽力而为，失败只记录日志
func (r *rankingRunner) afterReplace(ctx context.Context, result *RankingResult, now time.Time) {
	if r.cache != nil {
		if err := r.cache.Invalidate(ctx, result.Scope, result.PeriodID); err != nil {
			log.WarnContext(ctx, "invalidate ranking cache failed", "period_id", result.PeriodID, "err", err)
		}
	}

	if r.publisher != nil {
		err := r.publisher.PublishRankingComputed(ctx, &model.RankingComputedEvent{
			Scope:            result.Scope,
			PeriodType:       string(result.Granularity),
			PeriodID:         result.PeriodID,
			PreviousPeriodID: result.PreviousPeriodID,
			Rankings:         result.RankingsWritten,
			ComputedAt:       now,
		})
		if err != nil {
			log.WarnContext(ctx, "publish ranking event failed", "period_id", result.PeriodID, "err", err)
		}
	}
}
