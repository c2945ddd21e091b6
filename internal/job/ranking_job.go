package job

import (
	"Trendscope/internal/pkg/logger"
	"Trendscope/internal/pkg/period"
	"Trendscope/internal/service"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"
)

const rankingJobTimeout = 30 * time.Minute

// RankingJob 定时计算某一 scope 与粒度的排名，参考时间取触发时刻
type RankingJob struct {
	scope       string
	granularity period.Granularity
	trigger     service.RankingTriggerService
}

func NewRankingJob(scope string, g period.Granularity, trigger service.RankingTriggerService) *RankingJob {
	return &RankingJob{
		scope:       scope,
		granularity: g,
		trigger:     trigger,
	}
}

func (s *RankingJob) Name() string {
	return strings.ToLower(s.scope + "-" + string(s.granularity))
}

func (s *RankingJob) Run() {
	ctx, cancel := context.WithTimeout(logger.WithJobTrace(context.Background(), s.Name()), rankingJobTimeout)
	defer cancel()

	result, err := s.trigger.Trigger(ctx, s.scope, s.granularity, time.Time{})
	if err != nil {
		if errors.Is(err, service.ErrRankingBusy) {
			log.WarnContext(ctx, "ranking job skipped, another run in progress", "job", s.Name())
			return
		}
		log.ErrorContext(ctx, "ranking job failed", "job", s.Name(), "err", err)
		return
	}

	log.InfoContext(ctx, "ranking job finished",
		"job", s.Name(),
		"period_id", result.PeriodID,
		"rankings", result.RankingsWritten,
	)
}
