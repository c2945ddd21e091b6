package service

import (
	"Trendscope/internal/api/dto"
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/consts"
	"Trendscope/internal/pkg/logger"
	"Trendscope/internal/pkg/mongo"
	"Trendscope/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

const (
	auditTargetRanking = "product_ranking"
	auditTargetPeriod  = "ranking_period"

	overrideHistorySize = 50
)

type AdminRankingService interface {
	// OverrideRanking 手动修正单条商品排名的名次或分数，并写入审计记录
	OverrideRanking(ctx context.Context, adminID uint64, rankingID uint64, req *dto.RankingOverrideDTO) (*dto.ProductRankingAdminDTO, error)
	// Recalculate 手动触发一次排名计算
	Recalculate(ctx context.Context, adminID uint64, req *dto.RankingCalculateDTO) (*RankingResult, error)
	// ListPeriods 最近的排名周期及各自的排名条数
	ListPeriods(ctx context.Context, q *dto.PeriodListQueryDTO) ([]*dto.PeriodSummaryDTO, error)
	// ListOverrides 某条排名的人工修正记录
	ListOverrides(ctx context.Context, rankingID uint64) ([]*mongo.AdminActionModel, error)
}

type adminRankingServiceImpl struct {
	rankingRepo     repository.ProductRankingRepo
	periodRepo      repository.RankingPeriodRepo
	trigger         RankingTriggerService
	cache           RankingCache
	auditRepo       mongo.AdminActionRepo
	defaultListSize int
	clock           func() time.Time
}

func NewAdminRankingService(
	rankingRepo repository.ProductRankingRepo,
	periodRepo repository.RankingPeriodRepo,
	trigger RankingTriggerService,
	cache RankingCache,
	auditRepo mongo.AdminActionRepo,
	defaultListSize int,
) AdminRankingService {
	if defaultListSize <= 0 {
		defaultListSize = 50
	}
	return &adminRankingServiceImpl{
		rankingRepo:     rankingRepo,
		periodRepo:      periodRepo,
		trigger:         trigger,
		cache:           cache,
		auditRepo:       auditRepo,
		defaultListSize: defaultListSize,
		clock:           time.Now,
	}
}

func (s *adminRankingServiceImpl) OverrideRanking(ctx context.Context, adminID uint64, rankingID uint64, req *dto.RankingOverrideDTO) (*dto.ProductRankingAdminDTO, error) {
	if rankingID == 0 || (req.Rank == nil && req.Score == nil) {
		return nil, ErrParamInvalid
	}

	before, err := s.rankingRepo.GetByID(ctx, rankingID)
	if err != nil {
		return nil, err
	}
	if before == nil {
		return nil, ErrRankingNotFound
	}

	updates := make(map[string]interface{}, 2)
	if req.Rank != nil {
		updates["rank_no"] = *req.Rank
	}
	if req.Score != nil {
		updates["score"] = *req.Score
	}
	if err = s.rankingRepo.UpdateOverride(ctx, rankingID, updates); err != nil {
		return nil, err
	}

	after, err := s.rankingRepo.GetByID(ctx, rankingID)
	if err != nil {
		return nil, err
	}
	if after == nil {
		return nil, ErrRankingNotFound
	}

	if s.cache != nil {
		if err = s.cache.Invalidate(ctx, model.ScopeProduct, after.PeriodID); err != nil {
			log.WarnContext(ctx, "invalidate ranking cache failed", "period_id", after.PeriodID, "err", err)
		}
	}

	s.audit(ctx, &mongo.AdminActionModel{
		AdminID:    adminID,
		Action:     consts.AdminActionOverrideRanking,
		TargetType: auditTargetRanking,
		TargetID:   rankingID,
		Before:     map[string]any{"rank": before.Rank, "score": before.Score},
		After:      map[string]any{"rank": after.Rank, "score": after.Score},
	})

	result := &dto.ProductRankingAdminDTO{}
	if err = copier.Copy(result, after); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *adminRankingServiceImpl) Recalculate(ctx context.Context, adminID uint64, req *dto.RankingCalculateDTO) (*RankingResult, error) {
	scope, err := NormalizeScope(req.Scope)
	if err != nil {
		return nil, err
	}
	g, err := ParseGranularity(req.PeriodType)
	if err != nil {
		return nil, err
	}
	ref, err := ParseReferenceDate(req.Date)
	if err != nil {
		return nil, err
	}

	result, err := s.trigger.Trigger(ctx, scope, g, ref)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, &mongo.AdminActionModel{
		AdminID:    adminID,
		Action:     consts.AdminActionRecalculateRanks,
		TargetType: auditTargetPeriod,
		TargetID:   result.PeriodID,
		After: map[string]any{
			"scope":       result.Scope,
			"granularity": string(result.Granularity),
			"rankings":    result.RankingsWritten,
			"date":        req.Date,
		},
	})
	return result, nil
}

func (s *adminRankingServiceImpl) ListPeriods(ctx context.Context, q *dto.PeriodListQueryDTO) ([]*dto.PeriodSummaryDTO, error) {
	scope := model.ScopeProduct
	if q.Scope != "" {
		normalized, err := NormalizeScope(q.Scope)
		if err != nil {
			return nil, err
		}
		scope = normalized
	}

	periodType := ""
	if q.PeriodType != "" {
		g, err := ParseGranularity(q.PeriodType)
		if err != nil {
			return nil, err
		}
		if err = ValidateGranularity(scope, g); err != nil {
			return nil, err
		}
		periodType = string(g)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = s.defaultListSize
	}

	periods, err := s.periodRepo.ListWithCounts(ctx, scope, periodType, limit)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.PeriodSummaryDTO, 0, len(periods))
	for _, p := range periods {
		item := &dto.PeriodSummaryDTO{}
		if err = copier.Copy(item, &p.RankingPeriod); err != nil {
			return nil, err
		}
		item.RankingsCount = p.RankingsCount
		list = append(list, item)
	}
	return list, nil
}

func (s *adminRankingServiceImpl) ListOverrides(ctx context.Context, rankingID uint64) ([]*mongo.AdminActionModel, error) {
	if rankingID == 0 {
		return nil, ErrParamInvalid
	}
	if s.auditRepo == nil {
		return []*mongo.AdminActionModel{}, nil
	}
	return s.auditRepo.ListByTarget(ctx, auditTargetRanking, rankingID, overrideHistorySize)
}

// audit 审计写入失败不影响主流程
func (s *adminRankingServiceImpl) audit(ctx context.Context, action *mongo.AdminActionModel) {
	if s.auditRepo == nil {
		return
	}
	action.TraceID = logger.TraceID(ctx)
	action.CreatedAt = s.clock()
	if err := s.auditRepo.Create(ctx, action); err != nil {
		log.WarnContext(ctx, "write admin audit failed", "action", action.Action, "err", err)
	}
}
