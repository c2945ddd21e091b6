package service

import (
	"Trendscope/internal/api/dto"
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/period"
	"Trendscope/internal/pkg/scoring"
	"Trendscope/internal/repository"
	"context"
	"fmt"
	log "log/slog"

	"github.com/jinzhu/copier"
)

// QueryLimits 公开查询的分页限制
type QueryLimits struct {
	DefaultLimit int
	MaxLimit     int
}

type RankingQueryService interface {
	// GetProductRankings 查询商品排名，未指定年月日时取该粒度最近的周期
	GetProductRankings(ctx context.Context, q *dto.RankingQueryDTO) (*dto.ProductRankingPageDTO, error)
	// GetArticleRankings 查询文章排名，只支持日榜与月榜
	GetArticleRankings(ctx context.Context, q *dto.RankingQueryDTO) (*dto.ArticleRankingPageDTO, error)
}

type rankingQueryServiceImpl struct {
	periodRepo         repository.RankingPeriodRepo
	productRankingRepo repository.ProductRankingRepo
	articleRankingRepo repository.ArticleRankingRepo
	cache              RankingCache
	limits             QueryLimits
}

func NewRankingQueryService(
	periodRepo repository.RankingPeriodRepo,
	productRankingRepo repository.ProductRankingRepo,
	articleRankingRepo repository.ArticleRankingRepo,
	cache RankingCache,
	limits QueryLimits,
) RankingQueryService {
	if limits.DefaultLimit <= 0 {
		limits.DefaultLimit = 20
	}
	if limits.MaxLimit <= 0 {
		limits.MaxLimit = 100
	}
	return &rankingQueryServiceImpl{
		periodRepo:         periodRepo,
		productRankingRepo: productRankingRepo,
		articleRankingRepo: articleRankingRepo,
		cache:              cache,
		limits:             limits,
	}
}

func (s *rankingQueryServiceImpl) GetProductRankings(ctx context.Context, q *dto.RankingQueryDTO) (*dto.ProductRankingPageDTO, error) {
	page, limit := s.pageOf(q)
	p, err := s.findPeriod(ctx, model.ScopeProduct, q)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &dto.ProductRankingPageDTO{
			Rankings:   []*dto.ProductRankingDTO{},
			Pagination: dto.NewPagination(page, limit, 0),
		}, nil
	}

	field := fmt.Sprintf("c=%s|p=%d|l=%d", q.Category, page, limit)
	result := &dto.ProductRankingPageDTO{}
	hit, gen, cacheable := s.readCache(ctx, model.ScopeProduct, p.ID, field, result)
	if hit {
		return result, nil
	}

	rankings, total, err := s.productRankingRepo.ListByPeriod(ctx, p.ID, q.Category, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ProductRankingDTO, 0, len(rankings))
	for _, r := range rankings {
		item := &dto.ProductRankingDTO{}
		if err = copier.Copy(item, r); err != nil {
			return nil, err
		}
		item.Product = nil
		if r.Product != nil {
			item.Product = &dto.ProductBriefDTO{}
			if err = copier.Copy(item.Product, r.Product); err != nil {
				return nil, err
			}
		}
		item.RankChange = scoring.ClassifyRankChange(r.Rank, r.PreviousRank)
		items = append(items, item)
	}

	result = &dto.ProductRankingPageDTO{
		Period:     toPeriodDTO(p),
		Rankings:   items,
		Pagination: dto.NewPagination(page, limit, total),
	}
	if cacheable {
		s.writeCache(ctx, model.ScopeProduct, p.ID, gen, field, result)
	}
	return result, nil
}

func (s *rankingQueryServiceImpl) GetArticleRankings(ctx context.Context, q *dto.RankingQueryDTO) (*dto.ArticleRankingPageDTO, error) {
	page, limit := s.pageOf(q)
	p, err := s.findPeriod(ctx, model.ScopeArticle, q)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &dto.ArticleRankingPageDTO{
			Rankings:   []*dto.ArticleRankingDTO{},
			Pagination: dto.NewPagination(page, limit, 0),
		}, nil
	}

	field := fmt.Sprintf("p=%d|l=%d", page, limit)
	result := &dto.ArticleRankingPageDTO{}
	hit, gen, cacheable := s.readCache(ctx, model.ScopeArticle, p.ID, field, result)
	if hit {
		return result, nil
	}

	rankings, total, err := s.articleRankingRepo.ListByPeriod(ctx, p.ID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ArticleRankingDTO, 0, len(rankings))
	for _, r := range rankings {
		item := &dto.ArticleRankingDTO{}
		if err = copier.Copy(item, r); err != nil {
			return nil, err
		}
		item.Article = nil
		if r.Article != nil {
			item.Article = &dto.ArticleBriefDTO{}
			if err = copier.Copy(item.Article, r.Article); err != nil {
				return nil, err
			}
		}
		item.RankChange = scoring.ClassifyRankChange(r.Rank, r.PreviousRank)
		items = append(items, item)
	}

	result = &dto.ArticleRankingPageDTO{
		Period:     toPeriodDTO(p),
		Rankings:   items,
		Pagination: dto.NewPagination(page, limit, total),
	}
	if cacheable {
		s.writeCache(ctx, model.ScopeArticle, p.ID, gen, field, result)
	}
	return result, nil
}

func (s *rankingQueryServiceImpl) pageOf(q *dto.RankingQueryDTO) (int, int) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = s.limits.DefaultLimit
	}
	if limit > s.limits.MaxLimit {
		limit = s.limits.MaxLimit
	}
	return page, limit
}

// findPeriod 粒度默认为日榜
func (s *rankingQueryServiceImpl) findPeriod(ctx context.Context, scope string, q *dto.RankingQueryDTO) (*model.RankingPeriod, error) {
	g := period.Daily
	if q.Period != "" {
		parsed, err := period.Parse(q.Period)
		if err != nil {
			return nil, ErrInvalidGranularity
		}
		g = parsed
	}
	if err := ValidateGranularity(scope, g); err != nil {
		return nil, err
	}

	filter := repository.PeriodFilter{PeriodType: string(g)}
	if q.Year != nil {
		filter.Year = *q.Year
	}
	if g != period.Yearly {
		filter.Month = q.Month
	}
	if g == period.Daily || g == period.FourHourly {
		filter.Day = q.Day
	}
	if g == period.FourHourly {
		filter.HourSlot = q.Slot
	}
	return s.periodRepo.FindLatest(ctx, scope, filter)
}

// readCache 返回是否命中、当前世代号，以及未命中时能否回写
func (s *rankingQueryServiceImpl) readCache(ctx context.Context, scope string, periodID uint64, field string, dest interface{}) (bool, int64, bool) {
	if s.cache == nil {
		return false, 0, false
	}
	hit, gen, err := s.cache.Get(ctx, scope, periodID, field, dest)
	if err != nil {
		log.WarnContext(ctx, "read ranking cache failed", "period_id", periodID, "err", err)
		return false, 0, false
	}
	return hit, gen, true
}

// writeCache 查库期间排名被重算时世代号已变，本次结果不回写
func (s *rankingQueryServiceImpl) writeCache(ctx context.Context, scope string, periodID uint64, gen int64, field string, value interface{}) {
	written, err := s.cache.Set(ctx, scope, periodID, gen, field, value)
	if err != nil {
		log.WarnContext(ctx, "write ranking cache failed", "period_id", periodID, "err", err)
		return
	}
	if !written {
		log.DebugContext(ctx, "skip stale ranking cache write", "period_id", periodID, "gen", gen)
	}
}

// toPeriodDTO 未使用的键字段输出为 null
func toPeriodDTO(p *model.RankingPeriod) *dto.PeriodDTO {
	out := &dto.PeriodDTO{
		ID:         p.ID,
		PeriodType: p.PeriodType,
		Year:       p.Year,
		StartedAt:  p.StartedAt,
		EndedAt:    p.EndedAt,
	}
	g := period.Granularity(p.PeriodType)
	if g != period.Yearly {
		month := p.Month
		out.Month = &month
	}
	if g == period.Daily || g == period.FourHourly {
		day := p.Day
		out.Day = &day
	}
	if g == period.FourHourly {
		slot := p.HourSlot
		out.HourSlot = &slot
	}
	return out
}
