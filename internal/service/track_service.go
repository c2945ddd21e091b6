package service

import (
	"Trendscope/internal/api/dto"
	"Trendscope/internal/model"
	"Trendscope/internal/repository"
	"context"
	"strings"
	"time"
)

type TrackService interface {
	// TrackArticleView 记录一次文章阅读
	TrackArticleView(ctx context.Context, req *dto.TrackArticleViewDTO) error
	// TrackArticleShare 记录一次文章分享，平台可为空
	TrackArticleShare(ctx context.Context, req *dto.TrackArticleShareDTO) error
}

type trackServiceImpl struct {
	articleRepo repository.ArticleRepo
	clock       func() time.Time
}

func NewTrackService(articleRepo repository.ArticleRepo) TrackService {
	return &trackServiceImpl{articleRepo: articleRepo, clock: time.Now}
}

func (s *trackServiceImpl) TrackArticleView(ctx context.Context, req *dto.TrackArticleViewDTO) error {
	if err := s.ensureArticle(ctx, req.ArticleID); err != nil {
		return err
	}
	return s.articleRepo.CreateView(ctx, &model.ArticleView{
		ArticleID: req.ArticleID,
		ViewedAt:  s.clock(),
	})
}

func (s *trackServiceImpl) TrackArticleShare(ctx context.Context, req *dto.TrackArticleShareDTO) error {
	if err := s.ensureArticle(ctx, req.ArticleID); err != nil {
		return err
	}

	var platform *string
	if req.Platform != nil {
		if p := strings.ToLower(strings.TrimSpace(*req.Platform)); p != "" {
			platform = &p
		}
	}
	return s.articleRepo.CreateShare(ctx, &model.ArticleShare{
		ArticleID: req.ArticleID,
		Platform:  platform,
		SharedAt:  s.clock(),
	})
}

func (s *trackServiceImpl) ensureArticle(ctx context.Context, id uint64) error {
	if id == 0 {
		return ErrParamInvalid
	}
	ok, err := s.articleRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrArticleNotFound
	}
	return nil
}
