package repository

import (
	"Trendscope/internal/model"
	"context"

	"gorm.io/gorm"
)

type ArticleRepo interface {
	// ListActiveWithCounts 获取所有有效文章及累计阅读、分享数
	ListActiveWithCounts(ctx context.Context) ([]*model.ArticleWithCounts, error)
	// Exists 文章存在且未下线
	Exists(ctx context.Context, id uint64) (bool, error)
	CreateView(ctx context.Context, view *model.ArticleView) error
	CreateShare(ctx context.Context, share *model.ArticleShare) error
}

type articleRepoImpl struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepo {
	return &articleRepoImpl{db: db}
}

func (r *articleRepoImpl) ListActiveWithCounts(ctx context.Context) ([]*model.ArticleWithCounts, error) {
	rows := make([]*model.ArticleWithCounts, 0)
	err := r.db.WithContext(ctx).
		Table("articles AS a").
		Select("a.id, a.published_at, " +
			"(SELECT COUNT(*) FROM article_views v WHERE v.article_id = a.id) AS view_count, " +
			"(SELECT COUNT(*) FROM article_shares s WHERE s.article_id = a.id) AS share_count").
		Where("a.is_active = ?", true).
		Order("a.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *articleRepoImpl) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).Where("id = ? AND is_active = ?", id, true).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *articleRepoImpl) CreateView(ctx context.Context, view *model.ArticleView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

func (r *articleRepoImpl) CreateShare(ctx context.Context, share *model.ArticleShare) error {
	return r.db.WithContext(ctx).Create(share).Error
}
