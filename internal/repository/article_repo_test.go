package repository

import (
	"Trendscope/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedArticle(t *testing.T, db *gorm.DB, title string, active bool) *model.Article {
	t.Helper()
	a := &model.Article{Title: title, Source: "wire", IsActive: active, PublishedAt: baseTime.Add(-6 * time.Hour)}
	require.NoError(t, db.Create(a).Error)
	return a
}

func TestArticleRepo_ListActiveWithCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	hot := seedArticle(t, db, "hot", true)
	quiet := seedArticle(t, db, "quiet", true)
	hidden := seedArticle(t, db, "hidden", false)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateView(ctx, &model.ArticleView{ArticleID: hot.ID, ViewedAt: baseTime}))
	}
	platform := "x"
	require.NoError(t, repo.CreateShare(ctx, &model.ArticleShare{ArticleID: hot.ID, Platform: &platform, SharedAt: baseTime}))
	require.NoError(t, repo.CreateView(ctx, &model.ArticleView{ArticleID: hidden.ID, ViewedAt: baseTime}))

	rows, err := repo.ListActiveWithCounts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, hot.ID, rows[0].ID)
	assert.Equal(t, int64(3), rows[0].ViewCount)
	assert.Equal(t, int64(1), rows[0].ShareCount)
	assert.True(t, rows[0].PublishedAt.Equal(hot.PublishedAt))

	assert.Equal(t, quiet.ID, rows[1].ID)
	assert.Zero(t, rows[1].ViewCount)
	assert.Zero(t, rows[1].ShareCount)
}

func TestArticleRepo_Exists(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	a := seedArticle(t, db, "one", true)

	ok, err := repo.Exists(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, a.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)

	off := seedArticle(t, db, "off", false)
	ok, err = repo.Exists(ctx, off.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
