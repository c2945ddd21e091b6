package repository

import (
	"Trendscope/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleRankingRepo_ReplaceAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewArticleRankingRepository(db)
	ctx := context.Background()

	p := seedPeriod(t, db, model.ScopeArticle)
	a := seedArticle(t, db, "a", true)
	b := seedArticle(t, db, "b", true)
	off := seedArticle(t, db, "off", false)

	require.NoError(t, repo.Replace(ctx, p.ID, []*model.ArticleRanking{
		{PeriodID: p.ID, ArticleID: b.ID, Rank: 1, Score: 70, ViewCount: 10},
		{PeriodID: p.ID, ArticleID: off.ID, Rank: 2, Score: 60},
		{PeriodID: p.ID, ArticleID: a.ID, Rank: 3, Score: 50, ShareCount: 2},
	}))

	ranks, err := repo.ListRanks(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, ranks, 3)

	list, total, err := repo.ListByPeriod(ctx, p.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ArticleID)
	require.NotNil(t, list[0].Article)
	assert.Equal(t, "b", list[0].Article.Title)
	assert.Equal(t, 3, list[1].Rank)

	require.NoError(t, repo.Replace(ctx, p.ID, []*model.ArticleRanking{}))
	ranks, err = repo.ListRanks(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, ranks)
}
