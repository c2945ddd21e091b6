package repository

import (
	"Trendscope/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRankingRepo_ReplaceAndListRanks(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRankingRepository(db)
	ctx := context.Background()

	p := seedPeriod(t, db, model.ScopeProduct)
	a := seedProduct(t, db, "a", "audio", true)
	b := seedProduct(t, db, "b", "audio", true)
	c := seedProduct(t, db, "c", "audio", true)

	require.NoError(t, repo.Replace(ctx, p.ID, []*model.ProductRanking{
		{PeriodID: p.ID, ProductID: a.ID, Rank: 1, Score: 80},
		{PeriodID: p.ID, ProductID: b.ID, Rank: 2, Score: 70},
		{PeriodID: p.ID, ProductID: c.ID, Rank: 3, Score: 60},
	}))

	ranks, err := repo.ListRanks(ctx, p.ID)
	require.NoError(t, err)
	got := map[uint64]int{}
	for _, e := range ranks {
		got[e.EntityID] = e.Rank
	}
	assert.Equal(t, map[uint64]int{a.ID: 1, b.ID: 2, c.ID: 3}, got)

	// 第二次替换只保留新结果
	prev := 1
	require.NoError(t, repo.Replace(ctx, p.ID, []*model.ProductRanking{
		{PeriodID: p.ID, ProductID: c.ID, Rank: 1, Score: 90, PreviousRank: &prev},
	}))
	ranks, err = repo.ListRanks(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, ranks, 1)
	assert.Equal(t, c.ID, ranks[0].EntityID)

	require.NoError(t, repo.Replace(ctx, p.ID, nil))
	ranks, err = repo.ListRanks(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, ranks)
}

func TestProductRankingRepo_ReplaceRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRankingRepository(db)
	ctx := context.Background()

	p := seedPeriod(t, db, model.ScopeProduct)
	a := seedProduct(t, db, "a", "audio", true)
	b := seedProduct(t, db, "b", "audio", true)

	require.NoError(t, repo.Replace(ctx, p.ID, []*model.ProductRanking{
		{PeriodID: p.ID, ProductID: a.ID, Rank: 1, Score: 80},
	}))

	// 同一商品出现两次触发唯一索引冲突
	err := repo.Replace(ctx, p.ID, []*model.ProductRanking{
		{PeriodID: p.ID, ProductID: b.ID, Rank: 1, Score: 90},
		{PeriodID: p.ID, ProductID: b.ID, Rank: 2, Score: 10},
	})
	require.Error(t, err)

	ranks, err := repo.ListRanks(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, ranks, 1)
	assert.Equal(t, a.ID, ranks[0].EntityID)
}

func TestProductRankingRepo_ReplaceIsScopedToPeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRankingRepository(db)
	ctx := context.Background()

	p1 := seedPeriod(t, db, model.ScopeProduct)
	p2 := seedPeriod(t, db, model.ScopeArticle)
	a := seedProduct(t, db, "a", "audio", true)

	require.NoError(t, repo.Replace(ctx, p1.ID, []*model.ProductRanking{{PeriodID: p1.ID, ProductID: a.ID, Rank: 1}}))
	require.NoError(t, repo.Replace(ctx, p2.ID, []*model.ProductRanking{{PeriodID: p2.ID, ProductID: a.ID, Rank: 1}}))
	require.NoError(t, repo.Replace(ctx, p2.ID, nil))

	ranks, err := repo.ListRanks(ctx, p1.ID)
	require.NoError(t, err)
	assert.Len(t, ranks, 1)
}

func TestProductRankingRepo_ListByPeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRankingRepository(db)
	ctx := context.Background()

	p := seedPeriod(t, db, model.ScopeProduct)
	audio1 := seedProduct(t, db, "a1", "audio", true)
	audio2 := seedProduct(t, db, "a2", "audio", true)
	home := seedProduct(t, db, "h1", "home", true)
	gone := seedProduct(t, db, "g1", "audio", false)

	require.NoError(t, repo.Replace(ctx, p.ID, []*model.ProductRanking{
		{PeriodID: p.ID, ProductID: home.ID, Rank: 1, Score: 90},
		{PeriodID: p.ID, ProductID: audio1.ID, Rank: 2, Score: 80},
		{PeriodID: p.ID, ProductID: gone.ID, Rank: 3, Score: 70},
		{PeriodID: p.ID, ProductID: audio2.ID, Rank: 4, Score: 60},
	}))

	all, total, err := repo.ListByPeriod(ctx, p.ID, "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 4}, []int{all[0].Rank, all[1].Rank, all[2].Rank})
	require.NotNil(t, all[0].Product)
	assert.Equal(t, "h1", all[0].Product.Name)

	audio, total, err := repo.ListByPeriod(ctx, p.ID, "audio", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, audio, 2)
	assert.Equal(t, audio1.ID, audio[0].ProductID)

	page, total, err := repo.ListByPeriod(ctx, p.ID, "", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, audio1.ID, page[0].ProductID)
}

func TestProductRankingRepo_Override(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRankingRepository(db)
	ctx := context.Background()

	p := seedPeriod(t, db, model.ScopeProduct)
	a := seedProduct(t, db, "a", "audio", true)
	require.NoError(t, repo.Replace(ctx, p.ID, []*model.ProductRanking{{PeriodID: p.ID, ProductID: a.ID, Rank: 3, Score: 50}}))

	ranks, _, err := repo.ListByPeriod(ctx, p.ID, "", 0, 1)
	require.NoError(t, err)
	id := ranks[0].ID

	require.NoError(t, repo.UpdateOverride(ctx, id, map[string]interface{}{"rank_no": 1, "score": 99.5}))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.Rank)
	assert.Equal(t, 99.5, got.Score)

	missing, err := repo.GetByID(ctx, id+1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
