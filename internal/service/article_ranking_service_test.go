package service

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/period"
	"Trendscope/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newArticleRankingService(t *testing.T) (*gorm.DB, *articleRankingServiceImpl, *fakePublisher) {
	t.Helper()
	db := newTestDB(t)
	publisher := &fakePublisher{}
	svc := NewArticleRankingService(
		NewPeriodService(repository.NewRankingPeriodRepository(db)),
		repository.NewArticleRepository(db),
		repository.NewArticleRankingRepository(db),
		nil,
		publisher,
	).(*articleRankingServiceImpl)
	svc.runner.clock = fixedClock
	return db, svc, publisher
}

func TestArticleRanking_Calculate(t *testing.T) {
	db, svc, publisher := newArticleRankingService(t)

	hot := seedArticleWithEvents(t, db, "hot", 12, 4)
	warm := seedArticleWithEvents(t, db, "warm", 3, 0)
	seedArticleWithEvents(t, db, "silent", 0, 0)
	sharedOnly := seedArticleWithEvents(t, db, "shared", 0, 2)

	result, err := svc.Calculate(context.Background(), period.Daily, testNow)
	require.NoError(t, err)
	assert.Equal(t, model.ScopeArticle, result.Scope)
	assert.Equal(t, 3, result.RankingsWritten)

	var rows []model.ArticleRanking
	require.NoError(t, db.Where("period_id = ?", result.PeriodID).Order("rank_no ASC").Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.Equal(t, hot.ID, rows[0].ArticleID)
	assert.Equal(t, int64(12), rows[0].ViewCount)
	assert.Equal(t, int64(4), rows[0].ShareCount)

	ids := []uint64{rows[1].ArticleID, rows[2].ArticleID}
	assert.ElementsMatch(t, []uint64{warm.ID, sharedOnly.ID}, ids)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, model.ScopeArticle, publisher.events[0].Scope)
}

func TestArticleRanking_MonthlyWithPrevious(t *testing.T) {
	db, svc, _ := newArticleRankingService(t)
	a := seedArticleWithEvents(t, db, "a", 5, 1)

	feb, err := svc.Calculate(context.Background(), period.Monthly, testNow.AddDate(0, -1, 0))
	require.NoError(t, err)
	mar, err := svc.Calculate(context.Background(), period.Monthly, testNow)
	require.NoError(t, err)

	require.NotNil(t, mar.PreviousPeriodID)
	assert.Equal(t, feb.PeriodID, *mar.PreviousPeriodID)

	var row model.ArticleRanking
	require.NoError(t, db.Where("period_id = ? AND article_id = ?", mar.PeriodID, a.ID).First(&row).Error)
	require.NotNil(t, row.PreviousRank)
	assert.Equal(t, 1, *row.PreviousRank)
}

func TestArticleRanking_UnsupportedGranularity(t *testing.T) {
	db, svc, _ := newArticleRankingService(t)

	for _, g := range []period.Granularity{period.Yearly, period.FourHourly} {
		_, err := svc.Calculate(context.Background(), g, testNow)
		assert.ErrorIs(t, err, ErrInvalidGranularity)
	}
	assert.Zero(t, countRows(t, db, &model.RankingPeriod{}))
}
