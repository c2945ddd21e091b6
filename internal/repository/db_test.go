package repository

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/database"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var baseTime = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库按连接隔离，测试内只保留一条连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, category string, active bool) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Category: category, IsActive: active}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedVideo(t *testing.T, db *gorm.DB, productID uint64, youtubeID string, active bool) *model.Video {
	t.Helper()
	v := &model.Video{
		ProductID:   productID,
		YoutubeID:   youtubeID,
		VideoType:   model.VideoTypeRegular,
		PublishedAt: baseTime.AddDate(0, 0, -3),
		IsActive:    active,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func seedMetric(t *testing.T, db *gorm.DB, videoID uint64, views int64, at time.Time) *model.VideoMetric {
	t.Helper()
	m := &model.VideoMetric{VideoID: videoID, ViewCount: views, LikeCount: views / 10, CommentCount: views / 100, CollectedAt: at}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedPeriod(t *testing.T, db *gorm.DB, scope string) *model.RankingPeriod {
	t.Helper()
	p := &model.RankingPeriod{
		Scope:      scope,
		PeriodType: "DAILY",
		Year:       2026,
		Month:      3,
		Day:        15,
		StartedAt:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		EndedAt:    time.Date(2026, 3, 15, 23, 59, 59, 999000000, time.UTC),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
