package service

import (
	"Trendscope/internal/model"
	"Trendscope/internal/pkg/database"
	"Trendscope/internal/pkg/mongo"
	"Trendscope/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// --- fakes ---

type fakeCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	gens        map[string]int64
	invalidated []uint64
	hits        int

	// onMiss 在未命中返回之后、调用方查库之前执行
	onMiss func()
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}, gens: map[string]int64{}}
}

func genKey(scope string, periodID uint64) string {
	return fmt.Sprintf("%s:%d", scope, periodID)
}

func cacheKey(scope string, periodID uint64, field string) string {
	return fmt.Sprintf("%s:%d:%s", scope, periodID, field)
}

func (c *fakeCache) Get(_ context.Context, scope string, periodID uint64, field string, dest interface{}) (bool, int64, error) {
	c.mu.Lock()
	raw, ok := c.data[cacheKey(scope, periodID, field)]
	gen := c.gens[genKey(scope, periodID)]
	onMiss := c.onMiss
	if ok {
		c.hits++
	}
	c.mu.Unlock()

	if !ok {
		if onMiss != nil {
			onMiss()
		}
		return false, gen, nil
	}
	return true, gen, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(_ context.Context, scope string, periodID uint64, gen int64, field string, value interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[genKey(scope, periodID)] != gen {
		return false, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	c.data[cacheKey(scope, periodID, field)] = raw
	return true, nil
}

func (c *fakeCache) Invalidate(_ context.Context, scope string, periodID uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, periodID)
	c.gens[genKey(scope, periodID)]++
	prefix := fmt.Sprintf("%s:%d:", scope, periodID)
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*model.RankingComputedEvent
	err    error
}

func (p *fakePublisher) PublishRankingComputed(_ context.Context, event *model.RankingComputedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

type fakeLocker struct {
	held     map[string]bool
	released []string
	err      error
}

func (l *fakeLocker) Acquire(_ context.Context, key string) (func(), bool, error) {
	if l.err != nil {
		return nil, false, l.err
	}
	if l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true
	return func() {
		delete(l.held, key)
		l.released = append(l.released, key)
	}, true, nil
}

type fakeAuditRepo struct {
	actions []*mongo.AdminActionModel
	err     error
}

func (r *fakeAuditRepo) Create(_ context.Context, action *mongo.AdminActionModel) error {
	r.actions = append(r.actions, action)
	return r.err
}

func (r *fakeAuditRepo) ListByTarget(_ context.Context, targetType string, targetID uint64, _ int64) ([]*mongo.AdminActionModel, error) {
	list := make([]*mongo.AdminActionModel, 0)
	for _, a := range r.actions {
		if a.TargetType == targetType && a.TargetID == targetID {
			list = append(list, a)
		}
	}
	return list, nil
}

// failingProductRepo 模拟候选加载失败
type failingProductRepo struct {
	repository.ProductRepo
}

var errStorage = errors.New("storage unavailable")

func (failingProductRepo) ListActiveWithVideos(context.Context) ([]*model.Product, error) {
	return nil, errStorage
}

// --- seed helpers ---

func seedProductWithVideo(t *testing.T, db *gorm.DB, name, category string, views, likes, comments int64) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Category: category, IsActive: true}
	require.NoError(t, db.Create(p).Error)

	v := &model.Video{
		ProductID:   p.ID,
		YoutubeID:   "yt-" + name,
		Title:       name + " review",
		VideoType:   model.VideoTypeRegular,
		PublishedAt: testNow.AddDate(0, 0, -10),
		IsActive:    true,
	}
	require.NoError(t, db.Create(v).Error)
	require.NoError(t, db.Create(&model.VideoMetric{
		VideoID:      v.ID,
		ViewCount:    views,
		LikeCount:    likes,
		CommentCount: comments,
		CollectedAt:  testNow.Add(-time.Hour),
	}).Error)
	return p
}

func seedArticleWithEvents(t *testing.T, db *gorm.DB, title string, views, shares int) *model.Article {
	t.Helper()
	a := &model.Article{Title: title, IsActive: true, PublishedAt: testNow.Add(-12 * time.Hour)}
	require.NoError(t, db.Create(a).Error)
	for i := 0; i < views; i++ {
		require.NoError(t, db.Create(&model.ArticleView{ArticleID: a.ID, ViewedAt: testNow}).Error)
	}
	for i := 0; i < shares; i++ {
		require.NoError(t, db.Create(&model.ArticleShare{ArticleID: a.ID, SharedAt: testNow}).Error)
	}
	return a
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
