package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPage struct {
	Total int64    `json:"total"`
	Names []string `json:"names"`
}

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRankingCache_RoundTrip(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewRankingCache(client, 10*time.Minute)
	ctx := context.Background()

	var miss cachedPage
	hit, gen, err := cache.Get(ctx, "PRODUCT", 7, "page:1", &miss)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(0), gen)

	written, err := cache.Set(ctx, "PRODUCT", 7, gen, "page:1", cachedPage{Total: 2, Names: []string{"a", "b"}})
	require.NoError(t, err)
	assert.True(t, written)
	assert.True(t, mr.Exists("ranking:cache:PRODUCT:7"))
	assert.Equal(t, 10*time.Minute, mr.TTL("ranking:cache:PRODUCT:7"))

	var got cachedPage
	hit, _, err = cache.Get(ctx, "PRODUCT", 7, "page:1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, cachedPage{Total: 2, Names: []string{"a", "b"}}, got)
}

func TestRankingCache_InvalidateDropsAllPages(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewRankingCache(client, time.Minute)
	ctx := context.Background()

	for _, w := range []struct {
		periodID uint64
		field    string
	}{{3, "page:1"}, {3, "page:2"}, {4, "page:1"}} {
		written, err := cache.Set(ctx, "ARTICLE", w.periodID, 0, w.field, cachedPage{Total: 1})
		require.NoError(t, err)
		require.True(t, written)
	}

	require.NoError(t, cache.Invalidate(ctx, "ARTICLE", 3))

	assert.False(t, mr.Exists("ranking:cache:ARTICLE:3"))
	assert.True(t, mr.Exists("ranking:cache:ARTICLE:4"))
	gen, err := mr.Get("ranking:gen:ARTICLE:3")
	require.NoError(t, err)
	assert.Equal(t, "1", gen)
	assert.Equal(t, generationTTL, mr.TTL("ranking:gen:ARTICLE:3"))
}

func TestRankingCache_StaleWriteAfterInvalidateIsDropped(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewRankingCache(client, time.Minute)
	ctx := context.Background()

	// 读请求未命中，记下世代号后去查库
	var page cachedPage
	hit, gen, err := cache.Get(ctx, "PRODUCT", 9, "page:1", &page)
	require.NoError(t, err)
	require.False(t, hit)

	// 查库期间排名被重算
	require.NoError(t, cache.Invalidate(ctx, "PRODUCT", 9))

	written, err := cache.Set(ctx, "PRODUCT", 9, gen, "page:1", cachedPage{Total: 5})
	require.NoError(t, err)
	assert.False(t, written)
	assert.False(t, mr.Exists("ranking:cache:PRODUCT:9"))

	// 重新读取后拿到新世代号，可以正常回写
	hit, gen, err = cache.Get(ctx, "PRODUCT", 9, "page:1", &page)
	require.NoError(t, err)
	require.False(t, hit)
	assert.Equal(t, int64(1), gen)

	written, err = cache.Set(ctx, "PRODUCT", 9, gen, "page:1", cachedPage{Total: 6})
	require.NoError(t, err)
	assert.True(t, written)
}

func TestLock(t *testing.T) {
	_, client := newTestClient(t)
	Rdb = client
	t.Cleanup(func() { Rdb = nil })
	ctx := context.Background()

	ok, err := TryLock(ctx, "lock:test", "owner-1", time.Minute, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = TryLock(ctx, "lock:test", "owner-2", time.Minute, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	// 非持有者释放无效
	require.NoError(t, UnLock(ctx, "lock:test", "owner-2"))
	v, err := GetValue(ctx, "lock:test")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", v)

	require.NoError(t, UnLock(ctx, "lock:test", "owner-1"))
	v, err = GetValue(ctx, "lock:test")
	require.NoError(t, err)
	assert.Empty(t, v)
}
