package redis

import (
	"Trendscope/internal/pkg/consts"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// 世代键只需比一次分页读取活得久
const generationTTL = 24 * time.Hour

// 世代号未变化时才写入分页，KEYS: hash, 世代键；ARGV: 世代号, field, value, ttl(ms)
const setIfGenerationScript = `
local gen = redis.call('get', KEYS[2]) or '0'
if gen ~= ARGV[1] then return 0 end
redis.call('hset', KEYS[1], ARGV[2], ARGV[3])
if tonumber(ARGV[4]) > 0 then redis.call('pexpire', KEYS[1], ARGV[4]) end
return 1`

// RankingCache 排名分页缓存。同一周期的所有分页存放在一个 hash 中，重算或修正后整体删除。
// 每个周期另有一个世代号，失效时自增，读到旧数据的请求无法再回写
type RankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRankingCache(client *redis.Client, ttl time.Duration) *RankingCache {
	return &RankingCache{client: client, ttl: ttl}
}

func rankingCacheKey(scope string, periodID uint64) string {
	return consts.RankingCacheKey + scope + ":" + strconv.FormatUint(periodID, 10)
}

func rankingGenKey(scope string, periodID uint64) string {
	return consts.RankingCacheGenKey + scope + ":" + strconv.FormatUint(periodID, 10)
}

// Get 命中时将缓存反序列化到 dest 并返回 true；同时返回当前世代号，供未命中时回写
func (c *RankingCache) Get(ctx context.Context, scope string, periodID uint64, field string, dest interface{}) (bool, int64, error) {
	pipe := c.client.TxPipeline()
	pageCmd := pipe.HGet(ctx, rankingCacheKey(scope, periodID), field)
	genCmd := pipe.Get(ctx, rankingGenKey(scope, periodID))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, 0, err
	}

	gen, err := genCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, 0, err
	}

	raw, err := pageCmd.Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, gen, nil
		}
		return false, 0, err
	}
	if err = json.Unmarshal(raw, dest); err != nil {
		return false, 0, err
	}
	return true, gen, nil
}

// Set 仅当世代号仍为 gen 时写入，返回是否写入
func (c *RankingCache) Set(ctx context.Context, scope string, periodID uint64, gen int64, field string, value interface{}) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}

	keys := []string{rankingCacheKey(scope, periodID), rankingGenKey(scope, periodID)}
	written, err := c.client.Eval(ctx, setIfGenerationScript, keys,
		strconv.FormatInt(gen, 10), field, raw, c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return written == 1, nil
}

// Invalidate 自增世代号并删除该周期全部分页
func (c *RankingCache) Invalidate(ctx context.Context, scope string, periodID uint64) error {
	genKey := rankingGenKey(scope, periodID)
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, genKey)
	pipe.Expire(ctx, genKey, generationTTL)
	pipe.Del(ctx, rankingCacheKey(scope, periodID))
	_, err := pipe.Exec(ctx)
	return err
}
