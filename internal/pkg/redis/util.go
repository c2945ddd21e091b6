package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockRetryInterval = 200 * time.Millisecond

const unlockScript = "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end"

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值，不存在返回空串
func GetValue(ctx context.Context, key string) (string, error) {
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// TryLock 尝试加锁，retryTimes 为 -1 时一直重试直到 ctx 结束
func TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error) {
	for i := 0; i < retryTimes || retryTimes == -1; i++ {
		ok, err := Rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if i == retryTimes-1 {
			break
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
	return false, nil
}

// UnLock 仅当锁仍由 value 持有时释放
func UnLock(ctx context.Context, key string, value interface{}) error {
	return Rdb.Eval(ctx, unlockScript, []string{key}, value).Err()
}

// DeleteKey 删除键
func DeleteKey(ctx context.Context, key string) error {
	return Rdb.Del(ctx, key).Err()
}

func GetRdbClient() *redis.Client {
	return Rdb
}
