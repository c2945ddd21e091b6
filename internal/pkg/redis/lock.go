package redis

import (
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// Locker 基于 SETNX 的分布式互斥锁，单次尝试不等待
type Locker struct {
	ttl time.Duration
}

func NewLocker(ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Locker{ttl: ttl}
}

// Acquire 获取锁，ok 为 false 表示锁已被他人持有
func (l *Locker) Acquire(ctx context.Context, key string) (func(), bool, error) {
	token := uuid.NewString()
	ok, err := TryLock(ctx, key, token, l.ttl, 1)
	if err != nil || !ok {
		return nil, false, err
	}

	release := func() {
		// 请求 ctx 可能已取消，释放使用独立超时
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
		defer cancel()
		if err := UnLock(unlockCtx, key, token); err != nil {
			log.WarnContext(ctx, "release lock failed", "key", key, "err", err)
		}
	}
	return release, true, nil
}
