package logger

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSlowThreshold = 100 * time.Millisecond

// RedisLoggerHook 记录 Redis 连接失败、命令错误与慢命令
type RedisLoggerHook struct{}

func NewRedisLogger() *RedisLoggerHook {
	return &RedisLoggerHook{}
}

func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		start := time.Now()
		conn, err := next(ctx, network, addr)
		if err != nil {
			log.ErrorContext(ctx, "Redis Dial Error",
				log.String("addr", addr),
				log.Duration("latency", time.Since(start)),
				log.Any("err", err),
			)
		}
		return conn, err
	}
}

func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(start)

		if errors.Is(err, redis.Nil) {
			return err
		}

		name := cmd.Name()
		args := "[PROTECTED]"
		if name != "auth" && name != "hello" {
			args = fmt.Sprint(cmd.Args())
		}
		fields := []any{
			log.String("command", name),
			log.String("args", args),
			log.Duration("latency", elapsed),
		}

		if err != nil {
			log.ErrorContext(ctx, "Redis Error", append(fields, log.Any("err", err))...)
		} else if elapsed > redisSlowThreshold {
			log.WarnContext(ctx, "Redis Slow", fields...)
		}
		return err
	}
}

func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)

		if err != nil && !errors.Is(err, redis.Nil) {
			log.ErrorContext(ctx, "Redis Pipeline Error",
				log.Int("cmd_count", len(cmds)),
				log.Duration("latency", elapsed),
				log.Any("err", err))
		} else if elapsed > redisSlowThreshold {
			log.WarnContext(ctx, "Redis Pipeline Slow",
				log.Int("cmd_count", len(cmds)),
				log.Duration("latency", elapsed))
		}
		return err
	}
}
