package logger

import (
	"context"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"
)

const (
	mongoSlowThreshold = 200 * time.Millisecond
	mongoCmdMaxLen     = 1000
)

// NewMongoMonitor 记录 MongoDB 命令的开始、耗时与失败
func NewMongoMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(ctx context.Context, evt *event.CommandStartedEvent) {
			detail := evt.Command.String()
			if len(detail) > mongoCmdMaxLen {
				detail = detail[:mongoCmdMaxLen] + "...[truncated]"
			}
			log.DebugContext(ctx, "MongoDB Started",
				log.String("command", evt.CommandName),
				log.String("database", evt.DatabaseName),
				log.Int64("request_id", evt.RequestID),
				log.String("cmd_detail", detail),
			)
		},
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			if evt.Duration <= mongoSlowThreshold {
				return
			}
			log.WarnContext(ctx, "MongoDB Slow",
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
				log.Int64("request_id", evt.RequestID),
			)
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			log.ErrorContext(ctx, "MongoDB Error",
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
				log.Int64("request_id", evt.RequestID),
				log.Any("err", evt.Failure),
			)
		},
	}
}
