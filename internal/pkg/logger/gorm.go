package logger

import (
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// SlogGormLogger 将 gorm 的 SQL 日志输出到 slog
type SlogGormLogger struct {
	LogLevel      gormlogger.LogLevel
	SlowThreshold time.Duration
}

func NewGormLogger() *SlogGormLogger {
	return &SlogGormLogger{LogLevel: gormlogger.Warn, SlowThreshold: 200 * time.Millisecond}
}

func (l *SlogGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.LogLevel = level
	return &next
}

func (l *SlogGormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Info {
		log.InfoContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Warn {
		log.WarnContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormlogger.Error {
		log.ErrorContext(ctx, msg, "data", data)
	}
}

func (l *SlogGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	msg := "SQL " + sqlVerb(sql)
	fields := []any{
		log.String("sql", sql),
		log.Duration("latency", elapsed),
		log.Int64("rows", rows),
	}

	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound):
		if l.LogLevel >= gormlogger.Error {
			log.ErrorContext(ctx, msg+" Error", append(fields, log.Any("err", err))...)
		}
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold:
		if l.LogLevel >= gormlogger.Warn {
			log.WarnContext(ctx, msg+" Slow", fields...)
		}
	default:
		if l.LogLevel >= gormlogger.Info {
			log.InfoContext(ctx, msg, fields...)
		}
	}
}

func sqlVerb(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "Query"
	}
	return strings.ToUpper(fields[0])
}
