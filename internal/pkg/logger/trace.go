package logger

import (
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// TraceIDKey 定义 Context 中的 Key
const TraceIDKey = "trace_id"

// ContextHandler 从 ctx 中提取 trace_id 写入日志记录
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if id := TraceID(ctx); id != "" {
		r.AddAttrs(log.String(TraceIDKey, id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) log.Handler {
	return &ContextHandler{h.Handler.WithGroup(name)}
}

// TraceID 读取 ctx 中的 trace_id，不存在返回空串
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(TraceIDKey).(string)
	return id
}

// WithJobTrace 为后台任务生成 job-<name>-<uuid> 形式的 trace_id
func WithJobTrace(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, TraceIDKey, "job-"+name+"-"+uuid.NewString())
}
