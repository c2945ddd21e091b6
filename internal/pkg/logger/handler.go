package logger

import (
	"context"
	"errors"
	log "log/slog"
)

// TeeHandler 将日志分发到多个 Handler
type TeeHandler struct {
	handlers []log.Handler
}

func (s *TeeHandler) Enabled(ctx context.Context, level log.Level) bool {
	for _, h := range s.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle 任一 handler 失败不影响其余 handler
func (s *TeeHandler) Handle(ctx context.Context, r log.Record) error {
	var errs []error
	for _, h := range s.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *TeeHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return s.each(func(h log.Handler) log.Handler { return h.WithAttrs(attrs) })
}

func (s *TeeHandler) WithGroup(name string) log.Handler {
	return s.each(func(h log.Handler) log.Handler { return h.WithGroup(name) })
}

func (s *TeeHandler) each(fn func(log.Handler) log.Handler) log.Handler {
	next := make([]log.Handler, 0, len(s.handlers))
	for _, h := range s.handlers {
		next = append(next, fn(h))
	}
	return &TeeHandler{handlers: next}
}

// RemoteFilterHandler 只上报携带 trace_id 的日志
type RemoteFilterHandler struct {
	next log.Handler
}

func (s *RemoteFilterHandler) Enabled(ctx context.Context, level log.Level) bool {
	return s.next.Enabled(ctx, level)
}

func (s *RemoteFilterHandler) Handle(ctx context.Context, r log.Record) error {
	traced := false
	r.Attrs(func(a log.Attr) bool {
		if a.Key == TraceIDKey && a.Value.String() != "" {
			traced = true
			return false
		}
		return true
	})
	if !traced {
		return nil
	}
	return s.next.Handle(ctx, r)
}

func (s *RemoteFilterHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &RemoteFilterHandler{next: s.next.WithAttrs(attrs)}
}

func (s *RemoteFilterHandler) WithGroup(name string) log.Handler {
	return &RemoteFilterHandler{next: s.next.WithGroup(name)}
}
