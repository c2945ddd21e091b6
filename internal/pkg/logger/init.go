package logger

import (
	"Trendscope/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"time"
)

var LogWriter io.Writer = os.Stdout

const dialTimeout = 3 * time.Second

// InitLogger 标准输出始终启用；配置了 logstash 地址且可连通时同时上报带 trace_id 的日志
func InitLogger() {
	cfg := config.Cfg.Logstash
	opts := &log.HandlerOptions{Level: log.LevelInfo}

	var root log.Handler = log.NewJSONHandler(os.Stdout, opts)

	if cfg.Address != "" {
		conn, err := net.DialTimeout("tcp", cfg.Address, dialTimeout)
		if err != nil {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		} else {
			remote := log.NewJSONHandler(conn, opts).WithAttrs([]log.Attr{
				log.String("target_index", cfg.Index),
				log.String("log_token", cfg.Token),
			})
			root = &TeeHandler{handlers: []log.Handler{root, &RemoteFilterHandler{next: remote}}}
			LogWriter = io.MultiWriter(os.Stdout, conn)
		}
	}

	log.SetDefault(log.New(&ContextHandler{root}))
}
