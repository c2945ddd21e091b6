package logger

import (
	"Trendscope/internal/api/config"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessLog struct {
	Time        string `json:"time"`
	Level       string `json:"level"`
	Msg         string `json:"msg"`
	TraceID     string `json:"trace_id"`
	LogToken    string `json:"log_token,omitempty"`
	TargetIndex string `json:"target_index,omitempty"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Status      int    `json:"status"`
	Latency     string `json:"latency"`
	ClientIP    string `json:"client_ip"`
}

// SetupGin 注册 JSON 格式的访问日志与 panic 恢复
func SetupGin(r *gin.Engine) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		Formatter: formatAccess,
	}))
	r.Use(gin.Recovery())
}

func formatAccess(p gin.LogFormatterParams) string {
	entry := accessLog{
		Time:     p.TimeStamp.Format(time.RFC3339),
		Level:    "INFO",
		Msg:      "GIN_ACCESS",
		Method:   p.Method,
		Path:     p.Path,
		Status:   p.StatusCode,
		Latency:  p.Latency.String(),
		ClientIP: p.ClientIP,
	}
	if id, ok := p.Keys[TraceIDKey].(string); ok {
		entry.TraceID = id
	} else if p.Request != nil {
		entry.TraceID = TraceID(p.Request.Context())
	}
	if config.Cfg != nil {
		entry.LogToken = config.Cfg.Logstash.Token
		entry.TargetIndex = config.Cfg.Logstash.Index
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return ""
	}
	return string(b) + "\n"
}
