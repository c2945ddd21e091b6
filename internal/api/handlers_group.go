package api

import "Trendscope/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	RankingHandler *handler.RankingHandler
	TrackHandler   *handler.TrackHandler
	AdminHandler   *handler.AdminHandler
	CronHandler    *handler.CronHandler
}
