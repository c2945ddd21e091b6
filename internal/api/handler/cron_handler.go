package handler

import (
	"Trendscope/internal/pkg/response"
	"Trendscope/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type CronHandler struct {
	triggerSvc service.RankingTriggerService
}

func NewCronHandler(triggerSvc service.RankingTriggerService) *CronHandler {
	return &CronHandler{triggerSvc: triggerSvc}
}

// TriggerRanking 供外部调度器调用，date 缺省为当前时间
func (h *CronHandler) TriggerRanking(c *gin.Context) {
	scope, err := service.NormalizeScope(c.Param("scope"))
	if err != nil {
		response.Error(c, err)
		return
	}
	g, err := service.ParseGranularity(c.Param("period_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	ref, err := service.ParseReferenceDate(c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.triggerSvc.Trigger(c.Request.Context(), scope, g, ref)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "cron ranking trigger failed", "scope", scope, "granularity", g, "err", err)
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
