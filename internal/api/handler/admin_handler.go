package handler

import (
	"Trendscope/internal/api/dto"
	"Trendscope/internal/api/middleware"
	"Trendscope/internal/pkg/response"
	"Trendscope/internal/pkg/util"
	"Trendscope/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc service.AdminRankingService
}

func NewAdminHandler(adminSvc service.AdminRankingService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// OverrideRanking 手动修正名次或分数
func (h *AdminHandler) OverrideRanking(c *gin.Context) {
	adminID := c.GetUint64(middleware.CtxUserID)
	rankingID, ok := util.ParseID(c.Param("ranking_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.RankingOverrideDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	ranking, err := h.adminSvc.OverrideRanking(c.Request.Context(), adminID, rankingID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ranking)
}

// Calculate 手动触发排名计算
func (h *AdminHandler) Calculate(c *gin.Context) {
	adminID := c.GetUint64(middleware.CtxUserID)

	var req dto.RankingCalculateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.adminSvc.Recalculate(c.Request.Context(), adminID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (h *AdminHandler) ListPeriods(c *gin.Context) {
	var q dto.PeriodListQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&q); err != nil {
		response.Error(c, err)
		return
	}

	periods, err := h.adminSvc.ListPeriods(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, periods)
}

// ListOverrides 某条排名的人工修正记录
func (h *AdminHandler) ListOverrides(c *gin.Context) {
	rankingID, ok := util.ParseID(c.Param("ranking_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	history, err := h.adminSvc.ListOverrides(c.Request.Context(), rankingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}
