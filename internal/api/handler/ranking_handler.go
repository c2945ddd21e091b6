package handler

import (
	"Trendscope/internal/api/dto"
	"Trendscope/internal/pkg/response"
	"Trendscope/internal/pkg/scoring"
	"Trendscope/internal/pkg/util"
	"Trendscope/internal/service"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	querySvc service.RankingQueryService
	scoreSvc service.ScoreBreakdownService
}

func NewRankingHandler(querySvc service.RankingQueryService, scoreSvc service.ScoreBreakdownService) *RankingHandler {
	return &RankingHandler{
		querySvc: querySvc,
		scoreSvc: scoreSvc,
	}
}

// GetProductRankings 商品排名
func (h *RankingHandler) GetProductRankings(c *gin.Context) {
	var q dto.RankingQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&q); err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.querySvc.GetProductRankings(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

// GetArticleRankings 新闻排名
func (h *RankingHandler) GetArticleRankings(c *gin.Context) {
	var q dto.RankingQueryDTO
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&q); err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.querySvc.GetArticleRankings(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (h *RankingHandler) GetMethod(c *gin.Context) {
	response.Success(c, scoring.MethodDescription())
}

// GetProductScore 商品实时得分明细
func (h *RankingHandler) GetProductScore(c *gin.Context) {
	productID, ok := util.ParseID(c.Param("product_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	score, err := h.scoreSvc.GetProductScore(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, score)
}
