package handler

import (
	"Trendscope/internal/api/dto"
	"Trendscope/internal/pkg/response"
	"Trendscope/internal/pkg/util"
	"Trendscope/internal/service"

	"github.com/gin-gonic/gin"
)

type TrackHandler struct {
	trackSvc service.TrackService
}

func NewTrackHandler(trackSvc service.TrackService) *TrackHandler {
	return &TrackHandler{trackSvc: trackSvc}
}

func (h *TrackHandler) TrackArticleView(c *gin.Context) {
	var req dto.TrackArticleViewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.trackSvc.TrackArticleView(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (h *TrackHandler) TrackArticleShare(c *gin.Context) {
	var req dto.TrackArticleShareDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.trackSvc.TrackArticleShare(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
