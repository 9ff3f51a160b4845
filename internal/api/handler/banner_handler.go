package handler

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/service"
	"kentkonut/pkg/logger"
)

// BannerHandler public banner delivery and counters
type BannerHandler struct {
	bannerService *service.BannerService
	logger        *logger.Logger
}

// NewBannerHandler creates the banner handler
func NewBannerHandler(bannerService *service.BannerService, logger *logger.Logger) *BannerHandler {
	return &BannerHandler{
		bannerService: bannerService,
		logger:        logger,
	}
}

// GetPositionBanners banners currently shown at a position
// @Summary Banners of a position
// @Description Falls back to the position's fallback group when the primary group has nothing to show
// @Tags banners
// @Router /api/public/banners/position/{uuid} [get]
func (h *BannerHandler) GetPositionBanners(c *gin.Context) {
	result, err := h.bannerService.ResolvePosition(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, result)
}

// RecordView counts an impression. The counter is updated in the background.
// @Router /api/public/banners/{id}/view [post]
func (h *BannerHandler) RecordView(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	h.bannerService.RecordView(id)
	response.OK(c, nil)
}

// RecordClick counts a click
// @Router /api/public/banners/{id}/click [post]
func (h *BannerHandler) RecordClick(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	h.bannerService.RecordClick(id)
	response.OK(c, nil)
}
