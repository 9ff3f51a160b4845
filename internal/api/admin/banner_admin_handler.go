package admin

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// BannerAdminHandler banner groups, banners and positions
type BannerAdminHandler struct {
	bannerService *service.BannerService
	logger        *logger.Logger
}

// NewBannerAdminHandler creates the banner admin handler
func NewBannerAdminHandler(bannerService *service.BannerService, logger *logger.Logger) *BannerAdminHandler {
	return &BannerAdminHandler{
		bannerService: bannerService,
		logger:        logger,
	}
}

func (h *BannerAdminHandler) ListGroups(c *gin.Context) {
	groups, err := h.bannerService.ListGroups(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, groups)
}

// GetGroup group with all of its banners, scheduled or not
func (h *BannerAdminHandler) GetGroup(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	g, err := h.bannerService.GetGroup(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, g)
}

func (h *BannerAdminHandler) CreateGroup(c *gin.Context) {
	var req types.BannerGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	g, err := h.bannerService.CreateGroup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, g)
}

func (h *BannerAdminHandler) UpdateGroup(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.BannerGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	g, err := h.bannerService.UpdateGroup(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, g)
}

func (h *BannerAdminHandler) DeleteGroup(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.bannerService.DeleteGroup(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *BannerAdminHandler) GetBanner(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	b, err := h.bannerService.GetBanner(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, b)
}

func (h *BannerAdminHandler) CreateBanner(c *gin.Context) {
	var req types.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	b, err := h.bannerService.CreateBanner(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, b)
}

// UpdateBanner partial update. clearSchedule removes both schedule dates.
func (h *BannerAdminHandler) UpdateBanner(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	b, err := h.bannerService.UpdateBanner(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, b)
}

func (h *BannerAdminHandler) DeleteBanner(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.bannerService.DeleteBanner(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *BannerAdminHandler) ListPositions(c *gin.Context) {
	positions, err := h.bannerService.ListPositions(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, positions)
}

func (h *BannerAdminHandler) GetPosition(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	p, err := h.bannerService.GetPosition(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, p)
}

// CreatePosition a UUID is generated when positionUuid is omitted
func (h *BannerAdminHandler) CreatePosition(c *gin.Context) {
	var req types.BannerPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	p, err := h.bannerService.CreatePosition(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, p)
}

func (h *BannerAdminHandler) UpdatePosition(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.BannerPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	p, err := h.bannerService.UpdatePosition(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, p)
}

func (h *BannerAdminHandler) DeletePosition(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.bannerService.DeletePosition(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}
