package admin

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// FooterAdminHandler footer sections and their items
type FooterAdminHandler struct {
	footerService *service.FooterService
	logger        *logger.Logger
}

// NewFooterAdminHandler creates the footer admin handler
func NewFooterAdminHandler(footerService *service.FooterService, logger *logger.Logger) *FooterAdminHandler {
	return &FooterAdminHandler{
		footerService: footerService,
		logger:        logger,
	}
}

// ListSections every section with all items, inactive ones included
func (h *FooterAdminHandler) ListSections(c *gin.Context) {
	sections, err := h.footerService.ListSections(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, sections)
}

func (h *FooterAdminHandler) GetSection(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	s, err := h.footerService.GetSection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, s)
}

func (h *FooterAdminHandler) CreateSection(c *gin.Context) {
	var req types.FooterSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	s, err := h.footerService.CreateSection(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, s)
}

func (h *FooterAdminHandler) UpdateSection(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.FooterSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	s, err := h.footerService.UpdateSection(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, s)
}

// DeleteSection removes the section together with its items
func (h *FooterAdminHandler) DeleteSection(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.footerService.DeleteSection(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *FooterAdminHandler) ReorderSections(c *gin.Context) {
	var req types.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.footerService.ReorderSections(c.Request.Context(), req.Items); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

func (h *FooterAdminHandler) CreateItem(c *gin.Context) {
	var req types.FooterItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.footerService.CreateItem(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, item)
}

func (h *FooterAdminHandler) UpdateItem(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.FooterItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.footerService.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, item)
}

func (h *FooterAdminHandler) DeleteItem(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.footerService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *FooterAdminHandler) ReorderItems(c *gin.Context) {
	var req types.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.footerService.ReorderItems(c.Request.Context(), req.Items); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}
