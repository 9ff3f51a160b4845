package admin

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// QuickAccessAdminHandler quick access links and homepage highlights
type QuickAccessAdminHandler struct {
	quickAccessService *service.QuickAccessService
	highlightService   *service.HighlightService
	logger             *logger.Logger
}

// NewQuickAccessAdminHandler creates the quick access admin handler
func NewQuickAccessAdminHandler(quickAccessService *service.QuickAccessService, highlightService *service.HighlightService, logger *logger.Logger) *QuickAccessAdminHandler {
	return &QuickAccessAdminHandler{
		quickAccessService: quickAccessService,
		highlightService:   highlightService,
		logger:             logger,
	}
}

func (h *QuickAccessAdminHandler) ListLinks(c *gin.Context) {
	links, err := h.quickAccessService.List(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, links)
}

func (h *QuickAccessAdminHandler) GetLink(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	link, err := h.quickAccessService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, link)
}

func (h *QuickAccessAdminHandler) CreateLink(c *gin.Context) {
	var req types.QuickAccessLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	link, err := h.quickAccessService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, link)
}

func (h *QuickAccessAdminHandler) UpdateLink(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.QuickAccessLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	link, err := h.quickAccessService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, link)
}

func (h *QuickAccessAdminHandler) DeleteLink(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.quickAccessService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *QuickAccessAdminHandler) ReorderLinks(c *gin.Context) {
	var req types.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.quickAccessService.Reorder(c.Request.Context(), req.Items); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}

func (h *QuickAccessAdminHandler) ListHighlights(c *gin.Context) {
	items, err := h.highlightService.List(c.Request.Context(), false)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, items)
}

func (h *QuickAccessAdminHandler) GetHighlight(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	item, err := h.highlightService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, item)
}

func (h *QuickAccessAdminHandler) CreateHighlight(c *gin.Context) {
	var req types.HighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.highlightService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, item)
}

func (h *QuickAccessAdminHandler) UpdateHighlight(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.HighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.highlightService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, item)
}

func (h *QuickAccessAdminHandler) DeleteHighlight(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.highlightService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *QuickAccessAdminHandler) ReorderHighlights(c *gin.Context) {
	var req types.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.highlightService.Reorder(c.Request.Context(), req.Items); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}
