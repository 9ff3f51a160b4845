package admin

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// GalleryAdminHandler gallery tree and gallery items
type GalleryAdminHandler struct {
	galleryService *service.GalleryService
	logger         *logger.Logger
}

// NewGalleryAdminHandler creates the gallery admin handler
func NewGalleryAdminHandler(galleryService *service.GalleryService, logger *logger.Logger) *GalleryAdminHandler {
	return &GalleryAdminHandler{
		galleryService: galleryService,
		logger:         logger,
	}
}

// Tree every gallery, inactive ones included
func (h *GalleryAdminHandler) Tree(c *gin.Context) {
	tree, err := h.galleryService.Tree(c.Request.Context(), false)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, tree)
}

func (h *GalleryAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	g, err := h.galleryService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, g)
}

func (h *GalleryAdminHandler) Create(c *gin.Context) {
	var req types.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	g, err := h.galleryService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, g)
}

// Update moving a gallery under one of its own descendants is refused
func (h *GalleryAdminHandler) Update(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	g, err := h.galleryService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, g)
}

func (h *GalleryAdminHandler) Delete(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.galleryService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *GalleryAdminHandler) AddItem(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.galleryService.AddItem(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, item)
}

func (h *GalleryAdminHandler) DeleteItem(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	itemID, ok := response.ParamID(c, "itemId")
	if !ok {
		return
	}
	if err := h.galleryService.DeleteItem(c.Request.Context(), id, itemID); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}
