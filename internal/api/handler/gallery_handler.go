package handler

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/service"
	"kentkonut/pkg/logger"
)

// GalleryHandler public galleries
type GalleryHandler struct {
	galleryService *service.GalleryService
	logger         *logger.Logger
}

// NewGalleryHandler creates the gallery handler
func NewGalleryHandler(galleryService *service.GalleryService, logger *logger.Logger) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		logger:         logger,
	}
}

// Tree active galleries as a nested tree
// @Router /api/public/galleries/tree [get]
func (h *GalleryHandler) Tree(c *gin.Context) {
	tree, err := h.galleryService.Tree(c.Request.Context(), true)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, tree)
}

// GetGallery active gallery with its items
// @Router /api/public/galleries/{slug} [get]
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	g, err := h.galleryService.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, g)
}
