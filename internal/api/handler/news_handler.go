package handler

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// NewsHandler published news
type NewsHandler struct {
	newsService *service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates the news handler
func NewNewsHandler(newsService *service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		logger:      logger,
	}
}

// ListNews published news, newest first
// @Summary News list
// @Tags news
// @Param page query int false "page"
// @Param pageSize query int false "page size"
// @Param category query string false "category slug"
// @Param tag query string false "tag slug"
// @Param q query string false "search"
// @Router /api/public/news [get]
func (h *NewsHandler) ListNews(c *gin.Context) {
	var q types.NewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	page, err := h.newsService.ListPublished(c.Request.Context(), q)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Page(c, page)
}

// GetNews published article by slug. Each read bumps the view counter.
// @Summary News detail
// @Tags news
// @Router /api/public/news/{slug} [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	news, err := h.newsService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, news)
}

// ListCategories active news categories
// @Router /api/public/news-categories [get]
func (h *NewsHandler) ListCategories(c *gin.Context) {
	categories, err := h.newsService.ListCategories(c.Request.Context(), true)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, categories)
}
