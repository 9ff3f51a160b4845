package admin

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/middleware"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// NewsAdminHandler articles, news categories and tags
type NewsAdminHandler struct {
	newsService *service.NewsService
	logger      *logger.Logger
}

// NewNewsAdminHandler creates the news admin handler
func NewNewsAdminHandler(newsService *service.NewsService, logger *logger.Logger) *NewsAdminHandler {
	return &NewsAdminHandler{
		newsService: newsService,
		logger:      logger,
	}
}

// ListNews every article regardless of status
// @Summary List news
// @Tags admin-news
// @Param status query string false "DRAFT, PUBLISHED or SCHEDULED"
// @Param categoryId query int false "category"
// @Param q query string false "search"
// @Router /api/admin/news [get]
func (h *NewsAdminHandler) ListNews(c *gin.Context) {
	var q types.NewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	page, err := h.newsService.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Page(c, page)
}

func (h *NewsAdminHandler) GetNews(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	n, err := h.newsService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, n)
}

// CreateNews the caller becomes the author
// @Router /api/admin/news [post]
func (h *NewsAdminHandler) CreateNews(c *gin.Context) {
	var req types.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	n, err := h.newsService.Create(c.Request.Context(), middleware.CurrentUser(c).ID, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, n)
}

func (h *NewsAdminHandler) UpdateNews(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	n, err := h.newsService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, n)
}

func (h *NewsAdminHandler) DeleteNews(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.newsService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *NewsAdminHandler) ListCategories(c *gin.Context) {
	items, err := h.newsService.ListCategories(c.Request.Context(), false)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, items)
}

func (h *NewsAdminHandler) GetCategory(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	cat, err := h.newsService.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, cat)
}

func (h *NewsAdminHandler) CreateCategory(c *gin.Context) {
	var req types.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	cat, err := h.newsService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, cat)
}

func (h *NewsAdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	cat, err := h.newsService.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, cat)
}

func (h *NewsAdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.newsService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *NewsAdminHandler) ListTags(c *gin.Context) {
	tags, err := h.newsService.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, tags)
}

func (h *NewsAdminHandler) CreateTag(c *gin.Context) {
	var req types.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	tag, err := h.newsService.CreateTag(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, tag)
}

func (h *NewsAdminHandler) UpdateTag(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	tag, err := h.newsService.UpdateTag(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, tag)
}

func (h *NewsAdminHandler) DeleteTag(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.newsService.DeleteTag(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}
