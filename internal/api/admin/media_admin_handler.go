package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/constants"
	"kentkonut/internal/middleware"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// multipartOverhead room for form fields and part headers on top of the file limit
const multipartOverhead = 1 << 20

// MediaAdminHandler media library and media categories
type MediaAdminHandler struct {
	mediaService  *service.MediaService
	maxUploadSize int64
	logger        *logger.Logger
}

// NewMediaAdminHandler creates the media admin handler
func NewMediaAdminHandler(mediaService *service.MediaService, maxUploadSize int64, logger *logger.Logger) *MediaAdminHandler {
	return &MediaAdminHandler{
		mediaService:  mediaService,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Upload stores a multipart file
// @Summary Upload media
// @Tags admin-media
// @Accept multipart/form-data
// @Param file formData file true "file"
// @Param categoryId formData int false "media category"
// @Param altText formData string false "alt text"
// @Param caption formData string false "caption"
// @Router /api/admin/media [post]
func (h *MediaAdminHandler) Upload(c *gin.Context) {
	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+multipartOverhead)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("upload rejected", "limit", tooLarge.Limit)
			response.Fail(c, http.StatusBadRequest, constants.MsgFileTooLarge)
			return
		}
		response.Fail(c, http.StatusBadRequest, constants.MsgFileRequired)
		return
	}

	in := service.UploadInput{
		OriginalName: fh.Filename,
		AltText:      c.PostForm("altText"),
		Caption:      c.PostForm("caption"),
		UploadedBy:   middleware.CurrentUser(c).ID,
	}
	if raw := c.PostForm("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			response.Fail(c, http.StatusBadRequest, "categoryId alanı geçersiz")
			return
		}
		in.CategoryID = &id
	}

	f, err := fh.Open()
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	defer f.Close()
	in.File = f

	m, err := h.mediaService.Upload(c.Request.Context(), in)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, m)
}

func (h *MediaAdminHandler) ListMedia(c *gin.Context) {
	var q types.MediaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	page, err := h.mediaService.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Page(c, page)
}

func (h *MediaAdminHandler) GetMedia(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	m, err := h.mediaService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, m)
}

// UpdateMedia metadata only; the stored file is never moved
func (h *MediaAdminHandler) UpdateMedia(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.MediaUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	m, err := h.mediaService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, m)
}

func (h *MediaAdminHandler) DeleteMedia(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.mediaService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *MediaAdminHandler) ListCategories(c *gin.Context) {
	items, err := h.mediaService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, items)
}

func (h *MediaAdminHandler) GetCategory(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	cat, err := h.mediaService.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, cat)
}

func (h *MediaAdminHandler) CreateCategory(c *gin.Context) {
	var req types.MediaCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	cat, err := h.mediaService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, cat)
}

func (h *MediaAdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.MediaCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	cat, err := h.mediaService.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, cat)
}

// DeleteCategory built-in categories are refused
func (h *MediaAdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.mediaService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}
