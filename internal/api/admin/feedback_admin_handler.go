package admin

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/middleware"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// FeedbackAdminHandler citizen feedback inbox
type FeedbackAdminHandler struct {
	feedbackService *service.FeedbackService
	logger          *logger.Logger
}

// NewFeedbackAdminHandler creates the feedback admin handler
func NewFeedbackAdminHandler(feedbackService *service.FeedbackService, logger *logger.Logger) *FeedbackAdminHandler {
	return &FeedbackAdminHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// List newest first, filtered by ?status= and ?category=
// @Router /api/admin/feedback [get]
func (h *FeedbackAdminHandler) List(c *gin.Context) {
	var q types.FeedbackQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	page, err := h.feedbackService.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Page(c, page)
}

func (h *FeedbackAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	f, err := h.feedbackService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, f)
}

// UpdateStatus moves the message through the workflow and records the reply
// @Router /api/admin/feedback/{id}/status [patch]
func (h *FeedbackAdminHandler) UpdateStatus(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.FeedbackStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	f, err := h.feedbackService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	h.logger.Info("feedback status changed", "id", id, "status", f.Status, "by", middleware.CurrentUser(c).ID)
	response.OK(c, f)
}

func (h *FeedbackAdminHandler) Delete(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.feedbackService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}
