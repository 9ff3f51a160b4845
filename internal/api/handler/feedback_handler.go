package handler

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// FeedbackHandler public contact form
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
	logger          *logger.Logger
}

// NewFeedbackHandler creates the feedback handler
func NewFeedbackHandler(feedbackService *service.FeedbackService, logger *logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// Submit stores a citizen message after the captcha check
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Router /api/public/feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req types.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	f, err := h.feedbackService.Submit(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, gin.H{"id": f.ID, "status": f.Status})
}
