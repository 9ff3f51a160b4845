package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/service"
	"kentkonut/pkg/logger"
)

// SystemHandler health and dashboard statistics
type SystemHandler struct {
	systemService *service.SystemService
	logger        *logger.Logger
}

// NewSystemHandler creates the system handler
func NewSystemHandler(systemService *service.SystemService, logger *logger.Logger) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		logger:        logger,
	}
}

// Health reports database and redis reachability
// @Summary Health check
// @Description 503 when a dependency is down
// @Tags system
// @Produce json
// @Success 200 {object} model.HealthStatus
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	status := h.systemService.Health(c.Request.Context())
	if !status.Healthy() {
		h.logger.Warn("health check degraded", "database", status.Database, "redis", status.Redis)
		c.JSON(http.StatusServiceUnavailable, response.Envelope{Success: false, Data: status})
		return
	}
	response.OK(c, status)
}

// DashboardStats content counters for the admin dashboard
// @Summary Dashboard statistics
// @Tags system
// @Router /api/admin/stats [get]
func (h *SystemHandler) DashboardStats(c *gin.Context) {
	stats, err := h.systemService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, stats)
}
