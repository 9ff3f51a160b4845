package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/model"
	"kentkonut/internal/service"
	"kentkonut/pkg/logger"
)

// DepartmentHandler public department and management pages
type DepartmentHandler struct {
	departmentService *service.DepartmentService
	logger            *logger.Logger
}

// NewDepartmentHandler creates the department handler
func NewDepartmentHandler(departmentService *service.DepartmentService, logger *logger.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
		logger:            logger,
	}
}

// ListDepartments active departments in display order
// @Summary Departments
// @Tags departments
// @Router /api/public/departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context(), true)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, departments)
}

// GetDepartment department page with its director and chiefs
// @Summary Department detail
// @Tags departments
// @Router /api/public/departments/{slug} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	detail, err := h.departmentService.GetDepartmentDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, detail)
}

// ListExecutives active executives, optionally filtered by ?type=
// @Summary Executives
// @Tags departments
// @Router /api/public/executives [get]
func (h *DepartmentHandler) ListExecutives(c *gin.Context) {
	typ := model.ExecutiveType(strings.ToUpper(c.Query("type")))
	switch typ {
	case "", model.ExecutivePresident, model.ExecutiveGeneralManager, model.ExecutiveDirector,
		model.ExecutiveManager, model.ExecutiveDepartment:
	default:
		response.Fail(c, http.StatusBadRequest, "Geçersiz yönetici türü")
		return
	}

	executives, err := h.departmentService.ListExecutives(c.Request.Context(), typ, true)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, executives)
}
