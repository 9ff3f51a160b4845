package admin

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/model"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// DepartmentAdminHandler departments, their personnel and executives
type DepartmentAdminHandler struct {
	departmentService *service.DepartmentService
	logger            *logger.Logger
}

// NewDepartmentAdminHandler creates the department admin handler
func NewDepartmentAdminHandler(departmentService *service.DepartmentService, logger *logger.Logger) *DepartmentAdminHandler {
	return &DepartmentAdminHandler{
		departmentService: departmentService,
		logger:            logger,
	}
}

// ListDepartments all departments including inactive ones
func (h *DepartmentAdminHandler) ListDepartments(c *gin.Context) {
	items, err := h.departmentService.ListDepartments(c.Request.Context(), false)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, items)
}

func (h *DepartmentAdminHandler) GetDepartment(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	d, err := h.departmentService.GetDepartment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, d)
}

func (h *DepartmentAdminHandler) CreateDepartment(c *gin.Context) {
	var req types.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	d, err := h.departmentService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, d)
}

func (h *DepartmentAdminHandler) UpdateDepartment(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	d, err := h.departmentService.UpdateDepartment(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, d)
}

func (h *DepartmentAdminHandler) DeleteDepartment(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.departmentService.DeleteDepartment(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

type personnelQuery struct {
	DepartmentID int64  `form:"departmentId" binding:"omitempty,min=1"`
	Type         string `form:"type" binding:"omitempty,oneof=DIRECTOR CHIEF"`
}

// ListPersonnel directors and chiefs, filtered by ?departmentId= and ?type=
func (h *DepartmentAdminHandler) ListPersonnel(c *gin.Context) {
	var q personnelQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	items, err := h.departmentService.ListPersonnel(c.Request.Context(), model.PersonnelFilter{
		DepartmentID: q.DepartmentID,
		Type:         model.PersonnelType(q.Type),
	})
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, items)
}

func (h *DepartmentAdminHandler) GetPersonnel(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	p, err := h.departmentService.GetPersonnel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, p)
}

func (h *DepartmentAdminHandler) CreatePersonnel(c *gin.Context) {
	var req types.PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	p, err := h.departmentService.CreatePersonnel(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, p)
}

func (h *DepartmentAdminHandler) UpdatePersonnel(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	p, err := h.departmentService.UpdatePersonnel(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, p)
}

func (h *DepartmentAdminHandler) DeletePersonnel(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.departmentService.DeletePersonnel(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

type executiveQuery struct {
	Type string `form:"type" binding:"omitempty,oneof=PRESIDENT GENERAL_MANAGER DIRECTOR MANAGER DEPARTMENT"`
}

// ListExecutives all executives, optionally of one ?type=
func (h *DepartmentAdminHandler) ListExecutives(c *gin.Context) {
	var q executiveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	items, err := h.departmentService.ListExecutives(c.Request.Context(), model.ExecutiveType(q.Type), false)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, items)
}

func (h *DepartmentAdminHandler) GetExecutive(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	e, err := h.departmentService.GetExecutive(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, e)
}

func (h *DepartmentAdminHandler) CreateExecutive(c *gin.Context) {
	var req types.ExecutiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	e, err := h.departmentService.CreateExecutive(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, e)
}

func (h *DepartmentAdminHandler) UpdateExecutive(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.ExecutiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	e, err := h.departmentService.UpdateExecutive(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, e)
}

func (h *DepartmentAdminHandler) DeleteExecutive(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.departmentService.DeleteExecutive(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}
