package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/model"
	"kentkonut/internal/service"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// CorporateAdminHandler vision, mission and other corporate blocks
type CorporateAdminHandler struct {
	corporateService *service.CorporateService
	logger           *logger.Logger
}

// NewCorporateAdminHandler creates the corporate admin handler
func NewCorporateAdminHandler(corporateService *service.CorporateService, logger *logger.Logger) *CorporateAdminHandler {
	return &CorporateAdminHandler{
		corporateService: corporateService,
		logger:           logger,
	}
}

// List all blocks, optionally of one ?type=
func (h *CorporateAdminHandler) List(c *gin.Context) {
	typ := model.CorporateType(strings.ToUpper(c.Query("type")))
	switch typ {
	case "", model.CorporateVision, model.CorporateMission, model.CorporateStrategy,
		model.CorporateGoals, model.CorporateAbout, model.CorporateCustom:
	default:
		response.Fail(c, http.StatusBadRequest, "Geçersiz içerik türü")
		return
	}
	items, err := h.corporateService.List(c.Request.Context(), typ, false)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, items)
}

func (h *CorporateAdminHandler) Get(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	item, err := h.corporateService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, item)
}

func (h *CorporateAdminHandler) Create(c *gin.Context) {
	var req types.CorporateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.corporateService.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Created(c, item)
}

func (h *CorporateAdminHandler) Update(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	var req types.CorporateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	item, err := h.corporateService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, item)
}

func (h *CorporateAdminHandler) Delete(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.corporateService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.Deleted(c)
}

func (h *CorporateAdminHandler) Reorder(c *gin.Context) {
	var req types.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.corporateService.Reorder(c.Request.Context(), req.Items); err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, nil)
}
