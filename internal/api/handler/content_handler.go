package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/response"
	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/service"
	"kentkonut/pkg/logger"
)

// ContentHandler static site content: pages, corporate blocks, footer,
// highlights and quick access links
type ContentHandler struct {
	pageService        *service.PageService
	corporateService   *service.CorporateService
	footerService      *service.FooterService
	highlightService   *service.HighlightService
	quickAccessService *service.QuickAccessService
	logger             *logger.Logger
}

// NewContentHandler creates the content handler
func NewContentHandler(
	pageService *service.PageService,
	corporateService *service.CorporateService,
	footerService *service.FooterService,
	highlightService *service.HighlightService,
	quickAccessService *service.QuickAccessService,
	logger *logger.Logger,
) *ContentHandler {
	return &ContentHandler{
		pageService:        pageService,
		corporateService:   corporateService,
		footerService:      footerService,
		highlightService:   highlightService,
		quickAccessService: quickAccessService,
		logger:             logger,
	}
}

// GetPage published page by slug
// @Summary Page
// @Tags content
// @Router /api/public/pages/{slug} [get]
func (h *ContentHandler) GetPage(c *gin.Context) {
	page, err := h.pageService.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, page)
}

// ListCorporate active corporate blocks, all types or the one in the path
// @Summary Corporate content
// @Tags content
// @Router /api/public/corporate [get]
// @Router /api/public/corporate/{type} [get]
func (h *ContentHandler) ListCorporate(c *gin.Context) {
	typ := model.CorporateType(strings.ToUpper(c.Param("type")))
	switch typ {
	case "", model.CorporateVision, model.CorporateMission, model.CorporateStrategy,
		model.CorporateGoals, model.CorporateAbout, model.CorporateCustom:
	default:
		response.Fail(c, http.StatusBadRequest, "Geçersiz içerik türü")
		return
	}

	items, err := h.corporateService.List(c.Request.Context(), typ, true)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, items)
}

// GetFooter active footer sections with their items
// @Router /api/public/footer [get]
func (h *ContentHandler) GetFooter(c *gin.Context) {
	sections, err := h.footerService.Public(c.Request.Context())
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, sections)
}

// ListHighlights homepage highlight cards
// @Router /api/public/highlights [get]
func (h *ContentHandler) ListHighlights(c *gin.Context) {
	items, err := h.highlightService.List(c.Request.Context(), true)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, items)
}

// ListQuickAccess links shown beside a page, news article, project or department
// @Summary Quick access links
// @Tags content
// @Router /api/public/quick-access/{moduleType}/{moduleId} [get]
func (h *ContentHandler) ListQuickAccess(c *gin.Context) {
	moduleID, err := strconv.ParseInt(c.Param("moduleId"), 10, 64)
	if err != nil || moduleID <= 0 {
		response.Fail(c, http.StatusBadRequest, constants.MsgInvalidID)
		return
	}

	links, err := h.quickAccessService.ListByModule(c.Request.Context(), model.ModuleType(c.Param("moduleType")), moduleID)
	if err != nil {
		response.Error(c, h.logger, err)
		return
	}
	response.OK(c, links)
}
