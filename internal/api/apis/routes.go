package apis

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/handler"
)

// PublicHandlers everything mounted under /api/public
type PublicHandlers struct {
	Departments *handler.DepartmentHandler
	Banners     *handler.BannerHandler
	News        *handler.NewsHandler
	Content     *handler.ContentHandler
	Galleries   *handler.GalleryHandler
	Feedback    *handler.FeedbackHandler
}

// RegisterRoutes mounts the unauthenticated site API. feedbackLimit guards the contact form.
func RegisterRoutes(router *gin.RouterGroup, h PublicHandlers, feedbackLimit gin.HandlerFunc) {
	router.GET("/departments", h.Departments.ListDepartments)
	router.GET("/departments/:slug", h.Departments.GetDepartment)
	router.GET("/executives", h.Departments.ListExecutives)

	banners := router.Group("/banners")
	{
		banners.GET("/position/:uuid", h.Banners.GetPositionBanners)
		banners.POST("/:id/view", h.Banners.RecordView)
		banners.POST("/:id/click", h.Banners.RecordClick)
	}

	router.GET("/news", h.News.ListNews)
	router.GET("/news/:slug", h.News.GetNews)
	router.GET("/news-categories", h.News.ListCategories)

	router.GET("/pages/:slug", h.Content.GetPage)
	router.GET("/corporate", h.Content.ListCorporate)
	router.GET("/corporate/:type", h.Content.ListCorporate)
	router.GET("/footer", h.Content.GetFooter)
	router.GET("/highlights", h.Content.ListHighlights)
	router.GET("/quick-access/:moduleType/:moduleId", h.Content.ListQuickAccess)

	router.GET("/galleries/tree", h.Galleries.Tree)
	router.GET("/galleries/:slug", h.Galleries.GetGallery)

	router.POST("/feedback", feedbackLimit, h.Feedback.Submit)
}
