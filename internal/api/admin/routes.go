package admin

import (
	"github.com/gin-gonic/gin"

	"kentkonut/internal/api/handler"
	"kentkonut/internal/middleware"
	"kentkonut/internal/model"
	"kentkonut/internal/service"
	"kentkonut/pkg/logger"
)

// Handlers everything mounted under /api/admin
type Handlers struct {
	Users       *UserAdminHandler
	Departments *DepartmentAdminHandler
	Banners     *BannerAdminHandler
	News        *NewsAdminHandler
	Pages       *PageAdminHandler
	Media       *MediaAdminHandler
	Corporate   *CorporateAdminHandler
	Footer      *FooterAdminHandler
	QuickAccess *QuickAccessAdminHandler
	Galleries   *GalleryAdminHandler
	Feedback    *FeedbackAdminHandler
	System      *handler.SystemHandler
}

// RegisterAdminRoutes mounts the panel API. Every route needs an ADMIN or EDITOR
// token; user management is ADMIN only.
func RegisterAdminRoutes(router *gin.RouterGroup, authService service.AuthService, h Handlers, log *logger.Logger) {
	router.Use(middleware.Auth(authService, log), middleware.RequireRole(model.RoleAdmin, model.RoleEditor))

	router.GET("/stats", h.System.DashboardStats)

	users := router.Group("/users", middleware.RequireRole(model.RoleAdmin))
	{
		users.GET("", h.Users.ListUsers)
		users.GET("/:id", h.Users.GetUser)
		users.POST("", h.Users.CreateUser)
		users.PUT("/:id", h.Users.UpdateUser)
		users.DELETE("/:id", h.Users.DeleteUser)
	}

	departments := router.Group("/departments")
	{
		departments.GET("", h.Departments.ListDepartments)
		departments.GET("/:id", h.Departments.GetDepartment)
		departments.POST("", h.Departments.CreateDepartment)
		departments.PUT("/:id", h.Departments.UpdateDepartment)
		departments.DELETE("/:id", h.Departments.DeleteDepartment)
	}

	personnel := router.Group("/personnel")
	{
		personnel.GET("", h.Departments.ListPersonnel)
		personnel.GET("/:id", h.Departments.GetPersonnel)
		personnel.POST("", h.Departments.CreatePersonnel)
		personnel.PUT("/:id", h.Departments.UpdatePersonnel)
		personnel.DELETE("/:id", h.Departments.DeletePersonnel)
	}

	executives := router.Group("/executives")
	{
		executives.GET("", h.Departments.ListExecutives)
		executives.GET("/:id", h.Departments.GetExecutive)
		executives.POST("", h.Departments.CreateExecutive)
		executives.PUT("/:id", h.Departments.UpdateExecutive)
		executives.DELETE("/:id", h.Departments.DeleteExecutive)
	}

	bannerGroups := router.Group("/banner-groups")
	{
		bannerGroups.GET("", h.Banners.ListGroups)
		bannerGroups.GET("/:id", h.Banners.GetGroup)
		bannerGroups.POST("", h.Banners.CreateGroup)
		bannerGroups.PUT("/:id", h.Banners.UpdateGroup)
		bannerGroups.DELETE("/:id", h.Banners.DeleteGroup)
	}

	banners := router.Group("/banners")
	{
		banners.GET("/:id", h.Banners.GetBanner)
		banners.POST("", h.Banners.CreateBanner)
		banners.PUT("/:id", h.Banners.UpdateBanner)
		banners.DELETE("/:id", h.Banners.DeleteBanner)
	}

	positions := router.Group("/banner-positions")
	{
		positions.GET("", h.Banners.ListPositions)
		positions.GET("/:id", h.Banners.GetPosition)
		positions.POST("", h.Banners.CreatePosition)
		positions.PUT("/:id", h.Banners.UpdatePosition)
		positions.DELETE("/:id", h.Banners.DeletePosition)
	}

	news := router.Group("/news")
	{
		news.GET("", h.News.ListNews)
		news.GET("/:id", h.News.GetNews)
		news.POST("", h.News.CreateNews)
		news.PUT("/:id", h.News.UpdateNews)
		news.DELETE("/:id", h.News.DeleteNews)
	}

	newsCategories := router.Group("/news-categories")
	{
		newsCategories.GET("", h.News.ListCategories)
		newsCategories.GET("/:id", h.News.GetCategory)
		newsCategories.POST("", h.News.CreateCategory)
		newsCategories.PUT("/:id", h.News.UpdateCategory)
		newsCategories.DELETE("/:id", h.News.DeleteCategory)
	}

	tags := router.Group("/tags")
	{
		tags.GET("", h.News.ListTags)
		tags.POST("", h.News.CreateTag)
		tags.PUT("/:id", h.News.UpdateTag)
		tags.DELETE("/:id", h.News.DeleteTag)
	}

	pages := router.Group("/pages")
	{
		pages.GET("", h.Pages.ListPages)
		pages.GET("/:id", h.Pages.GetPage)
		pages.POST("", h.Pages.CreatePage)
		pages.PUT("/:id", h.Pages.UpdatePage)
		pages.DELETE("/:id", h.Pages.DeletePage)
	}

	pageCategories := router.Group("/page-categories")
	{
		pageCategories.GET("", h.Pages.ListCategories)
		pageCategories.GET("/:id", h.Pages.GetCategory)
		pageCategories.POST("", h.Pages.CreateCategory)
		pageCategories.PUT("/:id", h.Pages.UpdateCategory)
		pageCategories.DELETE("/:id", h.Pages.DeleteCategory)
	}

	media := router.Group("/media")
	{
		media.GET("", h.Media.ListMedia)
		media.GET("/:id", h.Media.GetMedia)
		media.POST("", h.Media.Upload)
		media.PUT("/:id", h.Media.UpdateMedia)
		media.DELETE("/:id", h.Media.DeleteMedia)
	}

	mediaCategories := router.Group("/media-categories")
	{
		mediaCategories.GET("", h.Media.ListCategories)
		mediaCategories.GET("/:id", h.Media.GetCategory)
		mediaCategories.POST("", h.Media.CreateCategory)
		mediaCategories.PUT("/:id", h.Media.UpdateCategory)
		mediaCategories.DELETE("/:id", h.Media.DeleteCategory)
	}

	corporate := router.Group("/corporate")
	{
		corporate.GET("", h.Corporate.List)
		corporate.GET("/:id", h.Corporate.Get)
		corporate.POST("", h.Corporate.Create)
		corporate.PUT("/reorder", h.Corporate.Reorder)
		corporate.PUT("/:id", h.Corporate.Update)
		corporate.DELETE("/:id", h.Corporate.Delete)
	}

	footer := router.Group("/footer")
	{
		footer.GET("/sections", h.Footer.ListSections)
		footer.GET("/sections/:id", h.Footer.GetSection)
		footer.POST("/sections", h.Footer.CreateSection)
		footer.PUT("/sections/reorder", h.Footer.ReorderSections)
		footer.PUT("/sections/:id", h.Footer.UpdateSection)
		footer.DELETE("/sections/:id", h.Footer.DeleteSection)
		footer.POST("/items", h.Footer.CreateItem)
		footer.PUT("/items/reorder", h.Footer.ReorderItems)
		footer.PUT("/items/:id", h.Footer.UpdateItem)
		footer.DELETE("/items/:id", h.Footer.DeleteItem)
	}

	quickAccess := router.Group("/quick-access")
	{
		quickAccess.GET("", h.QuickAccess.ListLinks)
		quickAccess.GET("/:id", h.QuickAccess.GetLink)
		quickAccess.POST("", h.QuickAccess.CreateLink)
		quickAccess.PUT("/reorder", h.QuickAccess.ReorderLinks)
		quickAccess.PUT("/:id", h.QuickAccess.UpdateLink)
		quickAccess.DELETE("/:id", h.QuickAccess.DeleteLink)
	}

	highlights := router.Group("/highlights")
	{
		highlights.GET("", h.QuickAccess.ListHighlights)
		highlights.GET("/:id", h.QuickAccess.GetHighlight)
		highlights.POST("", h.QuickAccess.CreateHighlight)
		highlights.PUT("/reorder", h.QuickAccess.ReorderHighlights)
		highlights.PUT("/:id", h.QuickAccess.UpdateHighlight)
		highlights.DELETE("/:id", h.QuickAccess.DeleteHighlight)
	}

	galleries := router.Group("/galleries")
	{
		galleries.GET("", h.Galleries.Tree)
		galleries.GET("/tree", h.Galleries.Tree)
		galleries.GET("/:id", h.Galleries.Get)
		galleries.POST("", h.Galleries.Create)
		galleries.PUT("/:id", h.Galleries.Update)
		galleries.DELETE("/:id", h.Galleries.Delete)
		galleries.POST("/:id/items", h.Galleries.AddItem)
		galleries.DELETE("/:id/items/:itemId", h.Galleries.DeleteItem)
	}

	feedback := router.Group("/feedback")
	{
		feedback.GET("", h.Feedback.List)
		feedback.GET("/:id", h.Feedback.Get)
		feedback.PATCH("/:id/status", h.Feedback.UpdateStatus)
		feedback.DELETE("/:id", h.Feedback.Delete)
	}
}
