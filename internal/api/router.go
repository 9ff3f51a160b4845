package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"kentkonut/config"
	"kentkonut/internal/api/admin"
	"kentkonut/internal/api/apis"
	"kentkonut/internal/api/handler"
	"kentkonut/internal/api/validate"
	"kentkonut/internal/middleware"
	"kentkonut/internal/repository"
	"kentkonut/internal/service"
	"kentkonut/pkg/email"
	"kentkonut/pkg/geetest"
	"kentkonut/pkg/logger"
	"kentkonut/pkg/ratelimit"
	"kentkonut/pkg/storage"
)

// Services every domain service, shared by the router and the scheduler
type Services struct {
	Accounts    *service.AccountService
	Departments *service.DepartmentService
	Banners     *service.BannerService
	News        *service.NewsService
	Pages       *service.PageService
	Media       *service.MediaService
	Corporate   *service.CorporateService
	Footer      *service.FooterService
	QuickAccess *service.QuickAccessService
	Highlights  *service.HighlightService
	Galleries   *service.GalleryService
	Feedback    *service.FeedbackService
	System      *service.SystemService
}

// NewServices builds repositories and services. redisClient may be nil, in which
// case responses are not cached.
func NewServices(cfg *config.Config, logger *logger.Logger, db *sqlx.DB, redisClient *redis.Client, tasks service.TaskQueue) (*Services, error) {
	store, err := storage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.URLPrefix, cfg.Upload.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to init upload storage: %w", err)
	}

	var mailer email.Sender
	if emailService := email.NewService(cfg.Email, logger); emailService.Enabled() {
		mailer = emailService
	} else {
		logger.Warn("SMTP not configured, feedback notifications disabled")
	}

	var captcha geetest.Verifier
	if cfg.Geetest.CaptchaID != "" {
		captcha = geetest.NewClient(cfg.Geetest.CaptchaID, cfg.Geetest.CaptchaKey, cfg.Geetest.APIServer)
	}

	mediaRepo := repository.NewMediaRepository(db)
	system := service.NewSystemService(repository.NewSystemRepository(db), redisClient, logger)
	if mailer != nil {
		system.SetMailServer(cfg.Email.Host, cfg.Email.Port)
	}

	return &Services{
		Accounts: service.NewAccountService(repository.NewUserRepository(db), cfg.Auth, logger),
		Departments: service.NewDepartmentService(
			repository.NewDepartmentRepository(db),
			repository.NewPersonnelRepository(db),
			repository.NewExecutiveRepository(db),
			redisClient, logger,
		),
		Banners: service.NewBannerService(
			repository.NewBannerGroupRepository(db),
			repository.NewBannerRepository(db),
			repository.NewBannerPositionRepository(db),
			tasks, redisClient, logger,
		),
		News: service.NewNewsService(
			repository.NewNewsRepository(db),
			repository.NewNewsCategoryRepository(db),
			repository.NewTagRepository(db),
			tasks, redisClient, logger,
		),
		Pages:       service.NewPageService(repository.NewPageRepository(db), repository.NewPageCategoryRepository(db), redisClient, logger),
		Media:       service.NewMediaService(mediaRepo, repository.NewMediaCategoryRepository(db), store, redisClient, logger),
		Corporate:   service.NewCorporateService(repository.NewCorporateContentRepository(db), redisClient, logger),
		Footer:      service.NewFooterService(repository.NewFooterRepository(db), redisClient, logger),
		QuickAccess: service.NewQuickAccessService(repository.NewQuickAccessRepository(db), service.NewQuickAccessCache(cfg.QuickAccess.TTL), logger),
		Highlights:  service.NewHighlightService(repository.NewHighlightRepository(db), redisClient, logger),
		Galleries:   service.NewGalleryService(repository.NewGalleryRepository(db), mediaRepo, redisClient, logger),
		Feedback:    service.NewFeedbackService(repository.NewFeedbackRepository(db), captcha, mailer, cfg.Email.NotifyTo, tasks, logger),
		System:      system,
	}, nil
}

// SetupRouter builds the gin engine with every route mounted
func SetupRouter(cfg *config.Config, logger *logger.Logger, svc *Services, limiter ratelimit.Limiter) (*gin.Engine, error) {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validate.Register(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.MaxMultipartMemory = 8 << 20

	router.Static(cfg.Upload.URLPrefix, cfg.Upload.Dir)

	systemHandler := handler.NewSystemHandler(svc.System, logger)
	router.GET("/health", systemHandler.Health)

	apis.RegisterAuthRoutes(router.Group("/api/auth"),
		handler.NewAuthHandler(svc.Accounts, logger), svc.Accounts,
		limiter, cfg.RateLimit.LoginPerWindow, cfg.RateLimit.Window, logger)

	apis.RegisterRoutes(router.Group("/api/public"), apis.PublicHandlers{
		Departments: handler.NewDepartmentHandler(svc.Departments, logger),
		Banners:     handler.NewBannerHandler(svc.Banners, logger),
		News:        handler.NewNewsHandler(svc.News, logger),
		Content:     handler.NewContentHandler(svc.Pages, svc.Corporate, svc.Footer, svc.Highlights, svc.QuickAccess, logger),
		Galleries:   handler.NewGalleryHandler(svc.Galleries, logger),
		Feedback:    handler.NewFeedbackHandler(svc.Feedback, logger),
	}, middleware.RateLimit(limiter, "feedback", cfg.RateLimit.FeedbackPerWindow, cfg.RateLimit.Window, logger))

	admin.RegisterAdminRoutes(router.Group("/api/admin"), svc.Accounts, admin.Handlers{
		Users:       admin.NewUserAdminHandler(svc.Accounts, logger),
		Departments: admin.NewDepartmentAdminHandler(svc.Departments, logger),
		Banners:     admin.NewBannerAdminHandler(svc.Banners, logger),
		News:        admin.NewNewsAdminHandler(svc.News, logger),
		Pages:       admin.NewPageAdminHandler(svc.Pages, logger),
		Media:       admin.NewMediaAdminHandler(svc.Media, cfg.Upload.MaxSize, logger),
		Corporate:   admin.NewCorporateAdminHandler(svc.Corporate, logger),
		Footer:      admin.NewFooterAdminHandler(svc.Footer, logger),
		QuickAccess: admin.NewQuickAccessAdminHandler(svc.QuickAccess, svc.Highlights, logger),
		Galleries:   admin.NewGalleryAdminHandler(svc.Galleries, logger),
		Feedback:    admin.NewFeedbackAdminHandler(svc.Feedback, logger),
		System:      systemHandler,
	}, logger)

	return router, nil
}
