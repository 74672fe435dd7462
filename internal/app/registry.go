package app

import (
	"context"

	"nupo-consult/internal/auth"
	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/catalog"
	"nupo-consult/internal/company"
	"nupo-consult/internal/dashboard"
	"nupo-consult/internal/inquiry"
	"nupo-consult/internal/messaging/kafka"
	"nupo-consult/internal/metrics"
	"nupo-consult/internal/middleware"
	"nupo-consult/internal/news"
	"nupo-consult/internal/newsletter"
	"nupo-consult/internal/notification"
	"nupo-consult/internal/partner"
	"nupo-consult/internal/project"
	"nupo-consult/internal/rbac"
	"nupo-consult/internal/rbac/infra"
	"nupo-consult/internal/seo"
	"nupo-consult/internal/shared/cache"
	"nupo-consult/internal/shared/config"
	"nupo-consult/internal/shared/counter"
	"nupo-consult/internal/site"
	"nupo-consult/internal/team"
	"nupo-consult/internal/testimonial"
	"nupo-consult/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()
	audit := bootstrap.NewStdoutAuditLogger()
	readCache := cache.New(rdb, cfg.Redis.CacheTTL, logger)

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(db)
	userRepo := user.NewRepository(db)
	companyRepo := company.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	teamRepo := team.NewRepository(db)
	partnerRepo := partner.NewRepository(db)
	projectRepo := project.NewRepository(db)
	newsRepo := news.NewRepository(db)
	testimonialRepo := testimonial.NewRepository(db)
	inquiryRepo := inquiry.NewRepository(db)
	newsletterRepo := newsletter.NewRepository(db)
	seoRepo := seo.NewRepository(db)
	dashboardRepo := dashboard.NewRepository(db)
	counterRepo := counter.NewRepository(db)

	// Events only pile up in the outbox when a worker will drain them.
	var outboxRepo kafka.OutboxRepository
	if cfg.Kafka.Enabled() {
		outboxRepo = kafka.NewOutboxRepository(db)
	}

	var notifier notification.InquiryNotifier
	if !cfg.Kafka.Enabled() || cfg.Mail.SyncNotify {
		notifier = notification.NewInquiryNotifier(notification.NewSMTPMailer(cfg.Mail, logger), cfg.Mail.NotifyTo, logger)
	}

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(userRepo, cfg.Auth, logger)
	userService := user.NewService(userRepo, logger)
	companyService := company.NewService(db, companyRepo, readCache, logger)
	catalogService := catalog.NewCatalog(db, catalogRepo, audit, logger)
	teamService := team.NewService(db, teamRepo, audit, logger)
	partnerService := partner.NewService(db, partnerRepo, audit, logger)
	projectService := project.NewService(db, projectRepo, audit, logger)
	newsService := news.NewService(db, newsRepo, counterRepo, audit, logger)
	testimonialService := testimonial.NewService(db, testimonialRepo, audit, logger)
	inquiryService := inquiry.NewService(db, inquiryRepo, outboxRepo, notifier, audit, logger)
	newsletterService := newsletter.NewService(db, newsletterRepo, outboxRepo, audit, logger)
	seoService := seo.NewService(seoRepo, readCache, logger)
	dashboardService := dashboard.NewService(dashboardRepo, logger)
	siteService := site.NewService(site.Deps{
		Company:      companyService,
		SEO:          seoService,
		Catalog:      catalogService,
		Projects:     projectService,
		News:         newsService,
		Team:         teamService,
		Partners:     partnerService,
		Testimonials: testimonialService,
	}, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.App.IsProduction(),
		AccessTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTTL: cfg.Auth.RefreshTokenTTL,
	}, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	userHandler := user.NewHandler(userService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	catalogHandler := catalog.NewHandler(catalogService, logger)
	teamHandler := team.NewHandler(teamService, logger)
	partnerHandler := partner.NewHandler(partnerService, logger)
	projectHandler := project.NewHandler(projectService, logger)
	newsHandler := news.NewHandler(newsService, logger)
	testimonialHandler := testimonial.NewHandler(testimonialService, logger)
	inquiryHandler := inquiry.NewHandler(inquiryService, logger)
	newsletterHandler := newsletter.NewHandler(newsletterService, logger)
	seoHandler := seo.NewHandler(seoService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	siteHandler := site.NewHandler(siteService, logger)

	// --- Routes Registration ---
	router.GET("/healthz", healthz(db))
	router.GET("/metrics", metrics.Handler())

	publicLimit := rate.Limit(cfg.Limits.PublicWriteRPS)
	public := router.Group("")
	{
		site.RegisterRoutes(public, siteHandler)
		inquiry.RegisterPublicRoutes(public, inquiryHandler, rdb,
			middleware.RateLimitByIP(publicLimit, cfg.Limits.PublicWriteBurst))
		newsletter.RegisterPublicRoutes(public, newsletterHandler, rdb,
			middleware.RateLimitByIP(publicLimit, cfg.Limits.PublicWriteBurst))
	}

	api := router.Group("/api/v1")
	auth.RegisterRoutes(api, authHandler, cfg.Auth.JWTSecret)
	rbac.RegisterRoutes(api, rbacHandler, cfg.Auth.JWTSecret, logger)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
	admin.Use(middleware.ExtractUserID())
	admin.Use(middleware.ContextLogger(logger))
	{
		dashboard.RegisterRoutes(admin, dashboardHandler, rbacService)
		user.RegisterRoutes(admin, userHandler, rbacService)
		company.RegisterRoutes(admin, companyHandler, rbacService)
		catalog.RegisterRoutes(admin, catalogHandler, rbacService)
		team.RegisterRoutes(admin, teamHandler, rbacService)
		partner.RegisterRoutes(admin, partnerHandler, rbacService)
		project.RegisterRoutes(admin, projectHandler, rbacService)
		news.RegisterRoutes(admin, newsHandler, rbacService)
		testimonial.RegisterRoutes(admin, testimonialHandler, rbacService)
		inquiry.RegisterRoutes(admin, inquiryHandler, rbacService)
		newsletter.RegisterRoutes(admin, newsletterHandler, rbacService)
		seo.RegisterRoutes(admin, seoHandler, rbacService)
	}

	return nil
}
