package main

import (
	"log"

	"nupo-consult/internal/app"
	"nupo-consult/internal/bootstrap"
	"nupo-consult/internal/metrics"
	"nupo-consult/internal/middleware"
	"nupo-consult/internal/shared/apperror"
	"nupo-consult/internal/shared/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := bootstrap.NewLogger(cfg.App)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(metrics.Middleware())

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	bootstrap.StartHTTPServer(
		r,
		bootstrap.DefaultServerConfig(cfg.App.Port),
		auditLogger,
		cleanup,
	)
}
