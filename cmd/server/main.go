// @title       Storefront Backend API
// @version     1.0.0
// @description Order intake, contact messages, admin actions, YuKassa payments and Telegram notifications for the storefront.

// @license.name MIT
// @license.url  https://opensource.org/licenses/MIT

// @host     localhost:8080
// @BasePath /

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"storefront-backend/docs"
	"storefront-backend/internal/app"
	"storefront-backend/internal/config"
	"storefront-backend/internal/gateway"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/metrics"
	"storefront-backend/internal/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("production")
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Environment)

	if cfg.PublicHost != "" {
		docs.SwaggerInfo.Host = cfg.PublicHost
		docs.SwaggerInfo.Schemes = []string{"https"}
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(a.Handler, a.DB, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func newRouter(h *handlers.Handler, db handlers.Pinger, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log))

	router.GET("/health", handlers.HealthHandler(db))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	for _, ep := range h.Endpoints() {
		router.Any("/"+ep.Name, gateway.GinHandler(ep, log))
	}

	return router
}
