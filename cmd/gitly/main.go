package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/inguzdev/gitly/internal/config"
	"github.com/inguzdev/gitly/internal/handlers"
	"github.com/inguzdev/gitly/pkg/logger"
	"github.com/inguzdev/gitly/pkg/middleware"
)

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	translator := middleware.NewErrorTranslator(log, cfg.Debug)
	limiter := middleware.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	healthHandler := handlers.NewHealthHandler(log)
	webHandler, err := handlers.NewWebHandler(log)
	if err != nil {
		log.Fatal("failed to load templates", zap.Error(err))
	}

	r := gin.New()
	r.Use(middleware.TraceID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(limiter, log))
	r.Use(translator.Middleware())

	api := r.Group("/api")
	healthHandler.RegisterRoutes(api)
	webHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API paths get the JSON 404 envelope, everything else the error page.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			translator.NotFound(c)
			return
		}
		webHandler.Fallback(c)
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Sugar().Infow("Gitly API started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("shutdown error", zap.Error(err))
	}

	_ = log.Sync()
}
