package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/careerpath/webapp/api"
	"github.com/careerpath/webapp/config"
	"github.com/careerpath/webapp/handlers"
	"github.com/careerpath/webapp/logging"
	"github.com/careerpath/webapp/session"
	"github.com/careerpath/webapp/utils"
	"github.com/careerpath/webapp/views"
)

// Bounds for the in-process wizard and results tables
const (
	maxDrafts   = 4096
	maxHandoffs = 4096
)

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.ValidateWeb(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := views.Load()
	if err != nil {
		logger.Fatal("failed to load templates", zap.Error(err))
	}

	client := api.NewClient(cfg.APIBaseURL, utils.NewHTTPClient(cfg.HTTPTimeout()), logger.Named("api"))
	sessions := session.NewStore(
		session.NewCodec(cfg.SessionSecret),
		session.NewDrafts(cfg.SessionTTL, maxDrafts),
		session.NewHandoffs(cfg.HandoffTTL, maxHandoffs),
		cfg.SecureCookies,
	)
	webHandler := handlers.NewWebHandler(client, sessions, cfg.CatalogRetryDelay, logger.Named("handlers"))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logging.GinLogger(logger.Named("http")))
	router.SetHTMLTemplate(tmpl)
	webHandler.Register(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting frontend",
			zap.String("port", cfg.Port),
			zap.String("backend", client.BaseURL()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}
