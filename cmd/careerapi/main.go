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

	"github.com/careerpath/webapp/careerapi"
	"github.com/careerpath/webapp/config"
	"github.com/careerpath/webapp/gemini"
	"github.com/careerpath/webapp/logging"
	"github.com/careerpath/webapp/models"
	"github.com/careerpath/webapp/recommender"
	"github.com/careerpath/webapp/storage"
)

// @title CareerPath Recommender API
// @version 1.0
// @description Career catalog, profile-based career recommendations and learning roadmaps.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.ValidateAPI(); err != nil {
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

	ctx := context.Background()

	store, closeStore := buildCatalog(ctx, cfg, logger.Named("storage"))
	defer closeStore()

	engine := recommender.NewEngine(store, recommender.Options{
		MaxResults:    cfg.MaxRecommendations,
		MinScore:      cfg.MinMatchScore,
		MaxConcurrent: cfg.MaxRecommendations,
	}, logger.Named("recommender"))

	if cfg.GeminiModel != "" {
		logger.Info("initializing Gemini client", zap.String("model", cfg.GeminiModel))
		geminiClient, err := gemini.NewClient(ctx, cfg.ProjectID, cfg.Location, cfg.GeminiModel, logger.Named("gemini"))
		if err != nil {
			logger.Fatal("failed to initialize Gemini client", zap.Error(err))
		}
		defer geminiClient.Close()
		engine.WithReasoner(geminiClient).WithEnhancer(geminiClient)
	} else {
		logger.Info("GEMINI_MODEL not set, using rule-based reasoning")
	}

	handler := careerapi.NewHandler(engine, logger.Named("handlers"))
	router := careerapi.NewRouter(handler, cfg.AllowedOrigins, logger.Named("http"))

	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting career API", zap.String("port", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}

// buildCatalog assembles the catalog store. The embedded catalog is always
// available; a Cloud Storage seed replaces it, and Firestore is layered on
// top when a project is configured. Any cloud failure leaves the in-memory
// catalog serving.
func buildCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.CatalogStore, func()) {
	listings, err := storage.DefaultCatalog()
	if err != nil {
		logger.Fatal("failed to load embedded catalog", zap.Error(err))
	}
	memory := storage.NewMemoryStore(listings)

	var closers []func() error
	closeAll := func() {
		for _, closeFn := range closers {
			if err := closeFn(); err != nil {
				logger.Warn("close failed", zap.Error(err))
			}
		}
	}

	if cfg.CatalogSeedURL != "" {
		if seeded, err := loadSeed(ctx, cfg.CatalogSeedURL); err != nil {
			logger.Warn("catalog seed unavailable, using embedded catalog",
				zap.String("url", cfg.CatalogSeedURL), zap.Error(err))
		} else {
			memory.Replace(seeded)
			listings = seeded
			logger.Info("loaded catalog seed", zap.String("url", cfg.CatalogSeedURL), zap.Int("careers", len(seeded)))
		}
	}

	if cfg.ProjectID == "" {
		logger.Info("using in-memory career catalog", zap.Int("careers", len(listings)))
		return memory, closeAll
	}

	firestoreStore, err := storage.NewFirestoreStore(ctx, cfg.ProjectID, cfg.CatalogCollection)
	if err != nil {
		logger.Warn("Firestore unavailable, using in-memory catalog", zap.Error(err))
		return memory, closeAll
	}
	closers = append(closers, firestoreStore.Close)

	written, err := firestoreStore.SeedIfEmpty(ctx, listings)
	switch {
	case err != nil:
		logger.Warn("catalog seeding failed", zap.Error(err))
	case written > 0:
		logger.Info("seeded Firestore catalog", zap.Int("careers", written))
	default:
		logger.Info("Firestore catalog already populated")
	}

	return storage.NewFallbackStore(firestoreStore, memory, logger), closeAll
}

func loadSeed(ctx context.Context, objectURL string) ([]models.CareerListing, error) {
	client, err := storage.NewCloudStorageClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return storage.LoadSeed(ctx, client, objectURL)
}
