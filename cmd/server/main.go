package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/storely/storefront-service/config"
	categoryRepoPkg "github.com/storely/storefront-service/internal/category/repository"
	categoryUCPkg "github.com/storely/storefront-service/internal/category/usecase"
	"github.com/storely/storefront-service/internal/db"
	"github.com/storely/storefront-service/internal/httpserver"
	"github.com/storely/storefront-service/internal/logger"
	productRepoPkg "github.com/storely/storefront-service/internal/product/repository"
	productUCPkg "github.com/storely/storefront-service/internal/product/usecase"
	"github.com/storely/storefront-service/internal/sitemap"
)

func main() {
	// 1. Load configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Connect to database
	database, err := db.NewPostgres(&cfg.Postgres)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer database.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	if err := db.Migrate(database); err != nil {
		appLogger.Fatal("Could not apply schema", zap.Error(err))
	}

	// 4. Initialize repositories
	productRepo := productRepoPkg.NewPGRepository(database)
	categoryRepo := categoryRepoPkg.NewPGRepository(database)

	// 5. Initialize usecases
	productUC := productUCPkg.NewProductUseCase(productRepo, appLogger)
	categoryUC := categoryUCPkg.NewCategoryUseCase(categoryRepo, appLogger)

	sitemapBuilder := sitemap.NewBuilder(productUC, categoryUC, cfg.Site.BaseURL)

	// 6. Start HTTP server
	server := httpserver.New(cfg, appLogger, productUC, categoryUC, sitemapBuilder)

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.HTTPPort))
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
