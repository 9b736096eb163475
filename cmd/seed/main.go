package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/storely/storefront-service/config"
	"github.com/storely/storefront-service/internal/db"
	"github.com/storely/storefront-service/internal/logger"
	"github.com/storely/storefront-service/internal/product/dto"
	productRepoPkg "github.com/storely/storefront-service/internal/product/repository"
	productUCPkg "github.com/storely/storefront-service/internal/product/usecase"
)

func strPtr(s string) *string { return &s }

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	database, err := db.NewPostgres(&cfg.Postgres)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		appLogger.Fatal("Could not apply schema", zap.Error(err))
	}

	uc := productUCPkg.NewProductUseCase(productRepoPkg.NewPGRepository(database), appLogger)

	samples := []dto.CreateProductInput{
		{
			Name:          "Wireless Earbuds",
			Description:   strPtr("Compact earbuds with high-fidelity sound"),
			Price:         89.99,
			ImageURL:      strPtr("https://images.unsplash.com/photo-1585386959984-a415522c1f66?w=300&h=300&fit=crop&crop=center"),
			Category:      strPtr("Electronics"),
			StockQuantity: 30,
		},
		{
			Name:          "Yoga Mat",
			Description:   strPtr("Eco-friendly non-slip yoga mat"),
			Price:         39.99,
			ImageURL:      strPtr("https://images.unsplash.com/photo-1571019613912-76c54cebb3a2?w=300&h=300&fit=crop&crop=center"),
			Category:      strPtr("Sports"),
			StockQuantity: 50,
		},
		{
			Name:          "Stainless Steel Water Bottle",
			Description:   strPtr("Keeps drinks cold for 24 hours"),
			Price:         24.99,
			ImageURL:      strPtr("https://images.unsplash.com/photo-1526401485004-2fa5b4b5d237?w=300&h=300&fit=crop&crop=center"),
			Category:      strPtr("Sports"),
			StockQuantity: 80,
		},
	}

	ctx := context.Background()
	for i := range samples {
		p, err := uc.CreateProduct(ctx, &samples[i])
		if err != nil {
			appLogger.Fatal("Failed to seed product", zap.String("name", samples[i].Name), zap.Error(err))
		}
		appLogger.Info("Seeded product", zap.String("id", p.ID), zap.String("name", p.Name))
	}

	appLogger.Info("Seeded products successfully")
}
