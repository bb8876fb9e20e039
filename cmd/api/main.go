package main

import (
	"context"
	"log"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/router"
	"github.com/platewise/backend/internal/server"
	"github.com/platewise/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Redis backs the compute rate limiter; the API still works without it.
	var rateLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, compute rate limiting disabled: %v", err)
	} else {
		rateLimiter = middleware.NewGroceryComputeRateLimiter(redisClient)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	ingredientService := service.NewIngredientService(db)
	recipeService := service.NewRecipeService(db)
	plannerService := service.NewPlannerService(db)
	pantryService := service.NewPantryService(db)
	groceryService := service.NewGroceryService(db)

	// S3 backs CSV export; optional for local development.
	var exportService *service.ExportService
	if s3Config, err := config.NewS3Config(context.Background(), cfg); err != nil {
		log.Printf("S3 unavailable, grocery export disabled: %v", err)
	} else {
		exportService = service.NewExportService(groceryService, s3Config)
	}

	handlers := router.Handlers{
		Auth:       api.NewAuthHandler(authService),
		Profile:    api.NewProfileHandler(profileService),
		Ingredient: api.NewIngredientHandler(ingredientService),
		Recipe:     api.NewRecipeHandler(recipeService),
		Planner:    api.NewPlannerHandler(plannerService),
		Pantry:     api.NewPantryHandler(pantryService),
		Grocery:    api.NewGroceryHandler(groceryService, exportService, rateLimiter),
		Health:     api.NewHealthHandler(db),
	}

	engine := router.SetupRouter(handlers, authService)
	srv := server.New(engine)

	if err := srv.Start(cfg.ServerHost + ":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
