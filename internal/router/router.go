package router

import (
	"github.com/gin-gonic/gin"

	"github.com/platewise/backend/internal/api"
	"github.com/platewise/backend/internal/middleware"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Auth       *api.AuthHandler
	Profile    *api.ProfileHandler
	Ingredient *api.IngredientHandler
	Recipe     *api.RecipeHandler
	Planner    *api.PlannerHandler
	Pantry     *api.PantryHandler
	Grocery    *api.GroceryHandler
	Health     *api.HealthHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, validator middleware.TokenValidator) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	h.Health.RegisterRoutes(router)

	v1 := router.Group("/api/v1")

	// Auth routes are the only public API surface
	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		h.Profile.RegisterRoutes(protected)
		h.Ingredient.RegisterRoutes(protected)
		h.Recipe.RegisterRoutes(protected)
		h.Planner.RegisterRoutes(protected)
		h.Pantry.RegisterRoutes(protected)
		h.Grocery.RegisterRoutes(protected)
	}

	return router
}
