package types

import (
	"github.com/google/uuid"

	"github.com/platewise/backend/internal/models"
)

// Auth / profile

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName" binding:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
	Role        string `json:"role" binding:"omitempty,oneof=personal household coach"`
	MealSlots   string `json:"mealSlots"`
}

// Ingredients

type CreateIngredientRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	CategoryID  uuid.UUID       `json:"categoryId" binding:"required"`
	DefaultUnit models.Unit     `json:"defaultUnit" binding:"required"`
	PackageSize models.Quantity `json:"packageSize" binding:"required"`
	Notes       string          `json:"notes"`
}

type UpdateIngredientRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	DefaultUnit *models.Unit     `json:"defaultUnit"`
	PackageSize *models.Quantity `json:"packageSize"`
	Notes       *string          `json:"notes"`
}

// Recipes

type CreateRecipeRequest struct {
	Name        string              `json:"name" binding:"required,max=255"`
	ExternalURL *string             `json:"externalUrl"`
	Notes       *string             `json:"notes"`
	Items       []models.RecipeItem `json:"items" binding:"required"`
}

// Planner

type PlannerItemRequest struct {
	Date       string              `json:"date" binding:"required"`
	Slot       models.MealSlot     `json:"slot" binding:"required"`
	RecipeID   *uuid.UUID          `json:"recipeId"`
	Portions   int                 `json:"portions" binding:"required,min=1"`
	AdHocItems []models.RecipeItem `json:"adHocItems"`
}

type CreatePlannerWeekRequest struct {
	StartDate   string               `json:"startDate" binding:"required"`
	HouseholdID *uuid.UUID           `json:"householdId"`
	Items       []PlannerItemRequest `json:"items"`
}

// UpdatePlannerWeekRequest replaces the week's entire item set;
// week updates are last-write-wins at week granularity.
type UpdatePlannerWeekRequest struct {
	Items []PlannerItemRequest `json:"items" binding:"required"`
}

// Pantry

type CreatePantryItemRequest struct {
	IngredientID uuid.UUID       `json:"ingredientId" binding:"required"`
	Quantity     models.Quantity `json:"quantity" binding:"required"`
}

type UpdatePantryItemRequest struct {
	Quantity models.Quantity `json:"quantity" binding:"required"`
}

// Grocery

type ComputeGroceryRequest struct {
	PlanWeekID   uuid.UUID          `json:"planWeekId" binding:"required"`
	Trips        *int               `json:"trips"`
	SplitRule    string             `json:"splitRule" binding:"omitempty,oneof=Sun-Wed_Thu-Sun custom"`
	CustomSplits []models.DateRange `json:"customSplits"`
}

type GroceryTripPatch struct {
	TripIndex int                  `json:"tripIndex"`
	Items     []models.GroceryItem `json:"items"`
}

// UpdateGroceryListRequest patches whole trips. Version is the optimistic
// concurrency token the caller read; omitted means unchecked.
type UpdateGroceryListRequest struct {
	Trips   []GroceryTripPatch `json:"trips" binding:"required"`
	Version *int               `json:"version"`
}
