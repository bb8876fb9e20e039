package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/grocery"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

// GroceryService computes, stores and patches grocery lists.
type GroceryService struct {
	db *gorm.DB
}

func NewGroceryService(db *gorm.DB) *GroceryService {
	return &GroceryService{db: db}
}

// loadLookups collects every recipe, ingredient and category the engine may
// reference for this user's week.
func (s *GroceryService) loadLookups(ctx context.Context, userID uuid.UUID) (grocery.Lookups, error) {
	lk := grocery.Lookups{
		Recipes:     make(map[uuid.UUID]*models.Recipe),
		Ingredients: make(map[uuid.UUID]*models.Ingredient),
		Categories:  make(map[uuid.UUID]*models.Category),
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&recipes).Error; err != nil {
		return lk, err
	}
	for i := range recipes {
		lk.Recipes[recipes[i].ID] = &recipes[i]
	}

	var ingredients []models.Ingredient
	if err := s.db.WithContext(ctx).Where("owner_user_id = ?", userID).Find(&ingredients).Error; err != nil {
		return lk, err
	}
	for i := range ingredients {
		lk.Ingredients[ingredients[i].ID] = &ingredients[i]
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return lk, err
	}
	for i := range categories {
		lk.Categories[categories[i].ID] = &categories[i]
	}

	return lk, nil
}

// Compute runs the aggregation engine over a plan week and persists the
// resulting list as a new version-1 row. Earlier lists for the same week are
// kept; Latest picks the newest.
func (s *GroceryService) Compute(ctx context.Context, userID uuid.UUID, req *types.ComputeGroceryRequest) (*models.GroceryList, []grocery.RecipeNotFoundWarning, error) {
	var week models.PlannerWeek
	if err := s.db.WithContext(ctx).Preload("Items").
		First(&week, "id = ? AND user_id = ?", req.PlanWeekID, userID).Error; err != nil {
		return nil, nil, err
	}

	lk, err := s.loadLookups(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	var pantry []models.PantryItem
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&pantry).Error; err != nil {
		return nil, nil, err
	}

	opts := grocery.ComputeOptions{
		TripCount:    2,
		SplitRule:    grocery.RuleSunWedThuSun,
		CustomSplits: req.CustomSplits,
	}
	if req.Trips != nil {
		opts.TripCount = *req.Trips
	}
	if req.SplitRule != "" {
		opts.SplitRule = req.SplitRule
	}

	result, err := grocery.Compute(&week, pantry, lk, opts)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range result.Warnings {
		log.Printf("grocery compute: week %s: %s", week.ID, w.String())
	}

	list := models.GroceryList{
		ID:         uuid.New(),
		UserID:     userID,
		PlanWeekID: week.ID,
		Trips:      result.Trips,
		Version:    1,
	}
	if err := s.db.WithContext(ctx).Create(&list).Error; err != nil {
		return nil, nil, err
	}
	return &list, result.Warnings, nil
}

func (s *GroceryService) Get(ctx context.Context, userID, id uuid.UUID) (*models.GroceryList, error) {
	var list models.GroceryList
	if err := s.db.WithContext(ctx).First(&list, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// Latest returns the most recently computed list for a plan week.
func (s *GroceryService) Latest(ctx context.Context, userID, planWeekID uuid.UUID) (*models.GroceryList, error) {
	var list models.GroceryList
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND plan_week_id = ?", userID, planWeekID).
		Order("created_at DESC").
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// Update applies trip patches under optimistic concurrency. When the request
// carries a version it must match the stored row or the write is rejected
// with a StaleVersionError.
func (s *GroceryService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateGroceryListRequest) (*models.GroceryList, error) {
	list, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if req.Version != nil && *req.Version != list.Version {
		return nil, &grocery.StaleVersionError{Given: *req.Version, Current: list.Version}
	}

	patches := make([]grocery.TripPatch, 0, len(req.Trips))
	for _, p := range req.Trips {
		patches = append(patches, grocery.TripPatch{TripIndex: p.TripIndex, Items: p.Items})
	}

	trips, err := grocery.ApplyTripPatches(list.Trips, patches)
	if err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).Model(&models.GroceryList{}).
		Where("id = ? AND version = ?", list.ID, list.Version).
		Updates(map[string]interface{}{
			"trips":   trips,
			"version": list.Version + 1,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Lost the race to a concurrent writer.
		fresh, ferr := s.Get(ctx, userID, id)
		current := list.Version
		if ferr == nil {
			current = fresh.Version
		}
		given := list.Version
		if req.Version != nil {
			given = *req.Version
		}
		return nil, &grocery.StaleVersionError{Given: given, Current: current}
	}

	list.Trips = trips
	list.Version++
	return list, nil
}
