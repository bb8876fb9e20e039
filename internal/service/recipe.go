package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

var ErrEmptyRecipe = errors.New("recipe needs at least one item")

// RecipeService handles per-user recipe CRUD and search.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

func validateRecipeItems(items []models.RecipeItem) (models.RecipeItems, error) {
	if len(items) == 0 {
		return nil, ErrEmptyRecipe
	}
	for _, it := range items {
		if !models.ValidUnit(it.Quantity.Unit) {
			return nil, ErrInvalidUnit
		}
	}
	return models.RecipeItems(items), nil
}

func (s *RecipeService) List(ctx context.Context, userID uuid.UUID, q string, limit int, cursor string) ([]models.Recipe, *string, error) {
	limit = clampLimit(limit)

	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if cursor != "" {
		after, err := parseCursor(cursor)
		if err != nil {
			return nil, nil, ErrBadCursor
		}
		query = query.Where("created_at < ?", after)
	}

	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Limit(limit + 1).Find(&recipes).Error; err != nil {
		return nil, nil, err
	}

	var next *string
	if len(recipes) > limit {
		recipes = recipes[:limit]
		next = pageCursor(recipes[limit-1].CreatedAt)
	}
	return recipes, next, nil
}

func (s *RecipeService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	items, err := validateRecipeItems(req.Items)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		ExternalURL: req.ExternalURL,
		Notes:       req.Notes,
		Items:       items,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Update(ctx context.Context, userID, id uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	items, err := validateRecipeItems(req.Items)
	if err != nil {
		return nil, err
	}

	recipe.Name = req.Name
	recipe.ExternalURL = req.ExternalURL
	recipe.Notes = req.Notes
	recipe.Items = items

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
