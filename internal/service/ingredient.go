package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

var (
	ErrInvalidUnit = errors.New("unit must be one of g, kg, ml, l, piece, pack")
	ErrBadCursor   = errors.New("malformed cursor")
)

const defaultPageSize = 50

// pageCursor encodes the created_at of the last row of a page.
func pageCursor(t time.Time) *string {
	c := t.UTC().Format(time.RFC3339Nano)
	return &c
}

func parseCursor(cursor string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, cursor)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return defaultPageSize
	}
	return limit
}

// IngredientService handles the per-user ingredient library and the global
// category table.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) List(ctx context.Context, userID uuid.UUID, q string, categoryID *uuid.UUID, limit int, cursor string) ([]models.Ingredient, *string, error) {
	limit = clampLimit(limit)

	query := s.db.WithContext(ctx).Where("owner_user_id = ?", userID)
	if q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if cursor != "" {
		after, err := parseCursor(cursor)
		if err != nil {
			return nil, nil, ErrBadCursor
		}
		query = query.Where("created_at < ?", after)
	}

	var ingredients []models.Ingredient
	if err := query.Order("created_at DESC").Limit(limit + 1).Find(&ingredients).Error; err != nil {
		return nil, nil, err
	}

	var next *string
	if len(ingredients) > limit {
		ingredients = ingredients[:limit]
		next = pageCursor(ingredients[limit-1].CreatedAt)
	}
	return ingredients, next, nil
}

func (s *IngredientService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ? AND owner_user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateIngredientRequest) (*models.Ingredient, error) {
	if !models.ValidUnit(req.DefaultUnit) || !models.ValidUnit(req.PackageSize.Unit) {
		return nil, ErrInvalidUnit
	}

	ingredient := models.Ingredient{
		ID:          uuid.New(),
		OwnerUserID: userID,
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		DefaultUnit: req.DefaultUnit,
		PackageSize: req.PackageSize,
		Notes:       req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.CategoryID != nil {
		ingredient.CategoryID = *req.CategoryID
	}
	if req.DefaultUnit != nil {
		if !models.ValidUnit(*req.DefaultUnit) {
			return nil, ErrInvalidUnit
		}
		ingredient.DefaultUnit = *req.DefaultUnit
	}
	if req.PackageSize != nil {
		if !models.ValidUnit(req.PackageSize.Unit) {
			return nil, ErrInvalidUnit
		}
		ingredient.PackageSize = *req.PackageSize
	}
	if req.Notes != nil {
		ingredient.Notes = *req.Notes
	}

	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *IngredientService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Ingredient{}, "id = ? AND owner_user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListCategories returns the global seeded category table in display order.
func (s *IngredientService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("sort_order, name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
