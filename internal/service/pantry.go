package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

var ErrPantryDuplicate = errors.New("pantry already has an entry for this ingredient")

// PantryItemView is a pantry row denormalized with its ingredient's
// display fields, the shape the stock screen renders.
type PantryItemView struct {
	ID             uuid.UUID       `json:"id"`
	IngredientID   uuid.UUID       `json:"ingredientId"`
	IngredientName string          `json:"ingredientName"`
	CategoryID     uuid.UUID       `json:"categoryId"`
	CategoryName   string          `json:"categoryName"`
	Quantity       models.Quantity `json:"quantity"`
}

// PantryService handles the per-user stock on hand.
type PantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

func (s *PantryService) view(ctx context.Context, item *models.PantryItem) (*PantryItemView, error) {
	v := &PantryItemView{
		ID:           item.ID,
		IngredientID: item.IngredientID,
		Quantity:     item.Quantity,
	}

	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", item.IngredientID).Error; err == nil {
		v.IngredientName = ingredient.Name
		v.CategoryID = ingredient.CategoryID
		var category models.Category
		if err := s.db.WithContext(ctx).First(&category, "id = ?", ingredient.CategoryID).Error; err == nil {
			v.CategoryName = category.Name
		}
	}
	return v, nil
}

func (s *PantryService) List(ctx context.Context, userID uuid.UUID) ([]PantryItemView, error) {
	var items []models.PantryItem
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, err
	}

	views := make([]PantryItemView, 0, len(items))
	for i := range items {
		v, err := s.view(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *PantryService) Create(ctx context.Context, userID uuid.UUID, req *types.CreatePantryItemRequest) (*PantryItemView, error) {
	if !models.ValidUnit(req.Quantity.Unit) {
		return nil, ErrInvalidUnit
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.PantryItem{}).
		Where("user_id = ? AND ingredient_id = ?", userID, req.IngredientID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrPantryDuplicate
	}

	item := models.PantryItem{
		ID:           uuid.New(),
		UserID:       userID,
		IngredientID: req.IngredientID,
		Quantity:     req.Quantity,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return s.view(ctx, &item)
}

func (s *PantryService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdatePantryItemRequest) (*PantryItemView, error) {
	if !models.ValidUnit(req.Quantity.Unit) {
		return nil, ErrInvalidUnit
	}

	var item models.PantryItem
	if err := s.db.WithContext(ctx).First(&item, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}

	item.Quantity = req.Quantity
	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return s.view(ctx, &item)
}

func (s *PantryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.PantryItem{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
