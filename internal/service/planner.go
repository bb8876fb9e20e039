package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/types"
)

var (
	ErrNotMonday     = errors.New("startDate must be a Monday")
	ErrWeekExists    = errors.New("a plan week with this start date already exists")
	ErrBadDate       = errors.New("date must be formatted YYYY-MM-DD")
	ErrDateOutOfWeek = errors.New("item date falls outside the plan week")
	ErrBadSlot       = errors.New("slot must be one of breakfast, snackAM, lunch, snackPM, dinner")
	ErrItemSource    = errors.New("item needs exactly one of recipeId or adHocItems")
)

// PlannerService handles plan weeks and their meal slots.
type PlannerService struct {
	db *gorm.DB
}

func NewPlannerService(db *gorm.DB) *PlannerService {
	return &PlannerService{db: db}
}

func validateWeekStart(startDate string) error {
	t, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return ErrBadDate
	}
	if t.Weekday() != time.Monday {
		return ErrNotMonday
	}
	return nil
}

func buildPlannerItems(weekID, userID uuid.UUID, startDate string, reqs []types.PlannerItemRequest) ([]models.PlannerItem, error) {
	week := models.PlannerWeek{StartDate: startDate}
	endDate := week.EndDate()

	items := make([]models.PlannerItem, 0, len(reqs))
	for i, req := range reqs {
		if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, ErrBadDate)
		}
		if req.Date < startDate || req.Date > endDate {
			return nil, fmt.Errorf("item %d (%s): %w", i, req.Date, ErrDateOutOfWeek)
		}
		if !models.ValidMealSlot(req.Slot) {
			return nil, fmt.Errorf("item %d (%s): %w", i, req.Slot, ErrBadSlot)
		}
		hasRecipe := req.RecipeID != nil
		hasAdHoc := len(req.AdHocItems) > 0
		if hasRecipe == hasAdHoc {
			return nil, fmt.Errorf("item %d: %w", i, ErrItemSource)
		}
		for _, ad := range req.AdHocItems {
			if !models.ValidUnit(ad.Quantity.Unit) {
				return nil, fmt.Errorf("item %d: %w", i, ErrInvalidUnit)
			}
		}

		items = append(items, models.PlannerItem{
			ID:            uuid.New(),
			PlanWeekID:    weekID,
			Date:          req.Date,
			Slot:          req.Slot,
			RecipeID:      req.RecipeID,
			Portions:      req.Portions,
			AdHocItems:    models.RecipeItems(req.AdHocItems),
			AddedByUserID: userID,
		})
	}
	return items, nil
}

func (s *PlannerService) List(ctx context.Context, userID uuid.UUID, from, to string, limit int, cursor string) ([]models.PlannerWeek, *string, error) {
	limit = clampLimit(limit)

	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != "" {
		query = query.Where("start_date >= ?", from)
	}
	if to != "" {
		query = query.Where("start_date <= ?", to)
	}
	if cursor != "" {
		after, err := parseCursor(cursor)
		if err != nil {
			return nil, nil, ErrBadCursor
		}
		query = query.Where("created_at < ?", after)
	}

	var weeks []models.PlannerWeek
	if err := query.Order("created_at DESC").Limit(limit + 1).Find(&weeks).Error; err != nil {
		return nil, nil, err
	}

	var next *string
	if len(weeks) > limit {
		weeks = weeks[:limit]
		next = pageCursor(weeks[limit-1].CreatedAt)
	}
	return weeks, next, nil
}

func (s *PlannerService) Get(ctx context.Context, userID, id uuid.UUID) (*models.PlannerWeek, error) {
	var week models.PlannerWeek
	if err := s.db.WithContext(ctx).Preload("Items").First(&week, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

func (s *PlannerService) Create(ctx context.Context, userID uuid.UUID, req *types.CreatePlannerWeekRequest) (*models.PlannerWeek, error) {
	if err := validateWeekStart(req.StartDate); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.PlannerWeek{}).
		Where("user_id = ? AND start_date = ?", userID, req.StartDate).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrWeekExists
	}

	weekID := uuid.New()
	items, err := buildPlannerItems(weekID, userID, req.StartDate, req.Items)
	if err != nil {
		return nil, err
	}

	week := models.PlannerWeek{
		ID:          weekID,
		UserID:      userID,
		HouseholdID: req.HouseholdID,
		StartDate:   req.StartDate,
		Items:       items,
	}
	if err := s.db.WithContext(ctx).Create(&week).Error; err != nil {
		return nil, err
	}
	return &week, nil
}

// Update replaces the week's entire item set in one transaction.
func (s *PlannerService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdatePlannerWeekRequest) (*models.PlannerWeek, error) {
	week, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	items, err := buildPlannerItems(week.ID, userID, week.StartDate, req.Items)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_week_id = ?", week.ID).Delete(&models.PlannerItem{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Model(week).Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}

	week.Items = items
	return week, nil
}

func (s *PlannerService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.PlannerWeek{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
