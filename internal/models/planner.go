package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealSlot is one of the five fixed meal slots of a planner day.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotSnackAM   MealSlot = "snackAM"
	SlotLunch     MealSlot = "lunch"
	SlotSnackPM   MealSlot = "snackPM"
	SlotDinner    MealSlot = "dinner"
)

// ValidMealSlot reports whether s is one of the enumerated slots.
func ValidMealSlot(s MealSlot) bool {
	switch s {
	case SlotBreakfast, SlotSnackAM, SlotLunch, SlotSnackPM, SlotDinner:
		return true
	}
	return false
}

// DateLayout is the wire format for calendar dates (ISO, no time component).
const DateLayout = "2006-01-02"

// PlannerItem is one planned meal. Exactly one of RecipeID or a non-empty
// AdHocItems list determines what is consumed for the slot. Portions scales
// recipe quantities only; ad-hoc quantities are taken as stated.
type PlannerItem struct {
	ID            uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	PlanWeekID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	Date          string      `gorm:"size:10;not null" json:"date"`
	Slot          MealSlot    `gorm:"size:20;not null" json:"slot"`
	RecipeID      *uuid.UUID  `gorm:"type:uuid" json:"recipeId"`
	Portions      int         `gorm:"not null;default:1" json:"portions"`
	AdHocItems    RecipeItems `gorm:"type:jsonb;not null;default:'[]'" json:"adHocItems"`
	AddedByUserID uuid.UUID   `gorm:"type:uuid;not null" json:"addedByUserId"`
	CreatedAt     time.Time   `json:"-"`
	UpdatedAt     time.Time   `json:"-"`
}

// PlannerWeek is a Monday-anchored week of planned meals. StartDate plus six
// days is the week's closed date range; every item date must fall inside it.
type PlannerWeek struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	HouseholdID *uuid.UUID     `gorm:"type:uuid" json:"householdId"`
	StartDate   string         `gorm:"size:10;not null;index" json:"startDate"`
	Items       []PlannerItem  `gorm:"foreignKey:PlanWeekID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// EndDate returns the last day of the week's closed date range. StartDate is
// validated on write, so a stored week always parses.
func (w *PlannerWeek) EndDate() string {
	start, err := time.Parse(DateLayout, w.StartDate)
	if err != nil {
		return w.StartDate
	}
	return start.AddDate(0, 0, 6).Format(DateLayout)
}
