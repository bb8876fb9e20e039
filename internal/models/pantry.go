package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PantryItem is current on-hand stock for one ingredient. It is read-only
// input to grocery computation and never mutated by it.
type PantryItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	IngredientID uuid.UUID      `gorm:"type:uuid;not null;index" json:"ingredientId"`
	Quantity     Quantity       `gorm:"embedded;embeddedPrefix:quantity_" json:"quantity"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
