package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeItem is one ingredient line of a recipe, stated per single portion.
type RecipeItem struct {
	IngredientID uuid.UUID `json:"ingredientId"`
	Quantity     Quantity  `json:"quantity"`
	PackageNote  string    `json:"packageNote,omitempty"`
}

// RecipeItems is a custom type for storing recipe lines in a JSONB column
type RecipeItems []RecipeItem

// Value implements the driver.Valuer interface
func (items RecipeItems) Value() (driver.Value, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	return json.Marshal(items)
}

// Scan implements the sql.Scanner interface
func (items *RecipeItems) Scan(value interface{}) error {
	if value == nil {
		*items = RecipeItems{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, items)
}

type Recipe struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	ExternalURL *string        `gorm:"size:512" json:"externalUrl,omitempty"`
	Notes       *string        `gorm:"type:text" json:"notes,omitempty"`
	Items       RecipeItems    `gorm:"type:jsonb;not null;default:'[]'" json:"items"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
