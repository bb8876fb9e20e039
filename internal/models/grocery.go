package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GroceryItem is one line of a shopping trip. Name fields are snapshots
// taken at assembly time; renaming an ingredient later does not change a
// historical list.
type GroceryItem struct {
	IngredientID   uuid.UUID `json:"ingredientId"`
	IngredientName string    `json:"ingredientName,omitempty"`
	CategoryID     uuid.UUID `json:"categoryId"`
	CategoryName   string    `json:"categoryName,omitempty"`
	Needed         Quantity  `json:"needed"`
	AfterPantry    Quantity  `json:"afterPantry"`
	Checked        bool      `json:"checked"`
}

// DateRange is a closed calendar-date interval.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// GroceryTrip is one shopping excursion covering a contiguous sub-range of
// the planned week.
type GroceryTrip struct {
	TripIndex int           `json:"tripIndex"`
	DateRange DateRange     `json:"dateRange"`
	Items     []GroceryItem `json:"items"`
}

// GroceryTrips is a custom type for storing trips in a JSONB column
type GroceryTrips []GroceryTrip

// Value implements the driver.Valuer interface
func (trips GroceryTrips) Value() (driver.Value, error) {
	if len(trips) == 0 {
		return "[]", nil
	}
	return json.Marshal(trips)
}

// Scan implements the sql.Scanner interface
func (trips *GroceryTrips) Scan(value interface{}) error {
	if value == nil {
		*trips = GroceryTrips{}
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

	return json.Unmarshal(bytes, trips)
}

// GroceryList is one computed shopping list for a planner week. Recomputing
// a week creates a new list row; prior lists are kept as history. Version
// increments on every patch and guards concurrent edits.
type GroceryList struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	PlanWeekID uuid.UUID    `gorm:"type:uuid;not null;index" json:"planWeekId"`
	Trips      GroceryTrips `gorm:"type:jsonb;not null;default:'[]'" json:"trips"`
	Version    int          `gorm:"not null;default:1" json:"version"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}
