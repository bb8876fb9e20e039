package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is global reference data, seeded once and shared by all users.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Ingredient struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerUserID uuid.UUID      `gorm:"type:uuid;not null;index" json:"ownerUserId"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	CategoryID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"categoryId"`
	DefaultUnit Unit           `gorm:"size:10;not null" json:"defaultUnit"`
	PackageSize Quantity       `gorm:"embedded;embeddedPrefix:package_size_" json:"packageSize"`
	Notes       string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
