package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName  string         `gorm:"size:100;not null" json:"displayName"`
	PasswordHash string         `gorm:"not null" json:"-"`
	HouseholdID  *uuid.UUID     `gorm:"type:uuid" json:"householdId,omitempty"`
}

type UserProfile struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	Role      string         `gorm:"size:20;not null;default:'personal'" json:"role"`
	MealSlots string         `gorm:"size:255;not null;default:'breakfast,snackAM,lunch,snackPM,dinner'" json:"mealSlots"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
