package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/platewise/backend/internal/models"
)

// Migrate brings the schema up to date via gorm auto-migration.
func Migrate(db *gorm.DB) error {
	log.Printf("Running schema migration")
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Category{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.PlannerWeek{},
		&models.PlannerItem{},
		&models.PantryItem{},
		&models.GroceryList{},
	)
}
