package main

import (
	"log"

	"github.com/google/uuid"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/models"
)

// Store-walk order, which is what the grocery list sorts by.
var categories = []string{
	"Vegetables",
	"Fruits",
	"Bakery",
	"Meat & Fish",
	"Dairy & Eggs",
	"Dry Goods",
	"Canned & Jarred",
	"Spices & Condiments",
	"Frozen",
	"Beverages",
	"Snacks",
	"Household",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	for i, name := range categories {
		category := models.Category{
			ID:        uuid.New(),
			Name:      name,
			SortOrder: i + 1,
		}
		result := db.Where("name = ?", name).FirstOrCreate(&category)
		if result.Error != nil {
			log.Fatalf("Failed to seed category %q: %v", name, result.Error)
		}
		if result.RowsAffected > 0 {
			log.Printf("Seeded category %q", name)
		}
	}
	log.Println("Seeding complete")
}
