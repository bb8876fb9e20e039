package api

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platewise/backend/internal/middleware"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/service"
)

// TestEnv bundles the in-memory database and services handler tests need.
type TestEnv struct {
	DB          *gorm.DB
	AuthService *service.AuthService
}

// SetupTestDB opens an in-memory SQLite database with the full schema.
func SetupTestDB(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
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
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestEnv{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret"),
	}
}

// CreateTestUser registers a user and returns it with a valid token.
func (e *TestEnv) CreateTestUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()
	user, token, err := e.AuthService.Register(context.Background(), email, "password123", "Test User")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user, token
}

// NewProtectedRouter builds a gin engine with the auth middleware mounted
// under /api/v1, mirroring the production route layout.
func (e *TestEnv) NewProtectedRouter(register func(*gin.RouterGroup)) *gin.Engine {
	router := gin.New()
	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(e.AuthService))
	register(protected)
	return router
}
