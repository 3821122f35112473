package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/varsitymarket/varsity-market-backend/internal/config"
	"github.com/varsitymarket/varsity-market-backend/internal/database"
	"github.com/varsitymarket/varsity-market-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory SQLite database and migrates the
// marketplace schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()

	user := models.User{
		ID:         uuid.New(),
		Email:      email,
		Password:   "x",
		Name:       name,
		University: "Wits University",
		Role:       models.RoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, sellerID uuid.UUID, title string, price float64) models.Product {
	t.Helper()

	product := models.Product{
		ID:          uuid.New(),
		Title:       title,
		Description: "Description for " + title,
		Price:       price,
		Category:    "Textbooks",
		Condition:   "Good",
		ImageURLs:   []string{"https://example.com/" + title + ".jpg"},
		SellerID:    sellerID,
		University:  "Wits University",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
