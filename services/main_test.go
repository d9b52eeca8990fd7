package services

import (
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Product{},
		&models.Message{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		ContactNo: "09170000000",
		Email:     username + "@cit.edu",
		Address:   "Cebu City",
		Password:  hashed,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, owner, name, status string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:           name,
		PdtDescription: "desc",
		BuyPrice:       100,
		Category:       "Electronics",
		Status:         status,
		ConditionType:  "Used",
		UserUsername:   owner,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product %s: %v", name, err)
	}
	return product
}
