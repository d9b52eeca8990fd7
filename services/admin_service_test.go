package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

func seedAdmin(t *testing.T, db *gorm.DB, username string) *models.Admin {
	t.Helper()
	hashed, err := utils.HashPassword("admin-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := &models.Admin{
		Username:  username,
		FirstName: "Site",
		LastName:  "Admin",
		Email:     username + "@cit.edu",
		Password:  hashed,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin %s: %v", username, err)
	}
	return admin
}

func TestAdminAuthenticateUsesHash(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db, NewUserService(db))
	seedAdmin(t, db, "root")

	if _, err := svc.Authenticate("root", "admin-pass"); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if _, err := svc.Authenticate("root", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestAddAdminRejectsDuplicateAndHashes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db, NewUserService(db))
	seedAdmin(t, db, "root")

	if err := svc.Add(&models.Admin{Username: "root", Password: "x"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("want ErrUsernameTaken, got %v", err)
	}

	admin := &models.Admin{Username: "second", Email: "second@cit.edu", Password: "plain-pass"}
	if err := svc.Add(admin); err != nil {
		t.Fatalf("add: %v", err)
	}
	if admin.Password == "plain-pass" {
		t.Fatal("password stored in plaintext")
	}
}

func TestDeleteAccountByRole(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	svc := NewAdminService(db, users)
	seedAdmin(t, db, "root")
	seedUser(t, db, "kaye")
	seedProduct(t, db, "kaye", "Calculator", models.StatusApproved)

	if err := svc.DeleteAccount("user", "kaye"); err != nil {
		t.Fatalf("delete user account: %v", err)
	}
	var count int64
	db.Model(&models.Product{}).Where("user_username = ?", "kaye").Count(&count)
	if count != 0 {
		t.Fatal("user deletion did not cascade to products")
	}

	if err := svc.DeleteAccount("admin", "root"); err != nil {
		t.Fatalf("delete admin account: %v", err)
	}
	if _, err := svc.GetByUsername("root"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("admin still present: %v", err)
	}

	if err := svc.DeleteAccount("superuser", "whoever"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("want ErrInvalidRole, got %v", err)
	}
}
