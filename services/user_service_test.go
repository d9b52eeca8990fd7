package services

import (
	"errors"
	"testing"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

func TestRegisterHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user := &models.User{
		Username:  "kaye",
		FirstName: "Kaye",
		LastName:  "Cabarrubias",
		Email:     "kaye@cit.edu",
		Password:  "secret-pass",
	}
	if err := svc.Register(user); err != nil {
		t.Fatalf("register: %v", err)
	}

	stored, err := svc.GetByUsername("kaye")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Password == "secret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if !utils.CheckPasswordHash("secret-pass", stored.Password) {
		t.Fatal("stored hash does not verify against original password")
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "kaye")

	err := svc.Register(&models.User{Username: "kaye", Email: "other@cit.edu", Password: "x"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("want ErrUsernameTaken, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "kaye")

	err := svc.Register(&models.User{Username: "other", Email: "kaye@cit.edu", Password: "x"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "kaye")

	if _, err := svc.Authenticate("kaye", "password123"); err != nil {
		t.Fatalf("valid credentials rejected: %v", err)
	}
	if _, err := svc.Authenticate("kaye", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Authenticate("ghost", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "kaye")

	if _, err := svc.ChangePassword("kaye", "wrong", "newpass123"); !errors.Is(err, ErrIncorrectPassword) {
		t.Fatalf("want ErrIncorrectPassword, got %v", err)
	}

	if _, err := svc.ChangePassword("kaye", "password123", "newpass123"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := svc.Authenticate("kaye", "newpass123"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	seedUser(t, db, "kaye")
	seedUser(t, db, "lloyd")
	mine := seedProduct(t, db, "kaye", "Calculator", models.StatusApproved)
	theirs := seedProduct(t, db, "lloyd", "Lamp", models.StatusApproved)

	if err := db.Create(&models.Message{
		SenderUsername: "kaye", ReceiverUsername: "lloyd", Content: "hi",
	}).Error; err != nil {
		t.Fatalf("seed message: %v", err)
	}
	if err := db.Create(&models.Message{
		SenderUsername: "lloyd", ReceiverUsername: "kaye", Content: "hello",
	}).Error; err != nil {
		t.Fatalf("seed message: %v", err)
	}
	if err := db.Create(&models.Notification{
		Message: "welcome", Type: "info", UserUsername: "kaye",
	}).Error; err != nil {
		t.Fatalf("seed notification: %v", err)
	}

	if err := svc.Delete("kaye"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetByUsername("kaye"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("user still present: %v", err)
	}
	var count int64
	db.Model(&models.Message{}).Count(&count)
	if count != 0 {
		t.Fatalf("want no messages left, got %d", count)
	}
	db.Model(&models.Notification{}).Where("user_username = ?", "kaye").Count(&count)
	if count != 0 {
		t.Fatalf("want no notifications left, got %d", count)
	}
	db.Model(&models.Product{}).Where("code = ?", mine.Code).Count(&count)
	if count != 0 {
		t.Fatal("own product survived the cascade")
	}
	db.Model(&models.Product{}).Where("code = ?", theirs.Code).Count(&count)
	if count != 1 {
		t.Fatal("other user's product was deleted")
	}
}

func TestDeleteUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	if err := svc.Delete("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestProvisionGoogleUserReusesByEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	existing := seedUser(t, db, "kaye")

	user, err := svc.ProvisionGoogleUser("kaye@cit.edu", "Kaye Cabarrubias", "photo.png", "google-1")
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if user.Username != existing.Username {
		t.Fatalf("want existing account %s, got %s", existing.Username, user.Username)
	}
}

func TestProvisionGoogleUserGeneratesUniqueUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	first, err := svc.ProvisionGoogleUser("a@gmail.com", "Karen Lean Kay Cabarrubias", "", "g-1")
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if first.Username != "karen_lean_kay" {
		t.Fatalf("want karen_lean_kay, got %s", first.Username)
	}

	second, err := svc.ProvisionGoogleUser("b@gmail.com", "Karen Lean Kay Smith", "", "g-2")
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if second.Username != "karen_lean_kay1" {
		t.Fatalf("want karen_lean_kay1, got %s", second.Username)
	}
}
