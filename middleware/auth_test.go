package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

const testSecret = "test-secret"

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "_auth?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Admin{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	app.Use("/api", Protected(testSecret, AdminResolver(db), UserResolver(db)))
	app.Get("/api/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username": c.Locals("username"),
			"role":     c.Locals("role"),
		})
	})
	app.Post("/api/user/login", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app, db
}

func request(t *testing.T, app *fiber.App, method, target, token string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, target, err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestProtectedRejectsMissingAndMalformedTokens(t *testing.T) {
	app, _ := setupAuthApp(t)

	if status := request(t, app, fiber.MethodGet, "/api/whoami", ""); status != fiber.StatusUnauthorized {
		t.Fatalf("want 401 without token, got %d", status)
	}
	if status := request(t, app, fiber.MethodGet, "/api/whoami", "garbage"); status != fiber.StatusUnauthorized {
		t.Fatalf("want 401 for malformed token, got %d", status)
	}
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	app, db := setupAuthApp(t)
	db.Create(&models.User{Username: "kaye", Email: "kaye@cit.edu", Password: "x"})

	expired, err := utils.GenerateToken("kaye", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if status := request(t, app, fiber.MethodGet, "/api/whoami", expired); status != fiber.StatusUnauthorized {
		t.Fatalf("want 401 for expired token, got %d", status)
	}
}

func TestPublicPathsBypassAuth(t *testing.T) {
	app, _ := setupAuthApp(t)

	if status := request(t, app, fiber.MethodPost, "/api/user/login", ""); status != fiber.StatusOK {
		t.Fatalf("want 200 on public path, got %d", status)
	}
}

func TestAdminResolvedBeforeUser(t *testing.T) {
	app, db := setupAuthApp(t)

	// One username living in both tables resolves to the admin account.
	db.Create(&models.Admin{Username: "shared", Email: "admin@cit.edu", Password: "x"})
	db.Create(&models.User{Username: "shared", Email: "user@cit.edu", Password: "x"})

	token, err := utils.GenerateToken("shared", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Role != "admin" {
		t.Fatalf("want admin resolved first, got role %q", body.Role)
	}
	if body.Username != "shared" {
		t.Fatalf("unexpected username %q", body.Username)
	}
}
