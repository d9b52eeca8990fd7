package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/config"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/services"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

type GoogleAuthHandler struct {
	Users *services.UserService
	Cfg   *config.Config
}

func NewGoogleAuthHandler(users *services.UserService, cfg *config.Config) *GoogleAuthHandler {
	return &GoogleAuthHandler{Users: users, Cfg: cfg}
}

// GoogleAuthRequest is the identity payload the frontend extracts from the
// Google sign-in response.
type GoogleAuthRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	ProfilePhoto string `json:"profilePhoto"`
	GoogleID     string `json:"googleId"`
}

// GoogleAuth - POST /api/auth/google
// Reuses the account registered under the e-mail or provisions a fresh one
// with a generated unique username, then issues the same JWT as a password
// login would.
func (h *GoogleAuthHandler) GoogleAuth(c *fiber.Ctx) error {
	var req GoogleAuthRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Authentication failed: invalid payload"})
	}

	user, err := h.Users.ProvisionGoogleUser(req.Email, req.Name, req.ProfilePhoto, req.GoogleID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Authentication failed: " + err.Error()})
	}

	token, err := utils.GenerateToken(user.Username, h.Cfg.JWTSecret, h.Cfg.JWTExpiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not issue token"})
	}

	return c.JSON(fiber.Map{
		"token":     token,
		"username":  user.Username,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
	})
}
