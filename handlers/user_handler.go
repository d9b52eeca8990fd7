package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/config"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/services"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

var validate = validator.New()

type UserHandler struct {
	Users *services.UserService
	Cfg   *config.Config
}

func NewUserHandler(users *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{Users: users, Cfg: cfg}
}

// RegisterRequest defines the payload for registration
type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address" validate:"required"`
	ContactNo string `json:"contactNo" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest carries the old password for re-verification.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Register - POST /api/user/postUserRecord
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if err := validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fe := range fieldErrors {
				switch {
				case fe.Field() == "Password" && fe.Tag() == "min":
					return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
						"message": "Password must be at least 8 characters long",
					})
				case fe.Field() == "Email" && fe.Tag() == "email":
					return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
						"message": "Invalid email format",
					})
				}
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
	}

	user := models.User{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		ContactNo: req.ContactNo,
		Email:     req.Email,
	}

	if err := h.Users.Register(&user); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// Login - POST /api/user/login
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	user, err := h.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		return errorJSON(c, err)
	}

	token, err := utils.GenerateToken(user.Username, h.Cfg.JWTSecret, h.Cfg.JWTExpiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not login"})
	}

	return c.JSON(fiber.Map{
		"token":     token,
		"message":   "Login Successful",
		"username":  user.Username,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"address":   user.Address,
		"contactNo": user.ContactNo,
		"email":     user.Email,
	})
}

// UploadProfilePhoto - POST /api/user/uploadProfilePhoto/:username
func (h *UserHandler) UploadProfilePhoto(c *fiber.Ctx) error {
	username := c.Params("username")

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No file selected"})
	}

	fileName, err := saveProfilePhoto(c, file, h.Cfg.UploadDir, username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to upload the file",
			"error":   err.Error(),
		})
	}

	if _, err := h.Users.SetProfilePhoto(username, fileName); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Profile photo uploaded successfully",
		"fileName": fileName,
	})
}

// GetUserRecord - GET /api/user/getUserRecord/:username
func (h *UserHandler) GetUserRecord(c *fiber.Ctx) error {
	user, err := h.Users.GetByUsername(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(user)
}

// GetUsername - GET /api/user/getUsername/:username
func (h *UserHandler) GetUsername(c *fiber.Ctx) error {
	user, err := h.Users.GetByUsername(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.SendString(user.Username)
}

// PutUserRecord - PUT /api/user/putUserRecord/:username
func (h *UserHandler) PutUserRecord(c *fiber.Ctx) error {
	var details models.User
	if err := c.BodyParser(&details); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	user, err := h.Users.UpdateDetails(c.Params("username"), &details)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(user)
}

// ChangePassword - PUT /api/user/changePassword/:username
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	user, err := h.Users.ChangePassword(c.Params("username"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(user)
}

// DeleteUserRecord - DELETE /api/user/deleteUserRecord/:username
func (h *UserHandler) DeleteUserRecord(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.Users.Delete(username); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "User " + username + " successfully deleted"})
}
