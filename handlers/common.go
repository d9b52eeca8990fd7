package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/services"
)

// statusForError maps the service sentinel errors onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrNotPending):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrIncorrectPassword):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidRole):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"message": err.Error()})
}

// saveProfilePhoto stores the upload under uploadDir with a generated unique
// name (username + timestamp + original extension) and returns that filename.
func saveProfilePhoto(c *fiber.Ctx, file *multipart.FileHeader, uploadDir, username string) (string, error) {
	ext := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("%s_%d%s", username, time.Now().UnixMilli(), ext)
	if err := c.SaveFile(file, filepath.Join(uploadDir, fileName)); err != nil {
		return "", err
	}
	return fileName, nil
}
