package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/services"
)

type NotificationHandler struct {
	Notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

// GetNotificationsForUser - GET /api/notifications/user/:username
func (h *NotificationHandler) GetNotificationsForUser(c *fiber.Ctx) error {
	notifications, err := h.Notifications.GetForUser(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(notifications)
}

// MarkAllRead - PUT /api/notifications/markAllRead/:username
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.Notifications.MarkAllRead(c.Params("username")); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
