package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/services"
)

type MessageHandler struct {
	Messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{Messages: messages}
}

// SendMessage - POST /api/messages
func (h *MessageHandler) SendMessage(c *fiber.Ctx) error {
	var dto services.MessageDTO
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	saved, err := h.Messages.Send(dto)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(saved)
}

// GetConversation - GET /api/messages/conversation/:username1/:username2
func (h *MessageHandler) GetConversation(c *fiber.Ctx) error {
	messages, err := h.Messages.GetConversation(c.Params("username1"), c.Params("username2"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(messages)
}

// GetProductConversation - GET /api/messages/conversation/:username1/:username2/product/:productCode
func (h *MessageHandler) GetProductConversation(c *fiber.Ctx) error {
	productCode, err := c.ParamsInt("productCode")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid product code"})
	}

	messages, err := h.Messages.GetProductConversation(c.Params("username1"), c.Params("username2"), productCode)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(messages)
}

// GetConversations - GET /api/messages/conversations/:username
func (h *MessageHandler) GetConversations(c *fiber.Ctx) error {
	conversations, err := h.Messages.GetConversations(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(conversations)
}

// MarkAsRead - PUT /api/messages/:messageId/read
func (h *MessageHandler) MarkAsRead(c *fiber.Ctx) error {
	messageID, err := c.ParamsInt("messageId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid message id"})
	}

	if err := h.Messages.MarkAsRead(uint(messageID)); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// GetUnreadMessages - GET /api/messages/unread/:username
func (h *MessageHandler) GetUnreadMessages(c *fiber.Ctx) error {
	messages, err := h.Messages.GetUnread(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(messages)
}

// GetUnreadMessageCount - GET /api/messages/unread/count/:username
func (h *MessageHandler) GetUnreadMessageCount(c *fiber.Ctx) error {
	count, err := h.Messages.CountUnread(c.Params("username"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(count)
}
