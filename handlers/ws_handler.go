package handlers

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/config"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/internal/ws"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/utils"
)

type WSHandler struct {
	Hub *ws.Hub
	Cfg *config.Config
}

func NewWSHandler(hub *ws.Hub, cfg *config.Config) *WSHandler {
	return &WSHandler{Hub: hub, Cfg: cfg}
}

// UpgradeMiddleware authenticates the ?token= query parameter and ensures
// the client is performing a WebSocket upgrade.
func (h *WSHandler) UpgradeMiddleware(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	username, err := utils.ParseToken(c.Query("token"), h.Cfg.JWTSecret)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Token is invalid")
	}

	c.Locals("username", username)
	return c.Next()
}

// Handler returns the websocket handler function
func (h *WSHandler) Handler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		username, ok := c.Locals("username").(string)
		if !ok || username == "" {
			c.Close()
			return
		}

		client := &ws.Client{
			Hub:      h.Hub,
			Conn:     c,
			Send:     make(chan []byte, 256),
			Username: username,
		}

		client.Hub.Register <- client

		go client.WritePump()
		client.ReadPump()
	})
}
