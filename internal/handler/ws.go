package handler

import (
	"encoding/json"
	"log"
	"time"

	"github.com/goblue0808/Genesis-Frontier/internal/model"
	"github.com/goblue0808/Genesis-Frontier/internal/service"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type WSHandler struct {
	hub     *service.WSHub
	authSvc *service.AuthService
}

func NewWSHandler(hub *service.WSHub, authSvc *service.AuthService) *WSHandler {
	return &WSHandler{hub: hub, authSvc: authSvc}
}

func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		// Browsers cannot set headers on websocket requests, so the JWT
		// rides in a query param.
		token := c.Query("token")
		if token == "" {
			return c.Status(401).JSON(fiber.Map{"error": "token required"})
		}

		playerID, username, err := h.authSvc.ValidateAccessToken(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("player_id", playerID)
		c.Locals("username", username)
		return websocket.New(h.handleConnection)(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *WSHandler) handleConnection(c *websocket.Conn) {
	playerID, _ := c.Locals("player_id").(string)
	username, _ := c.Locals("username").(string)

	client := &service.WSClient{
		Conn:     c,
		PlayerID: playerID,
		Username: username,
		Send:     make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	// Writer goroutine
	go func() {
		defer c.Close()
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	// Reader loop. The server is push-only for game events; the only
	// client-initiated traffic is keepalive.
	c.SetReadDeadline(time.Now().Add(60 * time.Second))
	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			break
		}

		c.SetReadDeadline(time.Now().Add(60 * time.Second))

		var event model.WSEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			continue
		}

		switch event.Type {
		case "ping":
			pong, _ := json.Marshal(model.WSEvent{Type: "pong"})
			select {
			case client.Send <- pong:
			default:
			}
		default:
			log.Printf("WS: unknown event type %s from %s", event.Type, username)
		}
	}
}
