package handler

import (
	"context"
	"time"

	"github.com/goblue0808/Genesis-Frontier/internal/model"
	"github.com/goblue0808/Genesis-Frontier/internal/repository"
	"github.com/goblue0808/Genesis-Frontier/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PublicHandler struct {
	playerRepo       *repository.PlayerRepository
	wsHub            *service.WSHub
	leaderboardLimit int
}

func NewPublicHandler(playerRepo *repository.PlayerRepository, wsHub *service.WSHub, leaderboardLimit int) *PublicHandler {
	return &PublicHandler{playerRepo: playerRepo, wsHub: wsHub, leaderboardLimit: leaderboardLimit}
}

func (h *PublicHandler) Stats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	totalPlayers, _ := h.playerRepo.CountTotal(ctx)
	online := h.wsHub.OnlineCount()

	return c.JSON(fiber.Map{
		"players_total":  totalPlayers,
		"players_online": online,
		"server_status":  "online",
	})
}

func (h *PublicHandler) Leaderboard(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	entries, err := h.playerRepo.Leaderboard(ctx, h.leaderboardLimit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load leaderboard"})
	}
	if entries == nil {
		entries = []model.LeaderboardEntry{}
	}
	return c.JSON(fiber.Map{"leaderboard": entries})
}
