package handler

import (
	"github.com/goblue0808/Genesis-Frontier/internal/model"
	"github.com/goblue0808/Genesis-Frontier/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GameHandler exposes the turn-resolution engine. Every command returns
// 200 with a CommandResult; ok=false plus the alert log is the normal way
// a rule violation surfaces. Error statuses are reserved for bad payloads
// and infrastructure failures.
type GameHandler struct {
	gameSvc *service.GameService
}

func NewGameHandler(gameSvc *service.GameService) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

func identity(c *fiber.Ctx) (string, string) {
	playerID, _ := c.Locals("player_id").(string)
	username, _ := c.Locals("username").(string)
	return playerID, username
}

func (h *GameHandler) GetState(c *fiber.Ctx) error {
	playerID, username := identity(c)
	state, err := h.gameSvc.State(c.Context(), playerID, username)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to load game state"})
	}
	return c.JSON(state)
}

func (h *GameHandler) AdvanceTurn(c *fiber.Ctx) error {
	playerID, username := identity(c)
	result, err := h.gameSvc.AdvanceTurn(c.Context(), playerID, username)
	return h.respond(c, result, err)
}

func (h *GameHandler) ResetPlanet(c *fiber.Ctx) error {
	playerID, username := identity(c)
	result, err := h.gameSvc.ResetPlanet(c.Context(), playerID, username)
	return h.respond(c, result, err)
}

func (h *GameHandler) ChangePlanetType(c *fiber.Ctx) error {
	playerID, username := identity(c)
	result, err := h.gameSvc.ChangePlanetType(c.Context(), playerID, username)
	return h.respond(c, result, err)
}

func (h *GameHandler) PurchaseFacility(c *fiber.Ctx) error {
	playerID, username := identity(c)
	kind := c.Params("kind")
	if kind == "" {
		return c.Status(400).JSON(fiber.Map{"error": "facility kind is required"})
	}
	result, err := h.gameSvc.PurchaseFacility(c.Context(), playerID, username, kind)
	return h.respond(c, result, err)
}

func (h *GameHandler) BuildShip(c *fiber.Ctx) error {
	playerID, username := identity(c)
	kind := c.Params("kind")
	if kind == "" {
		return c.Status(400).JSON(fiber.Map{"error": "ship kind is required"})
	}
	result, err := h.gameSvc.BuildShip(c.Context(), playerID, username, kind)
	return h.respond(c, result, err)
}

func (h *GameHandler) Explore(c *fiber.Ctx) error {
	playerID, username := identity(c)
	var req model.ExploreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.ShipID == "" || req.SystemID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "ship_id and system_id are required"})
	}
	result, err := h.gameSvc.Explore(c.Context(), playerID, username, &req)
	return h.respond(c, result, err)
}

func (h *GameHandler) Colonize(c *fiber.Ctx) error {
	playerID, username := identity(c)
	var req model.ColonizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.ShipID == "" || req.SystemID == "" || req.PlanetID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "ship_id, system_id and planet_id are required"})
	}
	result, err := h.gameSvc.Colonize(c.Context(), playerID, username, &req)
	return h.respond(c, result, err)
}

func (h *GameHandler) ProposeTreaty(c *fiber.Ctx) error {
	playerID, username := identity(c)
	var req model.TreatyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.OpponentID == "" || req.Treaty == "" {
		return c.Status(400).JSON(fiber.Map{"error": "opponent_id and treaty are required"})
	}
	result, err := h.gameSvc.ProposeTreaty(c.Context(), playerID, username, &req)
	return h.respond(c, result, err)
}

func (h *GameHandler) CreateTradeRoute(c *fiber.Ctx) error {
	playerID, username := identity(c)
	var req model.TradeRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Resource == "" || req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "resource and a positive amount are required"})
	}
	result, err := h.gameSvc.CreateTradeRoute(c.Context(), playerID, username, &req)
	return h.respond(c, result, err)
}

func (h *GameHandler) SendSpy(c *fiber.Ctx) error {
	playerID, username := identity(c)
	var req model.SpyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.TargetID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "target_id is required"})
	}
	result, err := h.gameSvc.SendSpy(c.Context(), playerID, username, &req)
	return h.respond(c, result, err)
}

func (h *GameHandler) LaunchInvasion(c *fiber.Ctx) error {
	playerID, username := identity(c)
	var req model.InvadeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.TargetID == "" || req.SystemID == "" || req.PlanetID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "target_id, system_id and planet_id are required"})
	}
	result, err := h.gameSvc.LaunchInvasion(c.Context(), playerID, username, &req)
	return h.respond(c, result, err)
}

func (h *GameHandler) BuildDefense(c *fiber.Ctx) error {
	playerID, username := identity(c)
	var req model.DefenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Kind == "" {
		return c.Status(400).JSON(fiber.Map{"error": "kind is required"})
	}
	result, err := h.gameSvc.BuildDefense(c.Context(), playerID, username, &req)
	return h.respond(c, result, err)
}

func (h *GameHandler) StartMegaProject(c *fiber.Ctx) error {
	playerID, username := identity(c)
	kind := c.Params("kind")
	if kind == "" {
		return c.Status(400).JSON(fiber.Map{"error": "project kind is required"})
	}
	result, err := h.gameSvc.StartMegaProject(c.Context(), playerID, username, kind)
	return h.respond(c, result, err)
}

func (h *GameHandler) respond(c *fiber.Ctx, result *model.CommandResult, err error) error {
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "command failed"})
	}
	return c.JSON(result)
}
