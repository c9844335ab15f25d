package model

import (
	"github.com/goblue0808/Genesis-Frontier/internal/empire"
	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// GameState is the full client-facing view of one player's game, rebuilt
// from the empire after every command.
type GameState struct {
	Turn       int    `json:"turn"`
	Stage      int    `json:"stage"`
	StageName  string `json:"stage_name"`
	Collapsed  bool   `json:"collapsed"`
	PlanetType string `json:"planet_type"`
	PlanetName string `json:"planet_name"`

	Planet     sim.PlanetState  `json:"planet"`
	Resources  sim.ResourcePool `json:"resources"`
	Facilities map[string]int   `json:"facilities"`
	Alerts     sim.AlertLog     `json:"alerts"`

	PrestigeRank string `json:"prestige_rank"`

	Galaxy      *empire.Galaxy             `json:"galaxy"`
	Colonies    []*empire.Colony           `json:"colonies"`
	Ships       []*empire.Ship             `json:"ships"`
	Shipyard    []empire.ShipyardOrder     `json:"shipyard"`
	Relations   map[string]*empire.Relation `json:"relations"`
	TradeRoutes []empire.TradeRoute        `json:"trade_routes"`
	Alliances   []empire.AllianceRecord    `json:"alliances"`
	Wars        []empire.WarRecord         `json:"wars"`
	Projects    []empire.MegaProjectOrder  `json:"projects"`
	Technologies map[string]bool           `json:"technologies"`
}

// CommandResult wraps every game command response. Rule failures are not
// transport errors: the command returns 200 with ok=false and the engine's
// alert text explains why.
type CommandResult struct {
	OK    bool             `json:"ok"`
	Intel *empire.SpyIntel `json:"intel,omitempty"`
	State *GameState       `json:"state"`
}

type ExploreRequest struct {
	ShipID   string `json:"ship_id"`
	SystemID string `json:"system_id"`
}

type ColonizeRequest struct {
	ShipID   string `json:"ship_id"`
	SystemID string `json:"system_id"`
	PlanetID string `json:"planet_id"`
}

type TreatyRequest struct {
	OpponentID string `json:"opponent_id"`
	Treaty     string `json:"treaty"`
}

type TradeRouteRequest struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	Resource string  `json:"resource"`
	Amount   float64 `json:"amount"`
}

type SpyRequest struct {
	TargetID string `json:"target_id"`
}

type InvadeRequest struct {
	TargetID string `json:"target_id"`
	SystemID string `json:"system_id"`
	PlanetID string `json:"planet_id"`
}

type DefenseRequest struct {
	Planet int    `json:"planet"`
	Kind   string `json:"kind"`
}
