package empire

import (
	"time"

	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// Snapshot is the complete structural save of an empire, sufficient to
// resume simulation exactly. Every field is independently optional on
// restore: a missing or malformed field falls back to its fresh-empire
// default instead of failing the load.
type Snapshot struct {
	PlayerID   string `json:"player_id,omitempty"`
	PlayerName string `json:"player_name,omitempty"`
	Seed       int64  `json:"seed,omitempty"`

	Turn       *int              `json:"turn,omitempty"`
	PlanetType string            `json:"planet_type,omitempty"`
	PlanetName string            `json:"planet_name,omitempty"`
	Planet     *sim.PlanetState  `json:"planet,omitempty"`
	Resources  *sim.ResourcePool `json:"resources,omitempty"`
	Facilities map[string]int    `json:"facilities,omitempty"`
	Stage      *int              `json:"stage,omitempty"`
	Collapsed  *bool             `json:"collapsed,omitempty"`
	Alerts     sim.AlertLog      `json:"alerts,omitempty"`

	Galaxy   *Galaxy   `json:"galaxy,omitempty"`
	Colonies []*Colony `json:"colonies,omitempty"`
	Explored []string  `json:"explored,omitempty"`

	Ships    []*Ship         `json:"ships,omitempty"`
	Shipyard []ShipyardOrder `json:"shipyard,omitempty"`

	Relations   map[string]*Relation `json:"relations,omitempty"`
	TradeRoutes []TradeRoute         `json:"trade_routes,omitempty"`
	Alliances   []AllianceRecord     `json:"alliances,omitempty"`
	Wars        []WarRecord          `json:"wars,omitempty"`

	Projects     []MegaProjectOrder `json:"projects,omitempty"`
	Technologies map[string]bool    `json:"technologies,omitempty"`

	LastUpdate *time.Time `json:"last_update,omitempty"`
}

// Snapshot captures the empire's full state.
func (e *Empire) Snapshot() *Snapshot {
	turn := e.Core.Turn
	stage := e.Core.Stage
	collapsed := e.Core.Collapsed
	lastUpdate := e.LastUpdate

	return &Snapshot{
		PlayerID:   e.PlayerID,
		PlayerName: e.PlayerName,
		Seed:       e.Seed,

		Turn:       &turn,
		PlanetType: e.Core.PlanetType,
		PlanetName: e.Core.PlanetName,
		Planet:     &e.Core.Planet,
		Resources:  &e.Core.Resources,
		Facilities: e.Core.Facilities,
		Stage:      &stage,
		Collapsed:  &collapsed,
		Alerts:     e.Core.Alerts,

		Galaxy:   e.Galaxy,
		Colonies: e.Colonies,
		Explored: e.Explored,

		Ships:    e.Ships,
		Shipyard: e.Shipyard,

		Relations:   e.Relations,
		TradeRoutes: e.TradeRoutes,
		Alliances:   e.Alliances,
		Wars:        e.Wars,

		Projects:     e.Projects,
		Technologies: e.Technologies,

		LastUpdate: &lastUpdate,
	}
}

// Restore builds an empire from a snapshot. It starts from a fresh empire
// seeded with the snapshot's seed and overlays every field the snapshot
// actually carries, so partial saves degrade to defaults field by field.
// The random generator restarts from the seed; its mid-game position is not
// part of the save.
func Restore(snap *Snapshot) *Empire {
	e := New(snap.PlayerID, snap.PlayerName, snap.Seed)

	if snap.PlanetType != "" {
		e.Core.ResetPlanetTo(snap.PlanetType)
		e.Core.Resources.Metals = startingMetals
	}
	if snap.PlanetName != "" {
		e.Core.PlanetName = snap.PlanetName
	}
	if snap.Turn != nil {
		e.Core.Turn = *snap.Turn
	}
	if snap.Planet != nil {
		e.Core.Planet = *snap.Planet
	}
	if snap.Resources != nil {
		e.Core.Resources = *snap.Resources
	}
	if snap.Facilities != nil {
		e.Core.Facilities = snap.Facilities
	}
	if snap.Stage != nil {
		e.Core.Stage = *snap.Stage
	}
	if snap.Collapsed != nil {
		e.Core.Collapsed = *snap.Collapsed
	}
	if snap.Alerts != nil {
		e.Core.Alerts = snap.Alerts
	}

	if snap.Galaxy != nil {
		e.Galaxy = snap.Galaxy
	}
	if snap.Colonies != nil {
		e.Colonies = snap.Colonies
	}
	if snap.Explored != nil {
		e.Explored = snap.Explored
	}
	if snap.Ships != nil {
		e.Ships = snap.Ships
	}
	if snap.Shipyard != nil {
		e.Shipyard = snap.Shipyard
	}
	if snap.Relations != nil {
		e.Relations = snap.Relations
	}
	if snap.TradeRoutes != nil {
		e.TradeRoutes = snap.TradeRoutes
	}
	if snap.Alliances != nil {
		e.Alliances = snap.Alliances
	}
	if snap.Wars != nil {
		e.Wars = snap.Wars
	}
	if snap.Projects != nil {
		e.Projects = snap.Projects
	}
	if snap.Technologies != nil {
		e.Technologies = snap.Technologies
	}
	if snap.LastUpdate != nil {
		e.LastUpdate = *snap.LastUpdate
	}

	return e
}
