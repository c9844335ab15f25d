// Package empire layers fleets, exploration, colonization, diplomacy,
// warfare, trade, mega-projects, and idle catch-up on top of the planetary
// simulation core. The empire owns the galaxy, all ships and relations; each
// colonized planet owns an independent copy of its planet state, facility
// inventory, and resource pool.
package empire

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// Colony is one owned planet's independent simulation state.
type Colony struct {
	SystemID     string           `json:"system_id"`
	PlanetID     string           `json:"planet_id"`
	Planet       sim.PlanetState  `json:"planet"`
	Facilities   map[string]int   `json:"facilities"`
	Resources    sim.ResourcePool `json:"resources"`
	DefenseLevel float64          `json:"defense_level"`
}

// Empire is the full game state for one player. Construction takes a seed;
// every random outcome (galaxy layout, exploration events, treaty rolls,
// espionage) flows through the derived generator so identical seeds replay
// identically.
type Empire struct {
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Seed       int64     `json:"seed"`
	Core       *sim.Sim  `json:"core"`
	Galaxy     *Galaxy   `json:"galaxy"`
	Colonies   []*Colony `json:"colonies"`
	Explored   []string  `json:"explored"`

	Ships    []*Ship         `json:"ships"`
	Shipyard []ShipyardOrder `json:"shipyard"`

	Relations   map[string]*Relation `json:"relations"`
	TradeRoutes []TradeRoute         `json:"trade_routes"`
	Alliances   []AllianceRecord     `json:"alliances"`
	Wars        []WarRecord          `json:"wars"`

	Projects     []MegaProjectOrder `json:"projects"`
	Technologies map[string]bool    `json:"technologies"`

	// LastUpdate is the wall-clock anchor for idle catch-up. It is only
	// ever set from timestamps handed in by the caller.
	LastUpdate time.Time `json:"last_update"`

	rng *rand.Rand
}

// Starting resources of the empire layer beyond the core's.
const startingMetals = 1000

// New creates a fresh empire with a generated galaxy and the home planet
// colonized.
func New(playerID, playerName string, seed int64) *Empire {
	rng := rand.New(rand.NewSource(seed))
	e := &Empire{
		PlayerID:     playerID,
		PlayerName:   playerName,
		Seed:         seed,
		Core:         sim.New(rng),
		Relations:    make(map[string]*Relation),
		Technologies: make(map[string]bool, len(catalog.Techs)),
		rng:          rng,
	}
	for _, tech := range catalog.Techs {
		e.Technologies[tech.Key] = false
	}

	e.Core.Resources.Metals = startingMetals
	e.Galaxy = generateGalaxy(rng)

	home := e.Galaxy.Systems[0]
	if len(home.Planets) > 0 {
		homePlanet := home.Planets[0]
		homePlanet.Colonized = true
		homePlanet.Owner = playerID
		e.Colonies = append(e.Colonies, &Colony{
			SystemID:   home.ID,
			PlanetID:   homePlanet.ID,
			Planet:     e.Core.Planet,
			Facilities: zeroFacilities(),
			Resources:  e.Core.Resources,
		})
	}

	return e
}

// AdvanceTurn resolves one empire turn: the core's turn for the home
// planet, then shipyard, ship movement, colony production, trade routes and
// mega-projects, then metals and prestige accrual. Idle catch-up replays
// this exact function, so idle and live play resolve identically.
func (e *Empire) AdvanceTurn() {
	e.Core.AdvanceTurn()

	e.processShipyard()
	e.processShipMovement()
	e.processColonies()
	e.processTradeRoutes()
	e.processMegaProjects()

	e.Core.Resources.Metals += math.Floor(e.Core.Resources.Population * 0.1)
	e.Core.Resources.Prestige += float64(len(e.Colonies)) * 10
}

// processColonies runs each owned planet's production: facility effects,
// clamping, and credit/metal income from population.
func (e *Empire) processColonies() {
	for _, c := range e.Colonies {
		for _, f := range catalog.Facilities {
			count := c.Facilities[f.Key]
			if count == 0 {
				continue
			}
			for _, eff := range f.Effects {
				switch eff.Kind {
				case catalog.EffectEnvironment:
					c.Planet.Apply(eff.Stat, eff.Amount*float64(count))
				case catalog.EffectPopulation:
					c.Resources.Population += eff.Amount * float64(count)
				}
			}
		}
		c.Planet.Clamp()
		c.Resources.Credits += math.Floor(c.Resources.Population * 0.5)
		c.Resources.Metals += math.Floor(c.Resources.Population * 0.1)
	}
}

// ResetHomePlanet starts the home planet over after a collapse or by
// choice. Planet-level progress is wiped; empire-level holdings (metals,
// rare resources, prestige) survive the reset. The home colony entry gets
// a fresh copy of the new state.
func (e *Empire) ResetHomePlanet() {
	metals := e.Core.Resources.Metals
	rare := e.Core.Resources.RareResources
	prestige := e.Core.Resources.Prestige

	e.Core.ResetPlanet()

	e.Core.Resources.Metals = metals
	e.Core.Resources.RareResources = rare
	e.Core.Resources.Prestige = prestige
	e.refreshHomeColony()
}

// ChangeHomePlanetType is ResetHomePlanet with the discovery announcement.
func (e *Empire) ChangeHomePlanetType() {
	e.ResetHomePlanet()
	e.Core.AddAlert("New planet discovered: "+e.Core.PlanetName+"!", sim.SeverityInfo)
}

func (e *Empire) refreshHomeColony() {
	if len(e.Colonies) == 0 {
		return
	}
	home := e.Colonies[0]
	home.Planet = e.Core.Planet
	home.Resources = e.Core.Resources
	home.Facilities = zeroFacilities()
	home.DefenseLevel = 0
}

// PrestigeRank returns the display rank for the current prestige score.
func (e *Empire) PrestigeRank() string {
	return catalog.RankForPrestige(e.Core.Resources.Prestige)
}

// relation returns the diplomatic relation with an opponent, lazily
// initialized to neutral.
func (e *Empire) relation(opponentID string) *Relation {
	r, ok := e.Relations[opponentID]
	if !ok {
		r = &Relation{Status: StatusNeutral}
		e.Relations[opponentID] = r
	}
	return r
}

func (e *Empire) shipByID(id string) *Ship {
	for _, s := range e.Ships {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (e *Empire) systemByID(id string) *System {
	for _, s := range e.Galaxy.Systems {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func zeroFacilities() map[string]int {
	m := make(map[string]int, len(catalog.Facilities))
	for _, f := range catalog.Facilities {
		m[f.Key] = 0
	}
	return m
}

// newID derives an entity ID from the empire's generator so replays from
// the same seed produce the same IDs.
func (e *Empire) newID(prefix string) string {
	return prefix + "_" + strconv.FormatInt(e.rng.Int63n(1<<45), 36)
}
