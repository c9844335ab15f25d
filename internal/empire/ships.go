package empire

import (
	"fmt"
	"math"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// Ship is one vessel in the fleet. Travel is logical: a traveling ship is
// state plus an arrival turn, resolved by polling at each turn boundary.
// There is no cancellation once underway.
type Ship struct {
	ID          string             `json:"id"`
	Kind        string             `json:"kind"`
	Name        string             `json:"name"`
	Location    string             `json:"location"`
	Destination string             `json:"destination,omitempty"`
	Traveling   bool               `json:"traveling"`
	ArrivalTurn int                `json:"arrival_turn"`
	Health      float64            `json:"health"`
	Cargo       map[string]float64 `json:"cargo"`
	Level       int                `json:"level"`
}

// ShipyardOrder is a ship under construction.
type ShipyardOrder struct {
	Kind           string `json:"kind"`
	CompletionTurn int    `json:"completion_turn"`
}

// CanBuildShip checks unlock requirements and affordability without
// mutating anything.
func (e *Empire) CanBuildShip(kind string) bool {
	k, ok := catalog.ShipByKey(kind)
	if !ok {
		return false
	}
	if e.Core.Resources.Population < k.MinPopulation {
		return false
	}
	if len(e.Colonies) < k.MinPlanets {
		return false
	}
	res := e.Core.Resources
	return res.Credits >= k.Cost.Credits && res.Metals >= k.Cost.Metals && res.Energy >= k.Cost.Energy
}

// BuildShip debits the full cost and enqueues construction. Orders are
// uncancellable and complete in queue order.
func (e *Empire) BuildShip(kind string) bool {
	if !e.CanBuildShip(kind) {
		e.Core.AddAlert("Cannot build ship: requirements not met", sim.SeverityWarning)
		return false
	}

	k, _ := catalog.ShipByKey(kind)
	e.Core.Resources.Credits -= k.Cost.Credits
	e.Core.Resources.Metals -= k.Cost.Metals
	e.Core.Resources.Energy -= k.Cost.Energy

	e.Shipyard = append(e.Shipyard, ShipyardOrder{
		Kind:           kind,
		CompletionTurn: e.Core.Turn + k.BuildTime,
	})

	e.Core.AddAlert(fmt.Sprintf("Started construction of %s", k.Name), sim.SeveritySuccess)
	return true
}

// processShipyard launches every order whose completion turn has arrived.
// New ships start docked at the home system at full health.
func (e *Empire) processShipyard() {
	remaining := e.Shipyard[:0]
	for _, order := range e.Shipyard {
		if e.Core.Turn < order.CompletionTurn {
			remaining = append(remaining, order)
			continue
		}
		k, ok := catalog.ShipByKey(order.Kind)
		if !ok {
			continue
		}
		e.Ships = append(e.Ships, &Ship{
			ID:       e.newID("ship"),
			Kind:     k.Key,
			Name:     k.Name,
			Location: e.Galaxy.Systems[0].ID,
			Health:   100,
			Cargo:    make(map[string]float64),
			Level:    1,
		})
		e.Core.AddAlert(fmt.Sprintf("%s construction completed!", k.Name), sim.SeveritySuccess)
	}
	e.Shipyard = remaining
}

// ExploreSystem sends a ship toward a system. Travel time is the Euclidean
// grid distance over a tenth of the ship's speed, rounded up. Departure
// carries a 10% chance of a random exploration event.
func (e *Empire) ExploreSystem(shipID, systemID string) bool {
	ship := e.shipByID(shipID)
	target := e.systemByID(systemID)
	if ship == nil || target == nil {
		e.Core.AddAlert("Invalid ship or system", sim.SeverityWarning)
		return false
	}
	if ship.Traveling {
		e.Core.AddAlert("Ship is already traveling", sim.SeverityWarning)
		return false
	}

	current := e.systemByID(ship.Location)
	if current == nil {
		e.Core.AddAlert("Invalid ship or system", sim.SeverityWarning)
		return false
	}

	// A restored save can carry a ship of a kind this build no longer
	// knows; with no speed to divide by, it cannot be sent anywhere.
	kind, ok := catalog.ShipByKey(ship.Kind)
	if !ok {
		e.Core.AddAlert("Unknown ship class", sim.SeverityWarning)
		return false
	}

	distance := math.Hypot(float64(target.X-current.X), float64(target.Y-current.Y))
	travelTime := int(math.Ceil(distance / (kind.Speed / 10)))

	ship.Destination = systemID
	ship.Traveling = true
	ship.ArrivalTurn = e.Core.Turn + travelTime

	e.Core.AddAlert(fmt.Sprintf("%s traveling to %s (%d turns)", ship.Name, target.Name, travelTime), sim.SeverityInfo)

	if e.rng.Float64() < 0.1 {
		e.triggerExplorationEvent(ship)
	}

	return true
}

func (e *Empire) triggerExplorationEvent(ship *Ship) {
	event := catalog.ExplorationEvents[e.rng.Intn(len(catalog.ExplorationEvents))]

	severity := sim.SeveritySuccess
	if event.HealthLoss > 0 {
		severity = sim.SeverityWarning
	}
	e.Core.AddAlert(event.Message, severity)

	if event.HealthLoss > 0 {
		ship.Health = math.Max(0, ship.Health-event.HealthLoss)
	}
	e.Core.Resources.Credits += event.Credits
	e.Core.Resources.RareResources += event.Rare
	e.Core.Resources.Metals += event.Metals
}

// processShipMovement lands every ship whose arrival turn has come.
// Arriving at an undiscovered system marks it discovered and awards
// prestige.
func (e *Empire) processShipMovement() {
	for _, ship := range e.Ships {
		if !ship.Traveling || e.Core.Turn < ship.ArrivalTurn {
			continue
		}
		ship.Location = ship.Destination
		ship.Traveling = false
		ship.Destination = ""

		system := e.systemByID(ship.Location)
		if system == nil || system.Discovered {
			continue
		}
		system.Discovered = true
		e.Explored = append(e.Explored, system.ID)
		e.Core.Resources.Prestige += 100
		e.Core.AddAlert(fmt.Sprintf("New system discovered: %s! +100 Prestige", system.Name), sim.SeveritySuccess)
	}
}

// ColonizePlanet establishes a colony. The colony ship is consumed; the new
// colony gets an independent copy of the planet's stats, a zeroed facility
// inventory, and a fixed starting resource pool seeded with the ship's
// colonists.
func (e *Empire) ColonizePlanet(shipID, systemID, planetID string) bool {
	ship := e.shipByID(shipID)
	if ship == nil || ship.Kind != catalog.ShipColony {
		e.Core.AddAlert("Need a Colony Ship to colonize planets", sim.SeverityWarning)
		return false
	}

	system := e.systemByID(systemID)
	if system == nil || ship.Location != systemID {
		e.Core.AddAlert("Ship must be at target system", sim.SeverityWarning)
		return false
	}

	planet := e.Galaxy.planetByID(systemID, planetID)
	if planet == nil || planet.Colonized {
		e.Core.AddAlert("Planet is already colonized or does not exist", sim.SeverityWarning)
		return false
	}

	planet.Colonized = true
	planet.Owner = e.PlayerID

	kind, _ := catalog.ShipByKey(ship.Kind)
	colonists := kind.Colonists
	if colonists == 0 {
		colonists = 100
	}

	e.Colonies = append(e.Colonies, &Colony{
		SystemID:   systemID,
		PlanetID:   planetID,
		Planet:     planet.Stats,
		Facilities: zeroFacilities(),
		Resources: sim.ResourcePool{
			Credits:    1000,
			Energy:     100,
			Population: colonists,
			Metals:     500,
		},
	})

	e.removeShip(shipID)
	e.Core.Resources.Prestige += 500
	e.Core.AddAlert(fmt.Sprintf("Planet colonized: %s in %s! +500 Prestige", planet.Name, system.Name), sim.SeveritySuccess)
	return true
}

func (e *Empire) removeShip(id string) {
	for i, s := range e.Ships {
		if s.ID == id {
			e.Ships = append(e.Ships[:i], e.Ships[i+1:]...)
			return
		}
	}
}
