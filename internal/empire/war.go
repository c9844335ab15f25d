package empire

import (
	"fmt"
	"math"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// Invasion cost, paid whether or not the attack succeeds.
const (
	invasionCreditCost = 10000
	invasionMetalCost  = 5000
)

// Undefended planets still resist with this baseline.
const defaultDefensePower = 10

// CanInvade reports whether the empire is large enough to wage war. The
// two-planet floor keeps a fresh empire from snowballing off conquest.
func (e *Empire) CanInvade() bool {
	return len(e.Colonies) >= 2
}

// LaunchInvasion attacks a colonized planet. Attack power is the summed
// combat power of every idle warship; the defender wins ties and narrow
// margins (attacker needs a 20% advantage). Losses hit the fleet whether
// the invasion succeeds (30%) or fails (50%).
func (e *Empire) LaunchInvasion(targetPlayerID, systemID, planetID string) bool {
	if !e.CanInvade() {
		e.Core.AddAlert("Must colonize at least 2 planets before invading others!", sim.SeverityWarning)
		return false
	}

	relation := e.relation(targetPlayerID)
	if relation.NonAggressionPact {
		e.Core.AddAlert("Cannot invade: Non-Aggression Pact is active", sim.SeverityWarning)
		return false
	}

	var warships []*Ship
	for _, s := range e.Ships {
		if s.Kind == catalog.ShipWarship && !s.Traveling {
			warships = append(warships, s)
		}
	}
	if len(warships) == 0 {
		e.Core.AddAlert("No warships available for invasion", sim.SeverityWarning)
		return false
	}

	system := e.systemByID(systemID)
	if system == nil {
		return false
	}
	planet := e.Galaxy.planetByID(systemID, planetID)
	if planet == nil || !planet.Colonized {
		e.Core.AddAlert("Invalid invasion target", sim.SeverityWarning)
		return false
	}

	attackPower := 0.0
	for _, s := range warships {
		kind, _ := catalog.ShipByKey(s.Kind)
		attackPower += kind.CombatPower
	}
	defensePower := planet.DefenseLevel
	if defensePower == 0 {
		defensePower = defaultDefensePower
	}

	// The fleet is committed either way.
	e.Core.Resources.Credits -= invasionCreditCost
	e.Core.Resources.Metals -= invasionMetalCost

	if attackPower > defensePower*1.2 {
		lost := e.loseWarships(int(math.Floor(float64(len(warships)) * 0.3)))
		planet.Owner = e.PlayerID
		e.Core.Resources.Prestige += 1000
		e.Core.AddAlert(fmt.Sprintf("INVASION SUCCESSFUL! %s captured! Lost %d warships", planet.Name, lost), sim.SeveritySuccess)

		if relation.Status != StatusWar {
			relation.Status = StatusWar
			e.Wars = append(e.Wars, WarRecord{Opponent: targetPlayerID, StartTurn: e.Core.Turn})
		}
		return true
	}

	lost := e.loseWarships(int(math.Floor(float64(len(warships)) * 0.5)))
	e.Core.AddAlert(fmt.Sprintf("INVASION FAILED! Lost %d warships", lost), sim.SeverityDanger)
	return false
}

// loseWarships removes up to n warships from the fleet in list order and
// returns how many were removed.
func (e *Empire) loseWarships(n int) int {
	lost := 0
	for lost < n {
		idx := -1
		for i, s := range e.Ships {
			if s.Kind == catalog.ShipWarship {
				idx = i
				break
			}
		}
		if idx == -1 {
			break
		}
		e.Ships = append(e.Ships[:idx], e.Ships[idx+1:]...)
		lost++
	}
	return lost
}

// BuildDefense raises a colony's defense level with a one-time purchase.
func (e *Empire) BuildDefense(planetIndex int, defenseType string) bool {
	if planetIndex < 0 || planetIndex >= len(e.Colonies) {
		return false
	}

	defense, ok := catalog.DefenseByKey(defenseType)
	if !ok || e.Core.Resources.Credits < defense.Credits {
		e.Core.AddAlert("Cannot build defense structure", sim.SeverityWarning)
		return false
	}

	e.Core.Resources.Credits -= defense.Credits
	e.Colonies[planetIndex].DefenseLevel += defense.Bonus

	e.Core.AddAlert(fmt.Sprintf("Defense structure built: +%g defense", defense.Bonus), sim.SeveritySuccess)
	return true
}
