package empire

import (
	"fmt"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// Relation status values.
const (
	StatusNeutral = "neutral"
	StatusPeace   = "peace"
	StatusWar     = "war"
	StatusAllied  = "allied"
)

// Relation is the diplomatic state with one simulated opponent.
type Relation struct {
	Status            string  `json:"status"`
	Opinion           float64 `json:"opinion"`
	TradeAgreement    bool    `json:"trade_agreement"`
	NonAggressionPact bool    `json:"non_aggression_pact"`
	ResearchSharing   bool    `json:"research_sharing"`
}

// AllianceRecord marks a formed alliance.
type AllianceRecord struct {
	Ally       string `json:"ally"`
	FormedTurn int    `json:"formed_turn"`
}

// WarRecord marks an ongoing war.
type WarRecord struct {
	Opponent  string `json:"opponent"`
	StartTurn int    `json:"start_turn"`
}

// ProposeTreaty offers a treaty to an opponent. The opinion threshold is
// checked deterministically first; only then does the 70% acceptance roll
// run.
func (e *Empire) ProposeTreaty(opponentID, treatyType string) bool {
	treaty, ok := catalog.TreatyByKey(treatyType)
	if !ok {
		return false
	}

	relation := e.relation(opponentID)
	if relation.Opinion < treaty.OpinionReq {
		e.Core.AddAlert(fmt.Sprintf("Insufficient diplomatic relations for %s", treatyType), sim.SeverityWarning)
		return false
	}

	if e.rng.Float64() <= 0.3 {
		e.Core.AddAlert(fmt.Sprintf("%s treaty rejected", treatyType), sim.SeverityWarning)
		return false
	}

	switch treatyType {
	case catalog.TreatyPeace:
		relation.Status = StatusPeace
		e.endWarWith(opponentID)
	case catalog.TreatyTrade:
		relation.TradeAgreement = true
	case catalog.TreatyAlliance:
		relation.Status = StatusAllied
		e.Alliances = append(e.Alliances, AllianceRecord{Ally: opponentID, FormedTurn: e.Core.Turn})
	case catalog.TreatyNonAggression:
		relation.NonAggressionPact = true
	}

	e.Core.AddAlert(fmt.Sprintf("%s treaty accepted!", treatyType), sim.SeveritySuccess)
	return true
}

func (e *Empire) endWarWith(opponentID string) {
	for i, w := range e.Wars {
		if w.Opponent == opponentID {
			e.Wars = append(e.Wars[:i], e.Wars[i+1:]...)
			return
		}
	}
}

// SpyIntel is the report from a successful espionage mission.
type SpyIntel struct {
	Planets   int `json:"planets"`
	Military  int `json:"military"`
	Resources int `json:"resources"`
}

const spyCost = 5000

// SendSpy runs an espionage mission against an opponent. The fixed cost is
// paid regardless of outcome; a detected mission worsens relations.
func (e *Empire) SendSpy(targetID string) (*SpyIntel, bool) {
	if e.Core.Resources.Credits < spyCost {
		e.Core.AddAlert("Insufficient credits for espionage mission", sim.SeverityWarning)
		return nil, false
	}
	e.Core.Resources.Credits -= spyCost

	if e.rng.Float64() <= 0.4 {
		e.Core.AddAlert("Espionage mission failed and was detected!", sim.SeverityWarning)
		e.relation(targetID).Opinion -= 20
		return nil, false
	}

	intel := &SpyIntel{
		Planets:   e.rng.Intn(10) + 1,
		Military:  e.rng.Intn(50) + 10,
		Resources: e.rng.Intn(100000),
	}
	e.Core.AddAlert(fmt.Sprintf("Espionage successful! Target has %d planets, %d warships", intel.Planets, intel.Military), sim.SeveritySuccess)
	return intel, true
}
