package empire

import (
	"fmt"
	"time"

	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// One offline turn accrues per elapsed minute, capped at a day's worth.
const (
	turnDuration    = time.Minute
	maxCatchUpTurns = 1440
)

// ElapsedTurns converts a wall-clock interval into whole game turns. Both
// timestamps come from the caller, never from an ambient clock, so catch-up
// is fully testable.
func ElapsedTurns(last, now time.Time) int {
	if !now.After(last) {
		return 0
	}
	turns := int(now.Sub(last) / turnDuration)
	if turns > maxCatchUpTurns {
		return maxCatchUpTurns
	}
	return turns
}

// CatchUp replays the standard turn resolution once per elapsed turn, then
// reports how much time was simulated. This is the same pipeline as live
// play, not an approximation: K idle turns and K live turns end in the same
// state.
func (e *Empire) CatchUp(now time.Time) int {
	turns := ElapsedTurns(e.LastUpdate, now)
	if turns > 0 {
		for i := 0; i < turns; i++ {
			e.AdvanceTurn()
		}
		e.Core.AddAlert(fmt.Sprintf("Processed %d turns while you were away", turns), sim.SeverityInfo)
	}
	e.LastUpdate = now
	return turns
}
