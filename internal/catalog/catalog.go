// Package catalog holds the static game data: planet templates, facility
// kinds, terraforming stages, starship kinds, defense structures,
// mega-projects, treaties, and the tech tree. Everything here is loaded once
// and never mutated; the resolution code in internal/sim and internal/empire
// operates on these tables.
package catalog

// Stat identifies one planetary environment measurement.
type Stat string

const (
	StatTemperature Stat = "temperature"
	StatOxygen      Stat = "oxygen"
	StatCO2         Stat = "co2"
	StatWater       Stat = "water"
	StatHumidity    Stat = "humidity"
	StatSoil        Stat = "soil"
	StatPollution   Stat = "pollution"
)

// Stats lists every environment stat in display order.
var Stats = []Stat{
	StatTemperature, StatOxygen, StatCO2, StatWater,
	StatHumidity, StatSoil, StatPollution,
}

// AtMost reports whether a stage requirement on this stat is an upper bound.
// CO2 and pollution must stay below their thresholds; everything else must
// reach them.
func (s Stat) AtMost() bool {
	return s == StatCO2 || s == StatPollution
}

// EffectKind tags a facility delta with its target aggregate.
type EffectKind int

const (
	// EffectEnvironment applies to a stat on the planet state.
	EffectEnvironment EffectKind = iota
	// EffectPopulation applies to the colony's population pool.
	EffectPopulation
)

// Effect is one per-turn delta contributed by a facility. The Kind tag
// decides whether Stat is meaningful.
type Effect struct {
	Kind   EffectKind
	Stat   Stat
	Amount float64
}

// Env builds an environment effect.
func Env(stat Stat, amount float64) Effect {
	return Effect{Kind: EffectEnvironment, Stat: stat, Amount: amount}
}

// Pop builds a population effect.
func Pop(amount float64) Effect {
	return Effect{Kind: EffectPopulation, Amount: amount}
}
