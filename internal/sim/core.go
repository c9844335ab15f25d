// Package sim is the planetary simulation core: one planet's environment,
// economy, facility inventory, stage progression, and collapse detection,
// advanced one deterministic turn at a time.
package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
)

// Facilities produce on top of this base energy output every turn.
const baseEnergyProduction = 100

// Starting resources for a freshly reset planet.
const (
	startingCredits = 5000
	startingEnergy  = 200
)

// Sim is one planet's simulation state. It is an explicit value: callers
// construct it, feed commands into it, and read snapshots out of it. All
// randomness flows through the injected generator so runs are reproducible.
type Sim struct {
	Planet     PlanetState    `json:"planet"`
	Resources  ResourcePool   `json:"resources"`
	Facilities map[string]int `json:"facilities"`
	PlanetType string         `json:"planet_type"`
	PlanetName string         `json:"planet_name"`
	Turn       int            `json:"turn"`
	// Stage caches the last computed stage for change detection only;
	// ComputeStage is the source of truth.
	Stage     int      `json:"stage"`
	Collapsed bool     `json:"collapsed"`
	Alerts    AlertLog `json:"alerts"`

	rng *rand.Rand
}

// New creates a simulation with a random starting planet type.
func New(rng *rand.Rand) *Sim {
	s := &Sim{rng: rng}
	s.ResetPlanet()
	return s
}

// ResetPlanet wipes all progress and starts over on a new planet. The first
// reset picks a random type; later resets cycle through the type list so a
// player sees every template.
func (s *Sim) ResetPlanet() {
	var tpl catalog.PlanetTemplate
	if s.PlanetType == "" {
		tpl = catalog.PlanetTypes[s.rng.Intn(len(catalog.PlanetTypes))]
	} else {
		next := (catalog.PlanetTypeIndex(s.PlanetType) + 1) % len(catalog.PlanetTypes)
		tpl = catalog.PlanetTypes[next]
	}
	s.resetTo(tpl)
}

// ResetPlanetTo resets onto a specific planet type. Unknown keys leave the
// simulation untouched.
func (s *Sim) ResetPlanetTo(key string) bool {
	tpl, ok := catalog.PlanetTypeByKey(key)
	if !ok {
		return false
	}
	s.resetTo(tpl)
	return true
}

func (s *Sim) resetTo(tpl catalog.PlanetTemplate) {
	s.PlanetType = tpl.Key
	s.PlanetName = tpl.Name + " Prime"
	s.Planet = NewPlanetState(tpl)
	s.Resources = ResourcePool{Credits: startingCredits, Energy: startingEnergy}
	s.Facilities = make(map[string]int, len(catalog.Facilities))
	for _, f := range catalog.Facilities {
		s.Facilities[f.Key] = 0
	}
	s.Turn = 0
	s.Stage = 0
	s.Alerts = nil
	s.Collapsed = false
}

// ChangePlanetType resets onto the next planet type and announces it.
func (s *Sim) ChangePlanetType() {
	s.ResetPlanet()
	s.AddAlert(fmt.Sprintf("New planet discovered: %s!", s.PlanetName), SeverityInfo)
}

// AddAlert records a user-facing message for the current turn.
func (s *Sim) AddAlert(message string, severity Severity) {
	s.Alerts.Push(Alert{Message: message, Severity: severity, Turn: s.Turn})
}

// ComputeStage walks the stage ladder in order and returns the index of the
// last stage whose requirements hold. It never consults the cached Stage
// field: environmental regression can drop the computed stage below a
// previously reached one.
func (s *Sim) ComputeStage() int {
	stage := 0
	for i := range catalog.Stages {
		if !s.stageMet(catalog.Stages[i]) {
			break
		}
		stage = i
	}
	return stage
}

func (s *Sim) stageMet(st catalog.Stage) bool {
	for stat, threshold := range st.Requirements {
		v := s.Planet.Value(stat)
		if stat.AtMost() {
			if v > threshold {
				return false
			}
		} else if v < threshold {
			return false
		}
	}
	return true
}

// IsFacilityUnlocked reports whether a facility is available at the current
// stage. The unlock stage on the facility and its appearance in a stage's
// unlock list are independently authored, so both are checked.
func (s *Sim) IsFacilityUnlocked(key string) bool {
	f, ok := catalog.FacilityByKey(key)
	if !ok {
		return false
	}
	current := s.ComputeStage()
	if current < f.UnlockStage {
		return false
	}
	for i := 0; i <= current; i++ {
		for _, unlocked := range catalog.Stages[i].Unlocks {
			if unlocked == key {
				return true
			}
		}
	}
	return false
}

// CanAfford reports whether the purchase cost is covered.
func (s *Sim) CanAfford(key string) bool {
	f, ok := catalog.FacilityByKey(key)
	if !ok {
		return false
	}
	return s.Resources.Credits >= f.Cost.Credits && s.Resources.Energy >= f.Cost.Energy
}

// MeetsRequirements reports whether the planet satisfies the facility's
// minimum stat levels.
func (s *Sim) MeetsRequirements(key string) bool {
	f, ok := catalog.FacilityByKey(key)
	if !ok {
		return false
	}
	for stat, min := range f.Requirements {
		if s.Planet.Value(stat) < min {
			return false
		}
	}
	return true
}

// IsPlanetSuitable reports whether the facility is intended for this planet
// type. Suitability is advisory; it never blocks a purchase.
func (s *Sim) IsPlanetSuitable(key string) bool {
	f, ok := catalog.FacilityByKey(key)
	if !ok {
		return false
	}
	for _, t := range f.Suitability {
		if t == catalog.SuitabilityAll || t == s.PlanetType {
			return true
		}
	}
	return len(f.Suitability) == 0
}

// PurchaseFacility buys exactly one facility of the given kind. Failures
// leave all state untouched and emit an alert; purchases are never
// refundable.
func (s *Sim) PurchaseFacility(key string) bool {
	f, ok := catalog.FacilityByKey(key)
	if !ok {
		s.AddAlert("Unknown facility type!", SeverityWarning)
		return false
	}
	if !s.CanAfford(key) {
		s.AddAlert("Not enough resources to build this facility!", SeverityWarning)
		return false
	}
	if !s.MeetsRequirements(key) {
		s.AddAlert("Planet conditions do not meet requirements for this facility!", SeverityWarning)
		return false
	}

	s.Resources.Credits -= f.Cost.Credits
	s.Resources.Energy -= f.Cost.Energy
	s.Facilities[key]++

	s.AddAlert(fmt.Sprintf("Built %s!", f.Name), SeveritySuccess)
	return true
}

// AdvanceTurn resolves one game turn: facility effects, natural drift,
// clamping, shortage penalties, collapse detection, income, and stage
// progression, in that fixed order. A collapsed planet only repeats its
// collapse alert.
func (s *Sim) AdvanceTurn() {
	if s.Collapsed {
		s.AddAlert("Planet has collapsed! Reset to continue.", SeverityDanger)
		return
	}

	s.Turn++
	s.Alerts.Clear()

	production := float64(baseEnergyProduction)
	consumption := 0.0

	for _, f := range catalog.Facilities {
		count := s.Facilities[f.Key]
		if count == 0 {
			continue
		}
		for _, eff := range f.Effects {
			switch eff.Kind {
			case catalog.EffectEnvironment:
				s.Planet.Apply(eff.Stat, eff.Amount*float64(count))
			case catalog.EffectPopulation:
				s.Resources.Population += eff.Amount * float64(count)
			}
		}
		if f.EnergyConsumption < 0 {
			production += -f.EnergyConsumption * float64(count)
		} else {
			consumption += f.EnergyConsumption * float64(count)
		}
	}

	s.Resources.Energy += production - consumption

	s.applyNaturalDrift()
	s.Planet.Clamp()
	s.Resources.Clamp()
	s.checkShortages()
	s.checkCollapse()

	// Income and stage progression still run on the turn that collapses;
	// collapse only blocks future turns.
	s.Resources.Credits += math.Floor(s.Resources.Population * 0.5)

	newStage := s.ComputeStage()
	if newStage > s.Stage {
		s.Stage = newStage
		s.AddAlert(fmt.Sprintf("Advanced to %s!", catalog.Stages[newStage].Name), SeveritySuccess)
		if newStage == catalog.FinalStage() {
			s.AddAlert("VICTORY! You have created a thriving, self-sustaining colony!", SeveritySuccess)
		}
	}
}

// applyNaturalDrift is the planet's passive behavior each turn. The rules
// read and write disjoint stats under normal ranges, so their order does
// not change the result.
func (s *Sim) applyNaturalDrift() {
	// Temperature drifts toward the [10,20] band.
	if s.Planet.Temperature > 20 {
		s.Planet.Temperature -= 0.5
	} else if s.Planet.Temperature < 10 {
		s.Planet.Temperature += 0.5
	}

	// Atmospheric O2/CO2 exchange.
	if s.Planet.Oxygen > 20 && s.Planet.CO2 > 30 {
		s.Planet.Oxygen -= 0.2
		s.Planet.CO2 += 0.2
	}

	// Evaporation on hot planets, condensation loss on frozen ones.
	if s.Planet.Temperature > 30 && s.Planet.Water > 20 {
		s.Planet.Water -= 0.5
		s.Planet.Humidity += 0.5
	} else if s.Planet.Temperature < 0 && s.Planet.Humidity > 10 {
		s.Planet.Humidity -= 0.5
	}

	// Soil degrades without enrichment.
	if s.Planet.Soil > 30 && s.Facilities[catalog.FacilitySoilEnricher] == 0 {
		s.Planet.Soil -= 0.3
	}

	// Pollution decays very slowly on its own.
	if s.Planet.Pollution > 0 {
		s.Planet.Pollution -= 0.1
	}
}

// checkShortages applies non-fatal penalties. These run after clamping, so
// the penalties themselves can push stats slightly out of range until the
// next turn's clamp.
func (s *Sim) checkShortages() {
	if s.Resources.Energy < 50 {
		s.AddAlert("Energy shortage! Build more solar arrays.", SeverityWarning)
	}
	if s.Resources.Energy <= 0 {
		s.AddAlert("CRITICAL: No energy! Facilities shutting down!", SeverityDanger)
		s.Planet.Oxygen -= 1
		s.Planet.Water -= 1
	}
	if s.Resources.Credits < 500 {
		s.AddAlert("Low on credits! Population generates income.", SeverityWarning)
	}
	if s.Planet.Water < 20 && s.Resources.Population > 0 {
		s.AddAlert("Water shortage affecting population!", SeverityWarning)
		s.Resources.Population = math.Max(0, s.Resources.Population-10)
	}
	if s.Planet.Oxygen < 30 && s.Resources.Population > 100 {
		s.AddAlert("Oxygen levels too low for large population!", SeverityWarning)
		s.Resources.Population = math.Max(0, s.Resources.Population-5)
	}
}

// checkCollapse evaluates every collapse condition and reports all that
// hold. Collapse is one-way; only ResetPlanet clears it.
func (s *Sim) checkCollapse() {
	var reasons []string

	if s.Planet.Temperature < -50 {
		reasons = append(reasons, "Extreme cold has frozen all water systems")
	}
	if s.Planet.Temperature > 100 {
		reasons = append(reasons, "Extreme heat has evaporated all surface water")
	}
	if s.Planet.CO2 > 95 {
		reasons = append(reasons, "Toxic CO2 levels have poisoned the atmosphere")
	}
	if s.Planet.Oxygen < 5 && s.Resources.Population > 0 {
		reasons = append(reasons, "Oxygen depletion has made the planet unlivable")
	}
	if s.Planet.Water < 5 && s.Resources.Population > 50 {
		reasons = append(reasons, "Complete water depletion has ended colonization")
	}
	if s.Planet.Soil < 5 && s.Facilities[catalog.FacilityGreenhouse] > 0 {
		reasons = append(reasons, "Soil depletion has destroyed all agriculture")
	}
	if s.Planet.Pollution > 90 {
		reasons = append(reasons, "Extreme pollution has made the planet toxic")
	}

	if len(reasons) == 0 {
		return
	}

	s.Collapsed = true
	s.AddAlert("ENVIRONMENTAL COLLAPSE!", SeverityDanger)
	for _, reason := range reasons {
		s.AddAlert("- "+reason, SeverityDanger)
	}
	s.AddAlert("Reset the planet to try again.", SeverityDanger)
}

// StageName returns the display name of the current computed stage.
func (s *Sim) StageName() string {
	return catalog.Stages[s.ComputeStage()].Name
}
