package sim

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
)

func newTestSim(t *testing.T, planetType string) *Sim {
	t.Helper()
	s := New(rand.New(rand.NewSource(1)))
	if !s.ResetPlanetTo(planetType) {
		t.Fatalf("unknown planet type %q", planetType)
	}
	return s
}

func TestResetPlanetStartingState(t *testing.T) {
	s := newTestSim(t, catalog.PlanetCold)

	if s.Resources.Credits != 5000 || s.Resources.Energy != 200 || s.Resources.Population != 0 {
		t.Errorf("starting resources = %+v", s.Resources)
	}
	if s.Planet.Temperature != -80 || s.Planet.Oxygen != 5 || s.Planet.CO2 != 95 {
		t.Errorf("cold template not applied: %+v", s.Planet)
	}
	if s.Turn != 0 || s.Collapsed || len(s.Alerts) != 0 {
		t.Errorf("reset left turn=%d collapsed=%v alerts=%d", s.Turn, s.Collapsed, len(s.Alerts))
	}
	for _, f := range catalog.Facilities {
		if s.Facilities[f.Key] != 0 {
			t.Errorf("facility %s not zeroed", f.Key)
		}
	}
}

func TestResetPlanetCyclesTypes(t *testing.T) {
	s := newTestSim(t, catalog.PlanetCold)
	seen := []string{s.PlanetType}
	for i := 0; i < len(catalog.PlanetTypes); i++ {
		s.ResetPlanet()
		seen = append(seen, s.PlanetType)
	}
	if seen[len(seen)-1] != seen[0] {
		t.Errorf("cycle did not wrap: %v", seen)
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] == seen[i-1] {
			t.Errorf("consecutive resets produced same type: %v", seen)
		}
	}
}

func TestPurchaseFacilityDebitsExactCost(t *testing.T) {
	s := newTestSim(t, catalog.PlanetCold)

	if !s.PurchaseFacility("heatingFacility") {
		t.Fatal("purchase should succeed")
	}
	if s.Resources.Credits != 4000 || s.Resources.Energy != 150 {
		t.Errorf("resources after purchase = %+v", s.Resources)
	}
	if s.Facilities["heatingFacility"] != 1 {
		t.Errorf("facility count = %d, want 1", s.Facilities["heatingFacility"])
	}
}

func TestPurchaseFacilityFailureLeavesStateUntouched(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		setup func(*Sim)
	}{
		{"unaffordable", "habitatDome", func(s *Sim) { s.Resources.Credits = 0 }},
		{"requirements unmet", "greenhouse", func(s *Sim) { s.Resources.Credits = 100000; s.Resources.Energy = 10000 }},
		{"unknown kind", "orbitalLaser", func(s *Sim) {}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(t, catalog.PlanetCold)
			tc.setup(s)

			beforeRes := s.Resources
			beforeFac := make(map[string]int, len(s.Facilities))
			for k, v := range s.Facilities {
				beforeFac[k] = v
			}

			if s.PurchaseFacility(tc.key) {
				t.Fatal("purchase should fail")
			}
			if s.Resources != beforeRes {
				t.Errorf("resources changed: %+v -> %+v", beforeRes, s.Resources)
			}
			if !reflect.DeepEqual(beforeFac, s.Facilities) {
				t.Errorf("facilities changed: %v -> %v", beforeFac, s.Facilities)
			}
			if len(s.Alerts) == 0 {
				t.Error("failed purchase should emit an alert")
			}
		})
	}
}

// Scenario from the cold-planet walkthrough: one heating facility, one
// turn. Heating adds +5 temperature, drift adds +0.5 toward the habitable
// band; pollution gains 2 and decays 0.1.
func TestAdvanceTurnColdPlanetHeatingScenario(t *testing.T) {
	s := newTestSim(t, catalog.PlanetCold)
	if !s.PurchaseFacility("heatingFacility") {
		t.Fatal("purchase failed")
	}

	s.AdvanceTurn()

	if math.Abs(s.Planet.Temperature-(-74.5)) > 1e-9 {
		t.Errorf("temperature = %v, want -74.5", s.Planet.Temperature)
	}
	if math.Abs(s.Planet.Pollution-1.9) > 1e-9 {
		t.Errorf("pollution = %v, want 1.9", s.Planet.Pollution)
	}
	// Oxygen 5 is below the exchange threshold, so O2/CO2 stay put.
	if s.Planet.Oxygen != 5 {
		t.Errorf("oxygen = %v, want 5", s.Planet.Oxygen)
	}
	if s.Planet.CO2 != 95 {
		t.Errorf("co2 = %v, want 95", s.Planet.CO2)
	}
	// Energy: 150 after purchase, +100 base, -20 heating upkeep.
	if s.Resources.Energy != 230 {
		t.Errorf("energy = %v, want 230", s.Resources.Energy)
	}
	if s.Turn != 1 {
		t.Errorf("turn = %d, want 1", s.Turn)
	}
}

func TestAdvanceTurnClampsAllStats(t *testing.T) {
	s := newTestSim(t, catalog.PlanetBarren)
	s.Planet = PlanetState{
		Temperature: 500, Oxygen: -40, CO2: 180, Water: -3,
		Humidity: 250, Soil: -1, Pollution: 40,
	}
	s.Resources.Energy = 1000 // avoid the shortage penalty nudging stats

	s.AdvanceTurn()

	p := s.Planet
	if p.Temperature < MinTemperature || p.Temperature > MaxTemperature {
		t.Errorf("temperature out of range: %v", p.Temperature)
	}
	for _, v := range []float64{p.Oxygen, p.CO2, p.Water, p.Humidity, p.Soil, p.Pollution} {
		if v < 0 || v > 100 {
			t.Errorf("percentage stat out of range: %+v", p)
		}
	}
	if s.Resources.Credits < 0 || s.Resources.Energy < 0 || s.Resources.Population < 0 {
		t.Errorf("resources went negative: %+v", s.Resources)
	}
}

func TestComputeStageMonotonic(t *testing.T) {
	s := newTestSim(t, catalog.PlanetCold)

	// Satisfy everything through stage 3.
	s.Planet = PlanetState{
		Temperature: 0, Oxygen: 35, CO2: 60, Water: 40,
		Humidity: 10, Soil: 40, Pollution: 0,
	}
	if got := s.ComputeStage(); got != 3 {
		t.Errorf("ComputeStage() = %d, want 3", got)
	}

	// Regression below a lower stage's threshold lowers the computed stage
	// even though the cached field still holds the high-water mark.
	s.Stage = 3
	s.Planet.Temperature = -30
	if got := s.ComputeStage(); got != 0 {
		t.Errorf("ComputeStage() after regression = %d, want 0", got)
	}
}

func TestStageZeroTriviallyMet(t *testing.T) {
	s := newTestSim(t, catalog.PlanetBarren)

	// Barren starts at 20 degrees, which already clears stage 1's sole
	// temperature gate.
	if got := s.ComputeStage(); got != 1 {
		t.Errorf("ComputeStage() = %d, want 1", got)
	}

	// Stage 0 has an empty requirement set, so even a world too cold for
	// stage 1 still rates 0.
	s.Planet.Temperature = -50
	if got := s.ComputeStage(); got != 0 {
		t.Errorf("ComputeStage() on a frozen world = %d, want 0", got)
	}
}

func TestIsFacilityUnlocked(t *testing.T) {
	s := newTestSim(t, catalog.PlanetCold)

	if !s.IsFacilityUnlocked("heatingFacility") {
		t.Error("stage 0 facility should be unlocked")
	}
	if s.IsFacilityUnlocked("oxygenFacility") {
		t.Error("stage 1 facility should be locked on a fresh hostile world")
	}

	s.Planet.Temperature = -15 // passes stage 1, not stage 2
	if !s.IsFacilityUnlocked("oxygenFacility") {
		t.Error("stage 1 facility should unlock at stage 1")
	}
	if s.IsFacilityUnlocked("co2Scrubber") {
		t.Error("stage 2 facility should stay locked at stage 1")
	}
}

func TestIsPlanetSuitable(t *testing.T) {
	s := newTestSim(t, catalog.PlanetCold)

	if !s.IsPlanetSuitable("heatingFacility") {
		t.Error("heating should suit a cold planet")
	}
	if s.IsPlanetSuitable("coolingFacility") {
		t.Error("cooling should not suit a cold planet")
	}
	if !s.IsPlanetSuitable("solarArray") {
		t.Error("the all sentinel should pass everywhere")
	}
}

func TestCollapseReportsAllReasons(t *testing.T) {
	s := newTestSim(t, catalog.PlanetBarren)
	s.Planet.Temperature = -90
	s.Planet.Pollution = 99
	s.Planet.CO2 = 99
	s.Resources.Energy = 1000

	s.AdvanceTurn()

	if !s.Collapsed {
		t.Fatal("planet should have collapsed")
	}
	var reasons int
	for _, a := range s.Alerts {
		if len(a.Message) > 1 && a.Message[0] == '-' {
			reasons++
		}
	}
	if reasons != 3 {
		t.Errorf("collapse reasons reported = %d, want 3", reasons)
	}
}

func TestCollapseIsSticky(t *testing.T) {
	s := newTestSim(t, catalog.PlanetCold)
	s.Planet.Pollution = 100
	s.Resources.Energy = 1000
	s.AdvanceTurn()
	if !s.Collapsed {
		t.Fatal("planet should have collapsed")
	}

	turn := s.Turn
	planet := s.Planet
	resources := s.Resources

	for i := 0; i < 5; i++ {
		s.AdvanceTurn()
	}

	if s.Turn != turn {
		t.Errorf("turn advanced after collapse: %d -> %d", turn, s.Turn)
	}
	if s.Planet != planet {
		t.Errorf("planet mutated after collapse: %+v -> %+v", planet, s.Planet)
	}
	if s.Resources != resources {
		t.Errorf("resources mutated after collapse: %+v -> %+v", resources, s.Resources)
	}
	if s.Alerts[0].Message != "Planet has collapsed! Reset to continue." {
		t.Errorf("expected repeated collapse alert, got %q", s.Alerts[0].Message)
	}

	// Reset clears the flag and play resumes.
	s.ResetPlanet()
	if s.Collapsed {
		t.Error("reset should clear the collapse flag")
	}
	s.AdvanceTurn()
	if s.Turn != 1 {
		t.Errorf("turn after reset+advance = %d, want 1", s.Turn)
	}
}

func TestShortagePenalties(t *testing.T) {
	s := newTestSim(t, catalog.PlanetDesert)
	s.Resources.Population = 200
	s.Resources.Energy = 1000
	s.Planet.Water = 10  // water shortage: -10 population
	s.Planet.Oxygen = 10 // oxygen shortage with pop>100: -5 population

	s.AdvanceTurn()

	// 200 - 10 - 5 = 185, then income floor(185*0.5) credited.
	if s.Resources.Population != 185 {
		t.Errorf("population = %v, want 185", s.Resources.Population)
	}
	if want := 5000 + math.Floor(185*0.5); s.Resources.Credits != want {
		t.Errorf("credits = %v, want %v", s.Resources.Credits, want)
	}
}

func TestAlertLogBounded(t *testing.T) {
	s := newTestSim(t, catalog.PlanetCold)
	for i := 0; i < 25; i++ {
		s.AddAlert("noise", SeverityInfo)
	}
	if len(s.Alerts) != maxAlerts {
		t.Errorf("alert log length = %d, want %d", len(s.Alerts), maxAlerts)
	}

	s.AddAlert("newest", SeverityInfo)
	if s.Alerts[0].Message != "newest" {
		t.Error("alerts should be newest first")
	}
}
