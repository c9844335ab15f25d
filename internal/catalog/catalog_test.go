package catalog

import "testing"

// The stage unlock lists and per-facility unlock stages are authored
// separately; these tests keep them from drifting apart.

func TestEveryFacilityAppearsInAStageUnlockList(t *testing.T) {
	unlocked := make(map[string]int)
	for i, stage := range Stages {
		for _, key := range stage.Unlocks {
			if prev, seen := unlocked[key]; seen {
				t.Errorf("facility %q unlocked twice (stages %d and %d)", key, prev, i)
			}
			unlocked[key] = i
		}
	}

	for _, f := range Facilities {
		stage, ok := unlocked[f.Key]
		if !ok {
			t.Errorf("facility %q missing from every stage unlock list", f.Key)
			continue
		}
		if stage != f.UnlockStage {
			t.Errorf("facility %q: unlock list stage %d, UnlockStage %d", f.Key, stage, f.UnlockStage)
		}
	}
}

func TestStageUnlocksReferenceRealFacilities(t *testing.T) {
	for i, stage := range Stages {
		for _, key := range stage.Unlocks {
			if _, ok := FacilityByKey(key); !ok {
				t.Errorf("stage %d unlocks unknown facility %q", i, key)
			}
		}
	}
}

func TestStageRequirementsAreMonotonic(t *testing.T) {
	// Each stage's threshold must be at least as strict as the previous
	// stage's for the same stat, or regression detection misbehaves.
	for i := 1; i < len(Stages); i++ {
		for stat, threshold := range Stages[i].Requirements {
			prev, ok := Stages[i-1].Requirements[stat]
			if !ok {
				continue
			}
			if stat.AtMost() {
				if threshold > prev {
					t.Errorf("stage %d: %s threshold %v looser than stage %d's %v", i, stat, threshold, i-1, prev)
				}
			} else if threshold < prev {
				t.Errorf("stage %d: %s threshold %v looser than stage %d's %v", i, stat, threshold, i-1, prev)
			}
		}
	}
}

func TestPlanetTypesHaveDistinctKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range PlanetTypes {
		if seen[p.Key] {
			t.Errorf("duplicate planet type key %q", p.Key)
		}
		seen[p.Key] = true
		if PlanetTypeIndex(p.Key) < 0 {
			t.Errorf("PlanetTypeIndex(%q) = -1", p.Key)
		}
	}
}

func TestRankLadder(t *testing.T) {
	tests := []struct {
		prestige float64
		want     string
	}{
		{0, "Explorer"},
		{999, "Explorer"},
		{1000, "Colonist"},
		{50000, "Overlord"},
		{999999, "Galactic Legend"},
	}
	for _, tt := range tests {
		if got := RankForPrestige(tt.prestige); got != tt.want {
			t.Errorf("RankForPrestige(%v) = %q, want %q", tt.prestige, got, tt.want)
		}
	}
}
