package empire

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
)

func TestElapsedTurns(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"now before last", base.Add(-time.Hour), 0},
		{"same instant", base, 0},
		{"under a minute", base.Add(59 * time.Second), 0},
		{"exactly one minute", base.Add(time.Minute), 1},
		{"five and a half minutes", base.Add(5*time.Minute + 30*time.Second), 5},
		{"one day", base.Add(24 * time.Hour), 1440},
		{"capped at one day", base.Add(50 * time.Hour), 1440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedTurns(base, tt.now); got != tt.want {
				t.Errorf("ElapsedTurns = %d, want %d", got, tt.want)
			}
		})
	}
}

// comparableState strips the fields that legitimately differ between an
// idle catch-up and a live session: the alert log and the wall-clock
// anchor. Everything else must match exactly.
func comparableState(t *testing.T, e *Empire) []byte {
	t.Helper()
	snap := e.Snapshot()
	snap.Alerts = nil
	snap.LastUpdate = nil
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal state: %v", err)
	}
	return data
}

func TestCatchUpMatchesLiveAdvance(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for _, k := range []int{0, 1, 5, 100} {
		live := New("p1", "Tester", 99)
		idle := New("p1", "Tester", 99)
		live.LastUpdate = base
		idle.LastUpdate = base

		for i := 0; i < k; i++ {
			live.AdvanceTurn()
		}
		got := idle.CatchUp(base.Add(time.Duration(k) * time.Minute))

		if got != k {
			t.Errorf("k=%d: CatchUp processed %d turns", k, got)
		}
		if idle.Core.Turn != live.Core.Turn {
			t.Errorf("k=%d: turn %d vs live %d", k, idle.Core.Turn, live.Core.Turn)
		}
		if !bytes.Equal(comparableState(t, idle), comparableState(t, live)) {
			t.Errorf("k=%d: idle catch-up diverged from live play", k)
		}
	}
}

func TestCatchUpReportsAndAnchors(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	now := base.Add(3 * time.Minute)

	e := New("p1", "Tester", 7)
	e.LastUpdate = base

	if got := e.CatchUp(now); got != 3 {
		t.Fatalf("CatchUp = %d, want 3", got)
	}
	if !e.LastUpdate.Equal(now) {
		t.Error("CatchUp should move the anchor to now")
	}
	if len(e.Core.Alerts) == 0 || e.Core.Alerts[0].Message != "Processed 3 turns while you were away" {
		t.Errorf("missing catch-up summary alert, got %v", e.Core.Alerts)
	}

	// A second call with the same timestamp is a no-op.
	if got := e.CatchUp(now); got != 0 {
		t.Errorf("repeat CatchUp = %d, want 0", got)
	}
}

func TestCatchUpCapsAtOneDay(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	e := New("p1", "Tester", 7)
	// A barren start survives indefinitely without intervention, so the
	// turn counter tracks the cap exactly.
	e.Core.ResetPlanetTo(catalog.PlanetBarren)
	e.LastUpdate = base

	if got := e.CatchUp(base.Add(72 * time.Hour)); got != 1440 {
		t.Fatalf("CatchUp = %d, want 1440", got)
	}
	if e.Core.Turn != 1440 {
		t.Errorf("turn = %d, want 1440", e.Core.Turn)
	}
}
