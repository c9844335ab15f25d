package empire

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e := New("p1", "Tester", 123)
	e.LastUpdate = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	e.Core.Resources.Population = 500
	for i := 0; i < 3; i++ {
		e.AdvanceTurn()
	}
	e.relation("rival").Opinion = 25
	e.Technologies["warpDrive"] = true
	addShip(e, catalog.ShipFreighter)

	data, err := json.Marshal(e.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored := Restore(&snap)

	if restored.PlayerID != "p1" || restored.Seed != 123 {
		t.Errorf("identity lost: %s/%d", restored.PlayerID, restored.Seed)
	}
	if restored.Core.Turn != e.Core.Turn {
		t.Errorf("turn = %d, want %d", restored.Core.Turn, e.Core.Turn)
	}
	if !restored.LastUpdate.Equal(e.LastUpdate) {
		t.Errorf("last update = %v, want %v", restored.LastUpdate, e.LastUpdate)
	}
	if !restored.Technologies["warpDrive"] {
		t.Error("researched tech lost in round trip")
	}
	if restored.Relations["rival"].Opinion != 25 {
		t.Error("relation opinion lost in round trip")
	}

	got, err := json.Marshal(restored.Snapshot())
	if err != nil {
		t.Fatalf("marshal restored: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("restored snapshot differs from the original")
	}
}

func TestRestoreResumesSimulation(t *testing.T) {
	a := New("p1", "Tester", 55)
	a.Core.ResetPlanetTo(catalog.PlanetDesert)
	for i := 0; i < 5; i++ {
		a.AdvanceTurn()
	}

	b := Restore(a.Snapshot())
	a.AdvanceTurn()
	b.AdvanceTurn()

	if a.Core.Turn != b.Core.Turn {
		t.Fatalf("turn diverged: %d vs %d", a.Core.Turn, b.Core.Turn)
	}
	if a.Core.Planet != b.Core.Planet {
		t.Errorf("planet diverged:\n%+v\n%+v", a.Core.Planet, b.Core.Planet)
	}
	if a.Core.Resources != b.Core.Resources {
		t.Errorf("resources diverged:\n%+v\n%+v", a.Core.Resources, b.Core.Resources)
	}
}

func TestRestorePartialSnapshotFallsBack(t *testing.T) {
	turn := 12
	snap := &Snapshot{
		PlayerID: "p1",
		Seed:     9,
		Turn:     &turn,
	}

	e := Restore(snap)

	if e.Core.Turn != 12 {
		t.Errorf("turn = %d, want the saved 12", e.Core.Turn)
	}
	// Everything the snapshot omits comes from a fresh empire.
	if e.Core.Resources.Credits != 5000 || e.Core.Resources.Metals != 1000 {
		t.Errorf("resources = %+v, want fresh defaults", e.Core.Resources)
	}
	if len(e.Galaxy.Systems) != 50 {
		t.Errorf("systems = %d, want a regenerated galaxy", len(e.Galaxy.Systems))
	}
	if len(e.Colonies) != 1 {
		t.Errorf("colonies = %d, want the home colony", len(e.Colonies))
	}
	if e.Relations == nil || e.Technologies == nil {
		t.Error("maps must be initialized on fallback")
	}
}

func TestRestoreUnknownFieldsIgnored(t *testing.T) {
	raw := []byte(`{"player_id":"p1","seed":3,"turn":4,"wormhole_router":{"x":1}}`)

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	e := Restore(&snap)

	if e.Core.Turn != 4 {
		t.Errorf("turn = %d, want 4", e.Core.Turn)
	}
	if e.PlayerID != "p1" {
		t.Errorf("player id = %q, want p1", e.PlayerID)
	}
}

func TestRestorePreservesPlanetType(t *testing.T) {
	snap := &Snapshot{
		PlayerID:   "p1",
		Seed:       4,
		PlanetType: catalog.PlanetDesert,
		PlanetName: "New Eden",
	}

	e := Restore(snap)

	if e.Core.PlanetType != catalog.PlanetDesert {
		t.Errorf("planet type = %q, want desert", e.Core.PlanetType)
	}
	if e.Core.PlanetName != "New Eden" {
		t.Errorf("planet name = %q, want New Eden", e.Core.PlanetName)
	}
	if e.Core.Resources.Metals != 1000 {
		t.Errorf("metals = %v, want starting 1000", e.Core.Resources.Metals)
	}
}
