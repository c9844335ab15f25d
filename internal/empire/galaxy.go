package empire

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/goblue0808/Genesis-Frontier/internal/catalog"
	"github.com/goblue0808/Genesis-Frontier/internal/sim"
)

// Planet is one body in a star system. Stats start from the type template
// and stay frozen until colonization copies them into a Colony.
type Planet struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Stats        sim.PlanetState `json:"stats"`
	Colonized    bool            `json:"colonized"`
	Owner        string          `json:"owner,omitempty"`
	HasRare      bool            `json:"has_rare"`
	RareType     string          `json:"rare_type,omitempty"`
	DefenseLevel float64         `json:"defense_level"`
}

// System is one star system on the sector grid.
type System struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	X          int       `json:"x"`
	Y          int       `json:"y"`
	Planets    []*Planet `json:"planets"`
	Discovered bool      `json:"discovered"`
}

// RareZone is a sector with boosted rare-resource output.
type RareZone struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Resource string `json:"resource"`
	Rate     int    `json:"rate"`
}

// Galaxy is the generated map. It is simulation data, not rendering data:
// positions drive travel times and zones drive production.
type Galaxy struct {
	Systems   []*System  `json:"systems"`
	Sectors   int        `json:"sectors"`
	RareZones []RareZone `json:"rare_zones"`
}

const (
	galaxySystems  = 50
	galaxyGridSize = 10
	rareZoneCount  = 10
)

var namePrefixes = []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Nova", "Stellar", "Prime", "Nexus"}
var nameSuffixes = []string{"Centauri", "Draconis", "Phoenicis", "Andromedae", "Orionis", "Majoris", "Minoris", "Prime", "Station", "Outpost"}

var rareResources = []string{"exotic_matter", "dark_energy", "antimatter", "quantum_crystals", "neutronium"}

func generateGalaxy(rng *rand.Rand) *Galaxy {
	g := &Galaxy{Sectors: galaxyGridSize * galaxyGridSize}

	for i := 0; i < galaxySystems; i++ {
		s := &System{
			ID:         fmt.Sprintf("system_%d", i),
			Name:       systemName(rng),
			X:          rng.Intn(galaxyGridSize),
			Y:          rng.Intn(galaxyGridSize),
			Discovered: i == 0,
		}
		s.Planets = generatePlanets(rng)
		g.Systems = append(g.Systems, s)
	}

	for i := 0; i < rareZoneCount; i++ {
		g.RareZones = append(g.RareZones, RareZone{
			X:        rng.Intn(galaxyGridSize),
			Y:        rng.Intn(galaxyGridSize),
			Resource: rareResources[rng.Intn(len(rareResources))],
			Rate:     rng.Intn(50) + 10,
		})
	}

	g.Systems[0].Name = "Sol Prime"
	return g
}

func generatePlanets(rng *rand.Rand) []*Planet {
	n := rng.Intn(5) + 1
	planets := make([]*Planet, 0, n)
	for i := 0; i < n; i++ {
		tpl := catalog.PlanetTypes[rng.Intn(len(catalog.PlanetTypes))]
		p := &Planet{
			ID:    "planet_" + strconv.FormatInt(rng.Int63n(1<<45), 36),
			Name:  fmt.Sprintf("Planet %c", 'A'+i),
			Type:  tpl.Key,
			Stats: sim.NewPlanetState(tpl),
		}
		if rng.Float64() > 0.7 {
			p.HasRare = true
			if rng.Float64() > 0.5 {
				p.RareType = "exotic_matter"
			} else {
				p.RareType = "dark_energy"
			}
		}
		planets = append(planets, p)
	}
	return planets
}

func systemName(rng *rand.Rand) string {
	return namePrefixes[rng.Intn(len(namePrefixes))] + " " + nameSuffixes[rng.Intn(len(nameSuffixes))]
}

func (g *Galaxy) planetByID(systemID, planetID string) *Planet {
	for _, s := range g.Systems {
		if s.ID != systemID {
			continue
		}
		for _, p := range s.Planets {
			if p.ID == planetID {
				return p
			}
		}
	}
	return nil
}
