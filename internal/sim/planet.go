package sim

import "github.com/goblue0808/Genesis-Frontier/internal/catalog"

// Temperature is clamped to this range; every other stat is a percentage
// clamped to [0,100].
const (
	MinTemperature = -100
	MaxTemperature = 150
)

// PlanetState is the environmental state of one planet.
type PlanetState struct {
	Temperature float64 `json:"temperature"`
	Oxygen      float64 `json:"oxygen"`
	CO2         float64 `json:"co2"`
	Water       float64 `json:"water"`
	Humidity    float64 `json:"humidity"`
	Soil        float64 `json:"soil"`
	Pollution   float64 `json:"pollution"`
}

// NewPlanetState instantiates a planet from its type template.
func NewPlanetState(tpl catalog.PlanetTemplate) PlanetState {
	return PlanetState{
		Temperature: tpl.Temperature,
		Oxygen:      tpl.Oxygen,
		CO2:         tpl.CO2,
		Water:       tpl.Water,
		Humidity:    tpl.Humidity,
		Soil:        tpl.Soil,
		Pollution:   tpl.Pollution,
	}
}

// Value returns the current value of a stat. Unknown stats read as zero.
func (p *PlanetState) Value(stat catalog.Stat) float64 {
	switch stat {
	case catalog.StatTemperature:
		return p.Temperature
	case catalog.StatOxygen:
		return p.Oxygen
	case catalog.StatCO2:
		return p.CO2
	case catalog.StatWater:
		return p.Water
	case catalog.StatHumidity:
		return p.Humidity
	case catalog.StatSoil:
		return p.Soil
	case catalog.StatPollution:
		return p.Pollution
	}
	return 0
}

// Apply adds a delta to a stat. Unknown stats are ignored.
func (p *PlanetState) Apply(stat catalog.Stat, amount float64) {
	switch stat {
	case catalog.StatTemperature:
		p.Temperature += amount
	case catalog.StatOxygen:
		p.Oxygen += amount
	case catalog.StatCO2:
		p.CO2 += amount
	case catalog.StatWater:
		p.Water += amount
	case catalog.StatHumidity:
		p.Humidity += amount
	case catalog.StatSoil:
		p.Soil += amount
	case catalog.StatPollution:
		p.Pollution += amount
	}
}

// Clamp forces every stat back into its declared range.
func (p *PlanetState) Clamp() {
	p.Temperature = clamp(p.Temperature, MinTemperature, MaxTemperature)
	p.Oxygen = clamp(p.Oxygen, 0, 100)
	p.CO2 = clamp(p.CO2, 0, 100)
	p.Water = clamp(p.Water, 0, 100)
	p.Humidity = clamp(p.Humidity, 0, 100)
	p.Soil = clamp(p.Soil, 0, 100)
	p.Pollution = clamp(p.Pollution, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ResourcePool holds the economy of one colony. Credits, energy and
// population belong to the core simulation; metals, rare resources and
// prestige are accrued by the empire layer.
type ResourcePool struct {
	Credits       float64 `json:"credits"`
	Energy        float64 `json:"energy"`
	Population    float64 `json:"population"`
	Metals        float64 `json:"metals"`
	RareResources float64 `json:"rare_resources"`
	Prestige      float64 `json:"prestige"`
}

// Clamp floors every pool at zero.
func (r *ResourcePool) Clamp() {
	if r.Credits < 0 {
		r.Credits = 0
	}
	if r.Energy < 0 {
		r.Energy = 0
	}
	if r.Population < 0 {
		r.Population = 0
	}
	if r.Metals < 0 {
		r.Metals = 0
	}
	if r.RareResources < 0 {
		r.RareResources = 0
	}
	if r.Prestige < 0 {
		r.Prestige = 0
	}
}

// Get reads a pool by its wire name, for trade routes that move an
// arbitrary resource kind.
func (r *ResourcePool) Get(key string) (float64, bool) {
	switch key {
	case "credits":
		return r.Credits, true
	case "energy":
		return r.Energy, true
	case "population":
		return r.Population, true
	case "metals":
		return r.Metals, true
	case "rareResources":
		return r.RareResources, true
	}
	return 0, false
}

// Add applies a delta to a pool by its wire name.
func (r *ResourcePool) Add(key string, amount float64) bool {
	switch key {
	case "credits":
		r.Credits += amount
	case "energy":
		r.Energy += amount
	case "population":
		r.Population += amount
	case "metals":
		r.Metals += amount
	case "rareResources":
		r.RareResources += amount
	default:
		return false
	}
	return true
}
