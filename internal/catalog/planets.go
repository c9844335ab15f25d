package catalog

// PlanetTemplate is the starting environment for one planet type.
type PlanetTemplate struct {
	Key         string
	Name        string
	Temperature float64
	Oxygen      float64
	CO2         float64
	Water       float64
	Humidity    float64
	Soil        float64
	Pollution   float64
}

const (
	PlanetCold   = "cold"
	PlanetHot    = "hot"
	PlanetDesert = "desert"
	PlanetBarren = "barren"
)

// PlanetTypes is ordered; ResetPlanet cycles through it in this order.
var PlanetTypes = []PlanetTemplate{
	{Key: PlanetCold, Name: "Frozen Tundra", Temperature: -80, Oxygen: 5, CO2: 95, Water: 10, Humidity: 5, Soil: 20},
	{Key: PlanetHot, Name: "Scorched Desert", Temperature: 120, Oxygen: 8, CO2: 90, Water: 5, Humidity: 2, Soil: 15},
	{Key: PlanetDesert, Name: "Arid Wasteland", Temperature: 45, Oxygen: 12, CO2: 80, Water: 15, Humidity: 10, Soil: 30},
	{Key: PlanetBarren, Name: "Barren Rock", Temperature: 20, Oxygen: 3, CO2: 85, Water: 8, Humidity: 5, Soil: 10},
}

// PlanetTypeByKey returns the template for a planet type key.
func PlanetTypeByKey(key string) (PlanetTemplate, bool) {
	for _, t := range PlanetTypes {
		if t.Key == key {
			return t, true
		}
	}
	return PlanetTemplate{}, false
}

// PlanetTypeIndex returns the position of a planet type in the cycle order,
// or -1 if unknown.
func PlanetTypeIndex(key string) int {
	for i, t := range PlanetTypes {
		if t.Key == key {
			return i
		}
	}
	return -1
}
