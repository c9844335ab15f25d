package catalog

// FacilityCost is the one-time purchase price of a facility.
type FacilityCost struct {
	Credits float64
	Energy  float64
}

// Facility is a purchasable building template. EnergyConsumption is per
// turn; a negative value means the facility is a net energy producer.
type Facility struct {
	Key               string
	Name              string
	Description       string
	Cost              FacilityCost
	EnergyConsumption float64
	UnlockStage       int
	Effects           []Effect
	Requirements      map[Stat]float64
	Suitability       []string
}

// Facility keys referenced by resolution rules.
const (
	FacilitySoilEnricher = "soilEnricher"
	FacilityGreenhouse   = "greenhouse"
)

// SuitabilityAll is the sentinel entry that makes a facility suitable for
// every planet type.
const SuitabilityAll = "all"

// Facilities is ordered for deterministic iteration during turn resolution.
var Facilities = []Facility{
	{
		Key:               "heatingFacility",
		Name:              "Heating Facility",
		Description:       "Increases planetary temperature and melts ice to create water. Essential for cold planets.",
		Cost:              FacilityCost{Credits: 1000, Energy: 50},
		EnergyConsumption: 20,
		UnlockStage:       0,
		Effects: []Effect{
			Env(StatTemperature, 5),
			Env(StatWater, 3),
			Env(StatPollution, 2),
		},
		Suitability: []string{PlanetCold},
	},
	{
		Key:               "coolingFacility",
		Name:              "Cooling Facility",
		Description:       "Reduces planetary temperature to allow water to exist in liquid form. Essential for hot planets.",
		Cost:              FacilityCost{Credits: 1200, Energy: 60},
		EnergyConsumption: 25,
		UnlockStage:       0,
		Effects: []Effect{
			Env(StatTemperature, -5),
			Env(StatWater, 2),
			Env(StatPollution, 1),
		},
		Suitability: []string{PlanetHot},
	},
	{
		Key:               "humidifier",
		Name:              "Atmospheric Humidifier",
		Description:       "Increases atmospheric humidity by releasing water vapor. Essential for desert planets.",
		Cost:              FacilityCost{Credits: 800, Energy: 40},
		EnergyConsumption: 15,
		UnlockStage:       1,
		Effects: []Effect{
			Env(StatHumidity, 5),
			Env(StatWater, -2),
			Env(StatTemperature, -1),
		},
		Suitability: []string{PlanetDesert, PlanetHot},
	},
	{
		Key:               "oxygenFacility",
		Name:              "O2 Generator",
		Description:       "Generates oxygen through electrolysis and biological processes.",
		Cost:              FacilityCost{Credits: 1500, Energy: 70},
		EnergyConsumption: 30,
		UnlockStage:       1,
		Effects: []Effect{
			Env(StatOxygen, 4),
			Env(StatCO2, -2),
			Env(StatWater, -1),
		},
		Suitability: []string{SuitabilityAll},
	},
	{
		Key:               "co2Scrubber",
		Name:              "CO2 Scrubber",
		Description:       "Removes carbon dioxide from the atmosphere, reducing greenhouse effect.",
		Cost:              FacilityCost{Credits: 1300, Energy: 55},
		EnergyConsumption: 22,
		UnlockStage:       2,
		Effects: []Effect{
			Env(StatCO2, -5),
			Env(StatPollution, -3),
			Env(StatTemperature, -2),
		},
		Suitability: []string{SuitabilityAll},
	},
	{
		Key:               FacilitySoilEnricher,
		Name:              "Soil Enrichment Station",
		Description:       "Enriches soil with nutrients and organic matter for agriculture.",
		Cost:              FacilityCost{Credits: 900, Energy: 45},
		EnergyConsumption: 18,
		UnlockStage:       2,
		Effects: []Effect{
			Env(StatSoil, 5),
			Env(StatWater, -1),
			Env(StatOxygen, 1),
		},
		Suitability: []string{SuitabilityAll},
	},
	{
		Key:               "waterExtractor",
		Name:              "Water Extraction Plant",
		Description:       "Extracts water from underground sources and ice deposits.",
		Cost:              FacilityCost{Credits: 1100, Energy: 50},
		EnergyConsumption: 20,
		UnlockStage:       1,
		Effects: []Effect{
			Env(StatWater, 5),
			Env(StatHumidity, 2),
		},
		Suitability: []string{SuitabilityAll},
	},
	{
		Key:               "pollutionFilter",
		Name:              "Pollution Filter Array",
		Description:       "Filters atmospheric pollutants and particulates.",
		Cost:              FacilityCost{Credits: 1400, Energy: 60},
		EnergyConsumption: 25,
		UnlockStage:       3,
		Effects: []Effect{
			Env(StatPollution, -5),
			Env(StatOxygen, 1),
		},
		Suitability: []string{SuitabilityAll},
	},
	{
		Key:               "solarArray",
		Name:              "Solar Power Array",
		Description:       "Generates clean energy from solar radiation.",
		Cost:              FacilityCost{Credits: 2000},
		EnergyConsumption: -50,
		UnlockStage:       0,
		Effects: []Effect{
			Env(StatPollution, -1),
		},
		Suitability: []string{SuitabilityAll},
	},
	{
		Key:               FacilityGreenhouse,
		Name:              "Agricultural Greenhouse",
		Description:       "Produces food and oxygen while consuming CO2. Requires good soil and water.",
		Cost:              FacilityCost{Credits: 1800, Energy: 40},
		EnergyConsumption: 15,
		UnlockStage:       3,
		Effects: []Effect{
			Env(StatOxygen, 3),
			Env(StatCO2, -3),
			Env(StatWater, -2),
			Env(StatSoil, -1),
		},
		Requirements: map[Stat]float64{StatSoil: 50, StatWater: 30},
		Suitability:  []string{SuitabilityAll},
	},
	{
		Key:               "habitatDome",
		Name:              "Habitat Dome",
		Description:       "Houses population and provides living space. Requires stable environment.",
		Cost:              FacilityCost{Credits: 3000, Energy: 100},
		EnergyConsumption: 30,
		UnlockStage:       4,
		Effects: []Effect{
			Pop(100),
			Env(StatWater, -3),
			Env(StatOxygen, -2),
			Env(StatPollution, 2),
		},
		Requirements: map[Stat]float64{StatOxygen: 40, StatTemperature: 0, StatWater: 40},
		Suitability:  []string{SuitabilityAll},
	},
}

// FacilityByKey looks up a facility template by key.
func FacilityByKey(key string) (Facility, bool) {
	for _, f := range Facilities {
		if f.Key == key {
			return f, true
		}
	}
	return Facility{}, false
}
