package catalog

// Stage is one terraforming milestone. Requirements map stats to
// thresholds; Stat.AtMost decides the comparison direction. Unlocks lists
// the facility keys this stage makes purchasable.
type Stage struct {
	Name         string
	Description  string
	Requirements map[Stat]float64
	Unlocks      []string
}

// Stages is the full progression ladder. The final entry is the victory
// stage.
var Stages = []Stage{
	{
		Name:         "Stage 0: Hostile World",
		Description:  "Planet is completely inhospitable. Basic infrastructure needed.",
		Requirements: map[Stat]float64{},
		Unlocks:      []string{"heatingFacility", "coolingFacility", "solarArray"},
	},
	{
		Name:         "Stage 1: Early Terraforming",
		Description:  "Temperature stabilizing. Begin atmospheric processing.",
		Requirements: map[Stat]float64{StatTemperature: -20},
		Unlocks:      []string{"humidifier", "oxygenFacility", "waterExtractor"},
	},
	{
		Name:         "Stage 2: Atmospheric Development",
		Description:  "Breathable atmosphere forming. Soil enrichment possible.",
		Requirements: map[Stat]float64{StatTemperature: -10, StatOxygen: 20, StatWater: 25},
		Unlocks:      []string{"co2Scrubber", FacilitySoilEnricher},
	},
	{
		Name:         "Stage 3: Ecosystem Foundation",
		Description:  "Basic ecosystem can be sustained. Agriculture possible.",
		Requirements: map[Stat]float64{StatTemperature: 0, StatOxygen: 35, StatWater: 40, StatSoil: 40, StatCO2: 60},
		Unlocks:      []string{"pollutionFilter", FacilityGreenhouse},
	},
	{
		Name:         "Stage 4: Habitable World",
		Description:  "Planet is habitable! Colonization can begin.",
		Requirements: map[Stat]float64{StatTemperature: 5, StatOxygen: 50, StatWater: 50, StatSoil: 60, StatHumidity: 30, StatCO2: 40, StatPollution: 20},
		Unlocks:      []string{"habitatDome"},
	},
	{
		Name:         "Stage 5: Thriving Colony",
		Description:  "Self-sustaining ecosystem achieved. Victory!",
		Requirements: map[Stat]float64{StatTemperature: 15, StatOxygen: 70, StatWater: 70, StatSoil: 80, StatHumidity: 50, StatPollution: 10},
	},
}

// FinalStage is the index of the victory stage.
func FinalStage() int {
	return len(Stages) - 1
}
