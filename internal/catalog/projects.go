package catalog

// ProjectCost is the upfront price of a mega-project.
type ProjectCost struct {
	Credits       float64
	Metals        float64
	RareResources float64
}

// MegaProject is an empire-scale construction. MinPlanets is the
// owned-planet count required to start it. Effects beyond the completion
// prestige award are an extension point.
type MegaProject struct {
	Key        string
	Name       string
	Cost       ProjectCost
	BuildTime  int
	Effect     string
	MinPlanets int
}

var MegaProjects = []MegaProject{
	{
		Key:        "dysonSphere",
		Name:       "Dyson Sphere",
		Cost:       ProjectCost{Credits: 100000, Metals: 50000, RareResources: 1000},
		BuildTime:  50,
		Effect:     "Unlimited energy production",
		MinPlanets: 5,
	},
	{
		Key:        "ringWorld",
		Name:       "Ring World",
		Cost:       ProjectCost{Credits: 150000, Metals: 80000, RareResources: 2000},
		BuildTime:  75,
		Effect:     "Massive population capacity",
		MinPlanets: 8,
	},
	{
		Key:        "wormholeGate",
		Name:       "Wormhole Gate",
		Cost:       ProjectCost{Credits: 80000, Metals: 40000, RareResources: 1500},
		BuildTime:  40,
		Effect:     "Instant travel between systems",
		MinPlanets: 4,
	},
}

// MegaProjectByKey looks up a mega-project template by key.
func MegaProjectByKey(key string) (MegaProject, bool) {
	for _, p := range MegaProjects {
		if p.Key == key {
			return p, true
		}
	}
	return MegaProject{}, false
}

// Tech is a researchable technology. The resolution engine carries the
// researched flags through saves; applying tech effects is an extension
// point.
type Tech struct {
	Key    string
	Cost   float64
	Effect string
}

var Techs = []Tech{
	{Key: "advancedSensors", Cost: 10000, Effect: "Increase exploration range"},
	{Key: "warpDrive", Cost: 25000, Effect: "Double ship speed"},
	{Key: "shieldTech", Cost: 15000, Effect: "Increase defense by 50%"},
	{Key: "weaponSystems", Cost: 20000, Effect: "Increase attack by 50%"},
	{Key: "efficientExtraction", Cost: 8000, Effect: "Increase resource production by 25%"},
	{Key: "megaStructures", Cost: 50000, Effect: "Unlock mega-projects"},
	{Key: "rapidTerraforming", Cost: 30000, Effect: "Reduce terraforming time by 50%"},
	{Key: "populationBoost", Cost: 12000, Effect: "Increase population growth by 100%"},
}
