package catalog

// ShipCost is the full price of one starship.
type ShipCost struct {
	Credits float64
	Metals  float64
	Energy  float64
}

// ShipKind is a starship template. MinPopulation and MinPlanets gate when a
// kind becomes buildable. Colonists is nonzero only for colony-class ships.
type ShipKind struct {
	Key              string
	Name             string
	Description      string
	Cost             ShipCost
	BuildTime        int
	Speed            float64
	CargoCapacity    float64
	CombatPower      float64
	ExplorationBonus float64
	Colonists        float64
	MinPopulation    float64
	MinPlanets       int
}

const (
	ShipScout     = "scout"
	ShipColony    = "colony"
	ShipFreighter = "freighter"
	ShipWarship   = "warship"
)

var ShipKinds = []ShipKind{
	{
		Key:              ShipScout,
		Name:             "Scout Ship",
		Description:      "Fast exploration vessel for discovering new planets",
		Cost:             ShipCost{Credits: 5000, Metals: 2000, Energy: 500},
		BuildTime:        5,
		Speed:            10,
		CargoCapacity:    100,
		CombatPower:      2,
		ExplorationBonus: 0.3,
		MinPopulation:    100,
	},
	{
		Key:           ShipColony,
		Name:          "Colony Ship",
		Description:   "Large vessel capable of establishing new colonies",
		Cost:          ShipCost{Credits: 15000, Metals: 5000, Energy: 1500},
		BuildTime:     10,
		Speed:         5,
		CargoCapacity: 500,
		CombatPower:   1,
		Colonists:     100,
		MinPopulation: 500,
	},
	{
		Key:           ShipFreighter,
		Name:          "Freighter",
		Description:   "Cargo hauler for resource transport between planets",
		Cost:          ShipCost{Credits: 8000, Metals: 3000, Energy: 800},
		BuildTime:     6,
		Speed:         7,
		CargoCapacity: 1000,
		CombatPower:   1,
		MinPopulation: 200,
	},
	{
		Key:           ShipWarship,
		Name:          "Warship",
		Description:   "Military vessel for defense and invasion",
		Cost:          ShipCost{Credits: 20000, Metals: 8000, Energy: 2500},
		BuildTime:     15,
		Speed:         8,
		CargoCapacity: 200,
		CombatPower:   10,
		MinPopulation: 1000,
		MinPlanets:    2,
	},
}

// ShipByKey looks up a starship template by key.
func ShipByKey(key string) (ShipKind, bool) {
	for _, s := range ShipKinds {
		if s.Key == key {
			return s, true
		}
	}
	return ShipKind{}, false
}

// Defense is a purchasable planetary defense structure.
type Defense struct {
	Key     string
	Credits float64
	Bonus   float64
}

var Defenses = []Defense{
	{Key: "shieldGenerator", Credits: 5000, Bonus: 10},
	{Key: "plasmaCannon", Credits: 8000, Bonus: 15},
	{Key: "orbitalPlatform", Credits: 15000, Bonus: 25},
}

// DefenseByKey looks up a defense structure by key.
func DefenseByKey(key string) (Defense, bool) {
	for _, d := range Defenses {
		if d.Key == key {
			return d, true
		}
	}
	return Defense{}, false
}
