package catalog

// Treaty is a proposable diplomatic agreement. OpinionReq is the minimum
// opinion score required before the acceptance roll.
type Treaty struct {
	Key        string
	OpinionReq float64
	Effect     string
}

const (
	TreatyPeace         = "peace"
	TreatyTrade         = "trade"
	TreatyAlliance      = "alliance"
	TreatyNonAggression = "nonAggression"
)

var Treaties = []Treaty{
	{Key: TreatyPeace, OpinionReq: -50, Effect: "End hostilities"},
	{Key: TreatyTrade, OpinionReq: 20, Effect: "Enable resource trading"},
	{Key: TreatyAlliance, OpinionReq: 50, Effect: "Military and economic alliance"},
	{Key: TreatyNonAggression, OpinionReq: 0, Effect: "Cannot attack each other"},
}

// TreatyByKey looks up a treaty kind.
func TreatyByKey(key string) (Treaty, bool) {
	for _, t := range Treaties {
		if t.Key == key {
			return t, true
		}
	}
	return Treaty{}, false
}

// ExplorationEvent is one random departure outcome. Exactly one of the
// reward/damage fields is nonzero per event.
type ExplorationEvent struct {
	Key        string
	Message    string
	HealthLoss float64
	Credits    float64
	Rare       float64
	Metals     float64
}

var ExplorationEvents = []ExplorationEvent{
	{Key: "asteroid_field", Message: "Ship damaged by asteroid field", HealthLoss: 15},
	{Key: "alien_ruins", Message: "Ancient ruins discovered! +500 credits", Credits: 500},
	{Key: "spatial_anomaly", Message: "Spatial anomaly detected! +100 rare resources", Rare: 100},
	{Key: "pirates", Message: "Pirate attack! Ship damaged", HealthLoss: 25},
	{Key: "resource_cache", Message: "Resource cache found! +1000 metals", Metals: 1000},
}

// PrestigeRank is one rung of the prestige ladder.
type PrestigeRank struct {
	Name     string
	Prestige float64
}

// PrestigeRanks is ordered ascending by threshold.
var PrestigeRanks = []PrestigeRank{
	{Name: "Explorer", Prestige: 0},
	{Name: "Colonist", Prestige: 1000},
	{Name: "Commander", Prestige: 5000},
	{Name: "Admiral", Prestige: 15000},
	{Name: "Overlord", Prestige: 50000},
	{Name: "Emperor", Prestige: 100000},
	{Name: "Galactic Legend", Prestige: 250000},
}

// RankForPrestige returns the highest rank whose threshold is met.
func RankForPrestige(prestige float64) string {
	for i := len(PrestigeRanks) - 1; i >= 0; i-- {
		if prestige >= PrestigeRanks[i].Prestige {
			return PrestigeRanks[i].Name
		}
	}
	return PrestigeRanks[0].Name
}
