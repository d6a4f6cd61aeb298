package sim

import "math"

// Tuned growth rates. Level growth is unchanged; branches and training were
// priced out of reach under the legacy rates.
const (
	BranchCostGrowthTuned   = 1.30
	TrainingCostGrowthTuned = 1.25
)

// GeoTier is one geographic expansion tier of the tuned model.
type GeoTier struct {
	MinBranches int
	Mult        float64
	Name        string
}

var geoTiers = []GeoTier{
	{0, 1.0, "Local"},
	{5, 1.5, "Regional"},
	{12, 2.5, "National"},
	{20, 4.0, "Continental"},
	{30, 7.0, "Global"},
	{45, 12.0, "Interplanetary"},
}

// GeoTiers returns the tuned expansion tiers in ascending order.
func GeoTiers() []GeoTier { return geoTiers }

// GeoFor returns the highest tier the branch count qualifies for.
func GeoFor(branches int) GeoTier {
	tier := geoTiers[0]
	for _, t := range geoTiers {
		if branches >= t.MinBranches {
			tier = t
		}
	}
	return tier
}

// TunedBusiness is one business under the tuned model, carried with the
// live data values so the verification runs against what actually ships.
type TunedBusiness struct {
	Name         string
	Price        float64
	BaseCust     int
	OptPrice     float64
	Supply       float64
	Rent         float64
	Salary       float64
	OutPerEmp    int
	Quality      int
	Elasticity   float64
	MaxEmployees int
	BranchBase   float64
	TrainingBase float64
}

var tunedBusinesses = []TunedBusiness{
	{"Lemonade", 12000, 5, 2.2, 1.0, 0.3, 0.5, 4, 50, 1.2, 5, 60000, 5000},
	{"Pizzeria", 350000, 10, 24.0, 11.0, 4.0, 2.5, 3, 50, 1.1, 6, 1800000, 50000},
	{"Nightclub", 60000000, 36, 690.0, 310.0, 50.0, 30.0, 5, 50, 1.0, 10, 300000000, 1500000},
	{"TechStartup", 1250000000, 110, 5600.0, 2520.0, 200.0, 100.0, 8, 55, 0.6, 20, 6000000000, 30000000},
	{"Bank", 60000000000, 77, 253000.0, 113850.0, 1000.0, 500.0, 6, 60, 0.4, 20, 300000000000, 1250000000},
}

// TunedBusinesses returns the spot-check roster: one business per game
// phase, from the starter to the endgame.
func TunedBusinesses() []TunedBusiness { return tunedBusinesses }

// Demand applies the quality factor to the base customer pool.
func Demand(baseCust int, quality float64) int {
	qf := 0.5 + quality/100*1.5
	return int(math.Max(0, math.Floor(float64(baseCust)*qf)))
}

// OperatingCosts is the per-tick cost line: wages, branch-scaled rent, and
// supplies for units sold.
func OperatingCosts(employees int, salary, rent, supply float64, sold, branches int) float64 {
	return float64(employees)*salary + rent*(1+float64(branches)*0.3) + supply*float64(sold)
}

// LevelCustomerMult is the tuned model's demand bonus from business level.
// Logarithmic so that demand keeps pace with capacity without runaway.
func LevelCustomerMult(level int) float64 {
	return 1 + math.Log2(float64(level)+1)*0.25
}

// BranchCustomerMult is the tuned model's demand bonus from branches.
func BranchCustomerMult(branches int) float64 {
	return 1 + float64(branches)*0.15
}

// EffectiveQuality is quality after training, capped at 100.
func EffectiveQuality(quality, trainingLevel int) float64 {
	return math.Min(100, float64(quality)+float64(trainingLevel)*2)
}
