package sim

import "math"

// Legacy progression constants. Branch and training growth are the values
// the rebalance lowers; see the tuned model.
const (
	LevelCostGrowth    = 1.18
	LevelOutputExp     = 1.05
	BranchCostGrowth   = 1.65
	TrainingCostGrowth = 1.40
)

// Founding a corporation requires both thresholds at once.
const (
	CorporationLevel    = 50
	CorporationBranches = 25
)

// ProgressionEntry is one business in the legacy progression model.
type ProgressionEntry struct {
	Name         string
	Price        float64
	Output       int
	MaxEmployees int
	Customers    int
	Quality      int
	OptPrice     float64
	Supply       float64
	Salary       float64
	Rent         float64
	BranchCost   float64
	TrainingCost float64
}

var progressionEntries = []ProgressionEntry{
	{"Lemonade", 12000, 4, 5, 5, 50, 2.2, 1.0, 0.5, 0.3, 60000, 5000},
	{"Newspaper", 35000, 4, 4, 8, 45, 3.9, 1.75, 0.8, 0.5, 180000, 12000},
	{"Carwash", 120000, 2, 5, 6, 50, 18, 8, 1.5, 2.0, 600000, 20000},
	{"Pizzeria", 350000, 3, 6, 10, 50, 24, 11, 2.5, 4.0, 1800000, 50000},
	{"Gym", 1000000, 3, 7, 15, 50, 54, 24, 5, 8, 5000000, 125000},
	{"Cafe", 2500000, 4, 9, 25, 55, 75, 34, 6, 10, 12000000, 200000},
	{"Boutique", 6000000, 3, 5, 10, 55, 188, 85, 10, 15, 30000000, 375000},
	{"Restaurant", 20000000, 3, 7, 14, 60, 480, 216, 20, 30, 100000000, 750000},
	{"Nightclub", 60000000, 5, 10, 36, 50, 690, 310, 30, 50, 300000000, 1500000},
	{"Hotel", 250000000, 4, 14, 36, 60, 2800, 1260, 50, 100, 1250000000, 7500000},
	{"Tech", 1250000000, 8, 20, 110, 55, 5600, 2520, 100, 200, 6000000000, 30000000},
	{"Factory", 6000000000, 8, 25, 135, 55, 23000, 10350, 200, 400, 30000000000, 150000000},
	{"Bank", 60000000000, 6, 20, 77, 60, 253000, 113850, 500, 1000, 300000000000, 1250000000},
}

// ProgressionEntries returns the legacy-model business table.
func ProgressionEntries() []ProgressionEntry { return progressionEntries }

// Modifiers are the knobs of the legacy profit formula. BaseModifiers gives
// the neutral settings; a zero Employees derives the staff cap from Level.
type Modifiers struct {
	Level     int
	Branches  int
	Training  int
	Employees int

	RevenueMult  float64
	CostRed      float64
	CustomerMult float64
	OutputMult   float64
	QualityMult  float64

	Corporation   bool
	CategoryCount int
}

// BaseModifiers returns the neutral modifier set: level 1, no branches, no
// training, all multipliers 1.
func BaseModifiers() Modifiers {
	return Modifiers{
		Level:         1,
		RevenueMult:   1,
		CostRed:       1,
		CustomerMult:  1,
		OutputMult:    1,
		QualityMult:   1,
		CategoryCount: 1,
	}
}

// Outcome is one tick of the legacy profit formula.
type Outcome struct {
	Profit   float64
	Revenue  float64
	Costs    float64
	Sold     int
	Capacity int
	Demand   int
}

// Profit computes one tick of the legacy progression model under the given
// modifiers. Demand ignores level and branches entirely, which is the core
// problem the tuned model addresses: capacity explodes while demand stays
// flat, so almost all late investment is wasted.
func (e ProgressionEntry) Profit(m Modifiers) Outcome {
	employees := m.Employees
	if employees == 0 {
		employees = e.MaxEmployees + m.Level/5*2
	}

	levelMult := math.Pow(float64(m.Level), LevelOutputExp)
	trainingMult := 1 + float64(m.Training)*0.05
	effQual := float64(e.Quality) * m.QualityMult
	qf := 0.5 + effQual/100*1.5
	demand := int(float64(e.Customers) * qf * m.CustomerMult)

	effOut := float64(e.Output) * levelMult * trainingMult * m.OutputMult
	capacity := int(float64(employees) * effOut * (1 + float64(m.Branches)*0.5))
	sold := min(demand, capacity)

	geoMult, _ := GeoMultiplier(m.Branches)
	synergyMult := 1.0
	if m.CategoryCount > 1 {
		synergyMult = 1 + 0.1*math.Pow(float64(m.CategoryCount-1), 1.2)
	}
	corpMult := 1.0
	if m.Corporation {
		corpMult = 1 + 0.05*math.Pow(float64(m.CategoryCount), 1.5)
	}

	revenue := float64(sold) * e.OptPrice * geoMult * synergyMult * corpMult * m.RevenueMult

	wages := float64(employees) * e.Salary
	rent := e.Rent * (1 + float64(m.Branches)*0.3)
	costs := (wages + rent + e.Supply*float64(sold)) / m.CostRed

	return Outcome{
		Profit:   revenue - costs,
		Revenue:  revenue,
		Costs:    costs,
		Sold:     sold,
		Capacity: capacity,
		Demand:   demand,
	}
}

// GeoMultiplier returns the legacy revenue multiplier and tier label for a
// branch count.
func GeoMultiplier(branches int) (float64, string) {
	switch {
	case branches >= 50:
		return 12.0, "Interplan."
	case branches >= 40:
		return 7.0, "Global"
	case branches >= 30:
		return 4.0, "Continental"
	case branches >= 20:
		return 2.5, "National"
	case branches >= 10:
		return 1.5, "Regional"
	}
	return 1.0, "Local"
}

// InvestedTotal sums base * growth^i for i in [from, to]. It returns 0 when
// the range is empty, so "no levels bought yet" needs no special casing.
func InvestedTotal(base, growth float64, from, to int) float64 {
	total := 0.0
	for i := from; i <= to; i++ {
		total += base * math.Pow(growth, float64(i))
	}
	return total
}

// Upgrade is one universal business upgrade. The bonus at level L is
// BaseBonus x log2(L+1), already cumulative.
type Upgrade struct {
	Name      string
	BaseBonus float64
	BaseCost  float64
	Growth    float64
	Effect    string
}

var upgrades = []Upgrade{
	{"efficiency", 0.10, 1000, 1.25, "rev_mult"},
	{"bulk_disc", 0.05, 2000, 1.30, "cost_red"},
	{"brand", 0.08, 5000, 1.28, "cust_mult"},
	{"automation", 0.06, 10000, 1.35, "output_mult"},
	{"workforce", 2.0, 15000, 1.40, "emp_cap"},
}

// Upgrades returns the universal upgrade table.
func Upgrades() []Upgrade { return upgrades }

// Bonus returns the cumulative bonus at the given upgrade level.
func (u Upgrade) Bonus(level int) float64 {
	return u.BaseBonus * math.Log2(float64(level)+1)
}

// Advisor is one hireable advisor. Cost scales off the business purchase
// price: price x CostMult x CostGrowth^(level-1).
type Advisor struct {
	Name       string
	CostMult   float64
	CostGrowth float64
	BaseEffect float64
	Effect     string
}

var advisors = []Advisor{
	{"operations", 0.5, 2.0, 0.05, "cost_red (capped 90%)"},
	{"marketing", 0.4, 2.0, 0.10, "marketing_eff"},
	{"hr", 0.3, 1.8, 0.05, "output_boost"},
	{"cfo", 0.6, 2.2, 0.02, "auto_price_adjust"},
}

// Advisors returns the advisor table.
func Advisors() []Advisor { return advisors }
