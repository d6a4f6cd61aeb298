// Package sim holds the offline economy models used to sanity-check the
// tycoon's numbers: a one-tick snapshot of every business, the legacy
// progression model, and the tuned progression model that replaces it. All
// tables are literals; the simulators only read them.
package sim

import "math"

// A tick is 100ms of game time, so per-second figures are profit x 10 and
// payback in minutes is price / (profit x 10 x 60).
const ticksPerSecond = 10

// Business is one purchasable business at level 1 with a full staff,
// selling at the optimal price.
type Business struct {
	ID        string
	Price     float64
	Customers int
	Quality   int
	OptPrice  float64
	Output    int
	Employees int
	Salary    float64
	Rent      float64
	Supply    float64
}

// Snapshot is the single-tick economics of a Business.
type Snapshot struct {
	Demand   int
	Capacity int
	Sold     int

	Revenue float64
	Costs   float64
	Profit  float64

	// Margin is profit as a percentage of revenue, 0 when nothing sells.
	Margin float64
	// ROIMinutes is the payback time of the purchase price, +Inf at a loss.
	ROIMinutes float64
	// PerSecond is profit per real-time second.
	PerSecond float64
}

// Snapshot computes one tick of the business. Demand follows the quality
// factor, sales are capped by staff capacity, and supplies are only bought
// for units actually sold.
func (b Business) Snapshot() Snapshot {
	qf := 0.5 + float64(b.Quality)/100*1.5
	demand := int(math.Floor(float64(b.Customers) * qf))
	capacity := b.Employees * b.Output
	sold := min(demand, capacity)

	revenue := float64(sold) * b.OptPrice
	costs := float64(b.Employees)*b.Salary + b.Rent + b.Supply*float64(sold)
	profit := revenue - costs

	s := Snapshot{
		Demand:     demand,
		Capacity:   capacity,
		Sold:       sold,
		Revenue:    revenue,
		Costs:      costs,
		Profit:     profit,
		ROIMinutes: math.Inf(1),
		PerSecond:  profit * ticksPerSecond,
	}
	if revenue > 0 {
		s.Margin = profit / revenue * 100
	}
	if profit > 0 {
		s.ROIMinutes = b.Price / (profit * ticksPerSecond * 60)
	}
	return s
}

// currentBusinesses are the shipped values. Several rows lose money or
// waste most of their capacity, which is what the rebalance corrects.
var currentBusinesses = []Business{
	{"lemonade", 12000, 5, 50, 1.6, 4, 5, 0.55, 0.35, 0.65},
	{"newspaper", 35000, 8, 40, 2.4, 6, 8, 0.80, 0.60, 1.3},
	{"carwash", 120000, 4, 50, 8, 2, 6, 1.35, 2.3, 3.8},
	{"pizzeria", 350000, 8, 50, 6.5, 3, 10, 1.70, 4.6, 3.8},
	{"gym", 1000000, 6, 50, 16, 4, 12, 2.80, 9.0, 3.3},
	{"cafe", 2500000, 15, 55, 4, 6, 15, 2.0, 6.8, 2.2},
	{"boutique", 6000000, 5, 60, 32, 2, 8, 3.4, 14, 20},
	{"restaurant", 20000000, 4, 65, 48, 2, 10, 5.5, 20, 27.5},
	{"nightclub", 60000000, 12, 50, 20, 4, 15, 4.5, 33, 8.8},
	{"hotel", 250000000, 8, 60, 85, 2, 20, 9.0, 80, 38},
	{"tech_startup", 1250000000, 20, 50, 25, 5, 25, 16.5, 55, 5.5},
	{"factory", 6000000000, 15, 55, 100, 4, 30, 13.5, 160, 55},
	{"bank", 60000000000, 10, 60, 250, 3, 20, 44, 320, 27.5},
}

// rebalancedBusinesses are the proposed values. Targets: every business
// profitable at level 1 full staff, margins around 28-35%, payback from
// minutes (starter) to tens of hours (endgame), capacity close to demand.
var rebalancedBusinesses = []Business{
	{"lemonade", 12000, 5, 50, 1.6, 4, 5, 0.55, 0.35, 0.65},
	{"newspaper", 35000, 8, 45, 2.4, 4, 4, 0.70, 0.50, 1.25},
	{"carwash", 120000, 6, 50, 8, 2, 5, 1.40, 2.5, 3.9},
	{"gym", 1000000, 8, 50, 18, 2, 7, 3.20, 9.0, 8.5},
	{"hotel", 250000000, 16, 60, 120, 2, 14, 16.0, 95, 62},
	{"pizzeria", 350000, 10, 50, 7.0, 3, 6, 1.80, 4.5, 3.3},
	{"cafe", 2500000, 16, 55, 5.5, 3, 9, 2.20, 6.0, 2.5},
	{"restaurant", 20000000, 7, 60, 60, 2, 7, 8.00, 24, 31},
	{"boutique", 6000000, 6, 55, 38, 2, 5, 5.00, 14, 19},
	{"nightclub", 60000000, 20, 50, 28, 3, 10, 7.50, 35, 15},
	{"tech_startup", 1250000000, 50, 55, 150, 5, 20, 55.0, 120, 85},
	{"factory", 6000000000, 40, 55, 600, 4, 25, 120.0, 250, 350},
	{"bank", 60000000000, 20, 60, 6600, 3, 20, 600.0, 2500, 4200},
}

// CurrentBusinesses returns the shipped business table.
func CurrentBusinesses() []Business { return currentBusinesses }

// RebalancedBusinesses returns the proposed business table.
func RebalancedBusinesses() []Business { return rebalancedBusinesses }
