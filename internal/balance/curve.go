// Package balance holds the progression-curve model and the hand-authored
// value tables for the business-tycoon rebalance. Everything here is static
// data plus pure arithmetic; the patch package decides where the values land.
package balance

import "math"

// MaxRow is the last row of a skill tree track.
const MaxRow = 17

// Curve is one target's multiplier progression: Base at row 0, Top at
// MaxRow, linear in between. Base and Top are magnitudes; the sign of
// cost-reduction targets is applied at evaluation time.
type Curve struct {
	Base float64
	Top  float64
}

// Table bundles the curves with the checkpoint policy for a rebalance run.
// It is passed by value and never mutated after construction.
type Table struct {
	Curves   map[string]Curve
	Negative map[string]bool

	MaxRow            int
	ConvergenceRows   []int
	ConvergenceFactor float64
	CapstoneFactor    float64
}

// DefaultTable returns the authored progression curves.
//
// Design targets with everything maxed (all 5 skill trees + full prestige):
//
//	allIncome           x5-8
//	businessRevenue     x3-5
//	customerAttraction  x3-4
//	jobEfficiency       x3-5
//	costReduction       x0.45-0.55
//	stockReturn         x3-5
//	cryptoReturn        x3-4
//	realEstateRent      x3-4
//	gamblingLuck        x6-10
//	offlineEfficiency   x3-4
//	xpGain              x3-5
//	prestigeGain        x4-6
//	loanRate            x0.70-0.85
//	depositRate         x1.5-2.5
func DefaultTable() Table {
	return Table{
		Curves: map[string]Curve{
			"allIncome":          {0.01, 0.03}, // ~71 nodes → product ~x5
			"businessRevenue":    {0.02, 0.06}, // ~25 nodes → product ~x3
			"customerAttraction": {0.03, 0.08}, // ~18 nodes → product ~x3
			"jobEfficiency":      {0.05, 0.14}, // ~10 nodes → product ~x3
			"costReduction":      {0.02, 0.06}, // ~15 nodes (negative)
			"stockReturn":        {0.03, 0.08}, // ~20 nodes → product ~x3
			"cryptoReturn":       {0.03, 0.09}, // ~15 nodes → product ~x3
			"realEstateRent":     {0.03, 0.09}, // ~15 nodes → product ~x3
			"gamblingLuck":       {0.02, 0.06}, // ~42 nodes → product ~x6
			"offlineEfficiency":  {0.03, 0.09}, // ~15 nodes → product ~x3
			"xpGain":             {0.03, 0.08}, // ~20 nodes → product ~x3
			"prestigeGain":       {0.02, 0.06}, // ~30 nodes → product ~x4
			"loanRate":           {0.02, 0.06}, // ~5 nodes (negative)
			"depositRate":        {0.05, 0.12}, // ~5 nodes → product ~x1.5
		},
		Negative: map[string]bool{
			"costReduction": true,
			"loanRate":      true,
		},
		MaxRow:            MaxRow,
		ConvergenceRows:   []int{8, 12, 16},
		ConvergenceFactor: 1.5,
		CapstoneFactor:    2.0,
	}
}

// Evaluate returns the multiplier for a node at the given row, or ok=false
// when the target has no configured curve. The magnitude is interpolated
// between Base and Top (clamped at MaxRow, never extrapolated), boosted at
// checkpoint rows, rounded to 2 decimals, and floored at 0.01. The capstone
// factor wins over the convergence factor at MaxRow.
func (t Table) Evaluate(row int, target string) (float64, bool) {
	c, ok := t.Curves[target]
	if !ok {
		return 0, false
	}

	f := math.Min(float64(row)/float64(t.MaxRow), 1.0)
	m := c.Base + (c.Top-c.Base)*f

	switch {
	case row == t.MaxRow:
		m *= t.CapstoneFactor
	case t.convergence(row):
		m *= t.ConvergenceFactor
	}

	m = math.Round(m*100) / 100
	if m < 0.01 {
		m = 0.01
	}
	if t.Negative[target] {
		m = -m
	}
	return m, true
}

func (t Table) convergence(row int) bool {
	for _, r := range t.ConvergenceRows {
		if r == row {
			return true
		}
	}
	return false
}
