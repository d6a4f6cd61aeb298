// Command simrebalanced verifies the tuned progression model against the
// live business data: demand now scales with level and branches, expansion
// tiers arrive earlier, and branch/training costs grow slower. Each business
// is walked through levels, branches, training, and three combined scenarios.
//
// Usage:
//
//	go run ./cmd/simrebalanced
package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/udisondev/tycoonbalance/internal/sim"
)

func main() {
	for _, b := range sim.TunedBusinesses() {
		report(b)
	}
}

func comma(n float64) string {
	return humanize.Commaf(math.Round(n))
}

// roiStr formats a payback in minutes from a cost and its marginal profit.
func roiStr(cost, marginal float64) string {
	if marginal > 0 {
		return fmt.Sprintf("%.1f", cost/marginal/600)
	}
	return "INF"
}

func report(b sim.TunedBusiness) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 90))
	fmt.Printf("  %s (purchase %s)\n", b.Name, sim.Money(b.Price))
	fmt.Println(strings.Repeat("=", 90))

	d0 := sim.Demand(b.BaseCust, float64(b.Quality))

	// one employee, straight after purchase
	c0 := b.OutPerEmp
	s0 := min(d0, c0)
	r0 := float64(s0) * b.OptPrice
	p0 := r0 - sim.OperatingCosts(1, b.Salary, b.Rent, b.Supply, s0, 0)
	if p0 > 0 {
		fmt.Printf("  Baseline (L1, 1 emp): D=%d, Cap=%d, Sold=%d, Profit=%.1f/tick, ROI=%.1fmin\n",
			d0, c0, s0, p0, b.Price/p0/600)
	} else {
		fmt.Println("  Baseline LOSS")
	}

	cF := b.MaxEmployees * b.OutPerEmp
	sF := min(d0, cF)
	rF := float64(sF) * b.OptPrice
	pF := rF - sim.OperatingCosts(b.MaxEmployees, b.Salary, b.Rent, b.Supply, sF, 0)
	fmt.Printf("  Full staff (L1, %d emp): D=%d, Cap=%d, Sold=%d, Profit=%.1f/tick\n",
		b.MaxEmployees, d0, cF, sF, pF)

	levels(b, d0, pF)
	branches(b, d0, pF)
	training(b, pF)
	combined(b, pF)
}

func levels(b sim.TunedBusiness, d0 int, pF float64) {
	fmt.Println("\n  LEVELS:")
	fmt.Printf("  %4s %14s %4s %8s %7s %6s %5s %12s %10s %10s\n",
		"Lv", "Cost", "Emp", "LvCustX", "Demand", "Cap", "Sold", "Profit", "Marg", "ROI min")

	prev := pF
	for _, lv := range []int{1, 2, 3, 5, 10, 15, 20, 25, 50} {
		cost := b.Price * math.Pow(sim.LevelCostGrowth, float64(lv))
		lvMult := math.Pow(float64(lv), sim.LevelOutputExp)
		emp := b.MaxEmployees + lv/5*2
		custMult := sim.LevelCustomerMult(lv)
		demand := int(math.Floor(float64(d0) * custMult))
		capacity := int(math.Floor(float64(emp*b.OutPerEmp) * lvMult))
		sold := min(demand, capacity)
		profit := float64(sold)*b.OptPrice - sim.OperatingCosts(emp, b.Salary, b.Rent, b.Supply, sold, 0)

		fmt.Printf("  %4d %14s %4d %8.3f %7d %6d %5d %12.1f %10.1f %10s\n",
			lv, comma(cost), emp, custMult, demand, capacity, sold, profit, profit-prev, roiStr(cost, profit-prev))
		prev = profit
	}
}

func branches(b sim.TunedBusiness, d0 int, pF float64) {
	fmt.Printf("\n  BRANCHES (growth %v):\n", sim.BranchCostGrowthTuned)
	fmt.Printf("  %4s %14s %7s %5s %7s %6s %5s %12s %10s %10s %s\n",
		"Br", "Cost", "BrCusX", "Geo", "Demand", "Cap", "Sold", "Profit", "Marg", "ROI min", "Tier")

	prev := pF
	for _, br := range []int{1, 2, 3, 5, 8, 10, 12, 15, 20, 25, 30, 45} {
		cost := b.BranchBase * math.Pow(sim.BranchCostGrowthTuned, float64(br))
		geo := sim.GeoFor(br)
		custMult := sim.BranchCustomerMult(br)
		demand := int(math.Floor(float64(d0) * custMult))
		capacity := int(math.Floor(float64(b.MaxEmployees*b.OutPerEmp) * (1 + float64(br)*0.5)))
		sold := min(demand, capacity)
		revenue := float64(sold) * b.OptPrice * geo.Mult
		profit := revenue - sim.OperatingCosts(b.MaxEmployees, b.Salary, b.Rent, b.Supply, sold, br)

		fmt.Printf("  %4d %14s %7.2f %5.1f %7d %6d %5d %12.1f %10.1f %10s %s\n",
			br, comma(cost), custMult, geo.Mult, demand, capacity, sold, profit, profit-prev,
			roiStr(cost, profit-prev), geo.Name)
		prev = profit
	}
}

func training(b sim.TunedBusiness, pF float64) {
	fmt.Printf("\n  TRAINING (growth %v):\n", sim.TrainingCostGrowthTuned)
	fmt.Printf("  %4s %14s %8s %7s %5s %5s %12s %10s %10s\n",
		"TL", "Cost", "EffQual", "Demand", "Cap", "Sold", "Profit", "Marg", "ROI min")

	prev := pF
	for _, tl := range []int{1, 2, 3, 5, 8, 10, 15, 20} {
		cost := b.TrainingBase * math.Pow(sim.TrainingCostGrowthTuned, float64(tl))
		effQual := sim.EffectiveQuality(b.Quality, tl)
		trainMult := 1 + float64(tl)*0.05
		demand := sim.Demand(b.BaseCust, effQual)
		capacity := int(math.Floor(float64(b.MaxEmployees*b.OutPerEmp) * trainMult))
		sold := min(demand, capacity)
		profit := float64(sold)*b.OptPrice - sim.OperatingCosts(b.MaxEmployees, b.Salary, b.Rent, b.Supply, sold, 0)

		fmt.Printf("  %4d %14s %8.1f %7d %5d %5d %12.1f %10.1f %10s\n",
			tl, comma(cost), effQual, demand, capacity, sold, profit, profit-prev, roiStr(cost, profit-prev))
		prev = profit
	}
}

func combined(b sim.TunedBusiness, pF float64) {
	scenarios := []struct {
		label string
		lv    int
		br    int
		tl    int
	}{
		{"Mid-game", 10, 10, 5},
		{"Corporation", 25, 15, 10},
		{"Late-game", 50, 30, 20},
	}

	for _, sc := range scenarios {
		lvMult := math.Pow(float64(sc.lv), sim.LevelOutputExp)
		trainMult := 1 + float64(sc.tl)*0.05
		emp := b.MaxEmployees + sc.lv/5*2
		effQual := sim.EffectiveQuality(b.Quality, sc.tl)
		geo := sim.GeoFor(sc.br)

		demand := int(math.Floor(float64(sim.Demand(b.BaseCust, effQual)) *
			sim.LevelCustomerMult(sc.lv) * sim.BranchCustomerMult(sc.br)))
		capacity := int(math.Floor(float64(emp*b.OutPerEmp) * lvMult * trainMult * (1 + float64(sc.br)*0.5)))
		sold := min(demand, capacity)

		corpMult := 1.0
		if sc.label == "Corporation" {
			corpMult = 1 + 0.15*math.Pow(2, 1.5)
		}
		revenue := float64(sold) * b.OptPrice * geo.Mult * corpMult
		profit := revenue - sim.OperatingCosts(emp, b.Salary, b.Rent, b.Supply, sold, sc.br)

		totalInv := b.Price +
			sim.InvestedTotal(b.Price, sim.LevelCostGrowth, 1, sc.lv-1) +
			sim.InvestedTotal(b.BranchBase, sim.BranchCostGrowthTuned, 1, sc.br) +
			sim.InvestedTotal(b.TrainingBase, sim.TrainingCostGrowthTuned, 1, sc.tl)

		roi := "LOSS"
		if profit > 0 {
			roi = fmt.Sprintf("%.1fmin", totalInv/profit/600)
		}

		fmt.Printf("\n  %s (L%d+%dbr+TL%d): D=%d, Cap=%d, Sold=%d, %s\n",
			sc.label, sc.lv, sc.br, sc.tl, demand, capacity, sold, geo.Name)
		fmt.Printf("    Profit=%.1f/tick (%.1fx baseline), Invested=%s, ROI=%s\n",
			profit, profit/math.Max(0.01, pF), sim.Money(totalInv), roi)
	}
}
