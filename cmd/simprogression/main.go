// Command simprogression analyzes the legacy progression model end to end:
// level-up, branch and training payback, universal upgrades, advisors, and
// the corporation threshold. Its output is the evidence base for the tuned
// growth rates.
//
// Usage:
//
//	go run ./cmd/simprogression
package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/udisondev/tycoonbalance/internal/sim"
)

func main() {
	levelAnalysis()
	branchAnalysis()
	trainingAnalysis()
	upgradeAnalysis()
	advisorAnalysis()
	corporationAnalysis()

	fmt.Println("\n\nDONE.")
}

func banner(lines ...string) {
	fmt.Println(strings.Repeat("=", 130))
	for _, l := range lines {
		fmt.Println(l)
	}
	fmt.Println(strings.Repeat("=", 130))
}

// roiStr formats a payback in minutes, collapsing absurd values to INF.
func roiStr(roi float64, limit float64) string {
	if roi < limit {
		return fmt.Sprintf("%.1fm", roi)
	}
	return "INF"
}

func levelAnalysis() {
	banner(
		"1. LEVEL-UP ROI (max employees at each level, no branches/training/upgrades)",
		"   Shows: how much each level costs, profit gain, and ROI of that single level",
	)

	for _, e := range sim.ProgressionEntries() {
		fmt.Printf("\n--- %s (price=%s) ---\n", e.Name, sim.Short(e.Price))
		fmt.Printf("%4s %14s %14s %5s %7s %5s %12s %12s %10s %10s\n",
			"Lvl", "LvlCost", "TotalInv", "MaxE", "Cap", "Sold", "Prof/t", "Prof/s", "ROI_lvl", "ROI_total")

		prevProfS := 0.0
		for _, lvl := range []int{1, 2, 3, 5, 10, 15, 20, 25, 50} {
			lvlCost := 0.0
			if lvl > 1 {
				lvlCost = e.Price * math.Pow(sim.LevelCostGrowth, float64(lvl))
			}
			totalInv := e.Price + sim.InvestedTotal(e.Price, sim.LevelCostGrowth, 2, lvl)

			m := sim.BaseModifiers()
			m.Level = lvl
			out := e.Profit(m)
			profS := out.Profit * 10
			curMaxE := e.MaxEmployees + lvl/5*2

			marginal := profS - prevProfS
			roiLvl := 0.0
			if marginal > 0 && lvl > 1 {
				roiLvl = lvlCost / (marginal * 60)
			}
			roiTotal := math.Inf(1)
			if profS > 0 {
				roiTotal = totalInv / (profS * 60)
			}
			prevProfS = profS

			fmt.Printf("%4d %14s %14s %5d %7d %5d %12s %12s %10s %10s\n",
				lvl, sim.Short(lvlCost), sim.Short(totalInv), curMaxE, out.Capacity, out.Sold,
				sim.Short(out.Profit), sim.Short(profS), roiStr(roiLvl, 9999), roiStr(roiTotal, 99999))
		}
	}
}

func branchAnalysis() {
	fmt.Print("\n\n")
	banner(
		"2. BRANCH ROI (level=1, max base employees, adding branches)",
		"   Key question: is the branch cost justified by the production increase?",
	)

	for _, e := range sim.ProgressionEntries() {
		fmt.Printf("\n--- %s (branchBaseCost=%s) ---\n", e.Name, sim.Short(e.BranchCost))
		fmt.Printf("%4s %14s %14s %7s %5s %12s %10s %12s %12s %10s %12s\n",
			"Br", "BrCost", "TotalBrInv", "Cap", "Sold", "Rev/t", "Cost/t", "Prof/t", "Prof/s", "BR_ROI", "GeoTier")

		prevProfS := 0.0
		for _, br := range []int{0, 1, 2, 5, 10, 15, 20, 25, 30, 40, 50} {
			brCost := 0.0
			if br > 0 {
				brCost = e.BranchCost * math.Pow(sim.BranchCostGrowth, float64(br))
			}
			totalInv := sim.InvestedTotal(e.BranchCost, sim.BranchCostGrowth, 1, br)

			m := sim.BaseModifiers()
			m.Branches = br
			m.Employees = e.MaxEmployees
			out := e.Profit(m)
			profS := out.Profit * 10
			_, geo := sim.GeoMultiplier(br)

			marginal := profS - prevProfS
			brRoi := 0.0
			if marginal > 0 && br > 0 {
				brRoi = brCost / (marginal * 60)
			}
			prevProfS = profS

			fmt.Printf("%4d %14s %14s %7d %5d %12s %10s %12s %12s %10s %12s\n",
				br, sim.Short(brCost), sim.Short(totalInv), out.Capacity, out.Sold,
				sim.Short(out.Revenue), sim.Short(out.Costs), sim.Short(out.Profit), sim.Short(profS),
				roiStr(brRoi, 999999), geo)
		}
	}
}

func trainingAnalysis() {
	fmt.Print("\n\n")
	banner(
		"3. TRAINING ROI (level=1, max base employees, no branches)",
		"   Each training level = +5% output multiplier",
	)

	for _, e := range sim.ProgressionEntries() {
		fmt.Printf("\n--- %s (trainBaseCost=%s) ---\n", e.Name, sim.Short(e.TrainingCost))
		fmt.Printf("%6s %14s %14s %8s %7s %5s %12s %12s %10s\n",
			"TrLvl", "TrCost", "TotalTrInv", "EffOut", "Cap", "Sold", "Prof/t", "Prof/s", "TR_ROI")

		prevProfS := 0.0
		for _, tl := range []int{0, 1, 2, 3, 5, 10, 15, 20} {
			trCost := 0.0
			if tl > 0 {
				trCost = e.TrainingCost * math.Pow(sim.TrainingCostGrowth, float64(tl))
			}
			totalInv := sim.InvestedTotal(e.TrainingCost, sim.TrainingCostGrowth, 1, tl)

			m := sim.BaseModifiers()
			m.Training = tl
			m.Employees = e.MaxEmployees
			out := e.Profit(m)
			profS := out.Profit * 10
			effOut := float64(e.Output) * (1 + float64(tl)*0.05)

			marginal := profS - prevProfS
			trRoi := 0.0
			if marginal > 0 && tl > 0 {
				trRoi = trCost / (marginal * 60)
			}
			prevProfS = profS

			fmt.Printf("%6d %14s %14s %8.2f %7d %5d %12s %12s %10s\n",
				tl, sim.Short(trCost), sim.Short(totalInv), effOut, out.Capacity, out.Sold,
				sim.Short(out.Profit), sim.Short(profS), roiStr(trRoi, 999999))
		}
	}
}

func upgradeAnalysis() {
	fmt.Print("\n\n")
	banner(
		"4. UPGRADE ROI (universal upgrades at various levels)",
		"   Bonus at level L is base_bonus x log2(L+1), cost is base_cost x growth^L",
	)

	for _, u := range sim.Upgrades() {
		fmt.Printf("\n--- %s (%s, base_bonus=%v, base_cost=%s, growth=%vx) ---\n",
			u.Name, u.Effect, u.BaseBonus, sim.Short(u.BaseCost), u.Growth)
		fmt.Printf("%4s %14s %14s %10s\n", "Lvl", "Cost", "TotalInv", "Bonus")
		for _, lvl := range []int{1, 2, 3, 5, 10, 15, 20, 30, 50} {
			cost := u.BaseCost * math.Pow(u.Growth, float64(lvl))
			totalInv := sim.InvestedTotal(u.BaseCost, u.Growth, 1, lvl)
			fmt.Printf("%4d %14s %14s %10.3f\n", lvl, sim.Short(cost), sim.Short(totalInv), u.Bonus(lvl))
		}
	}

	upgradeImpact()
}

// upgradeImpact shows what each upgrade line buys on a mid-game business.
func upgradeImpact() {
	nightclub := sim.ProgressionEntries()[8]
	base := nightclub.Profit(sim.BaseModifiers())
	baseProfS := base.Profit * 10

	fmt.Printf("\n\n--- UPGRADE IMPACT ON %s (lvl=1, maxE=%d, 0 branches) ---\n",
		strings.ToUpper(nightclub.Name), nightclub.MaxEmployees)
	fmt.Printf("Base profit/s: %s\n", sim.Short(baseProfS))

	for _, u := range sim.Upgrades() {
		for _, lvl := range []int{5, 10, 20} {
			bonus := u.Bonus(lvl)
			totalInv := sim.InvestedTotal(u.BaseCost, u.Growth, 1, lvl)

			m := sim.BaseModifiers()
			switch u.Effect {
			case "rev_mult":
				m.RevenueMult = 1 + bonus
			case "cost_red":
				m.CostRed = 1 + bonus
			case "cust_mult":
				m.CustomerMult = 1 + bonus
			case "output_mult":
				m.OutputMult = 1 + bonus
			case "emp_cap":
				m.Employees = nightclub.MaxEmployees + int(bonus)
			}

			profS := nightclub.Profit(m).Profit * 10
			gain := profS - baseProfS
			roi := math.Inf(1)
			if gain > 0 {
				roi = totalInv / (gain * 60)
			}
			fmt.Printf("  %s lvl %d: bonus=%.3f, cost=%s, profS=%s, gain=%s/s, ROI=%s\n",
				u.Name, lvl, bonus, sim.Short(totalInv), sim.Short(profS), sim.Short(gain), roiStr(roi, 999999))
		}
	}
}

func advisorAnalysis() {
	fmt.Print("\n\n")
	banner("5. ADVISOR COSTS (cost = purchasePrice x baseCostMult x costGrowth ^ level)")

	entries := sim.ProgressionEntries()
	for _, e := range []sim.ProgressionEntry{entries[0], entries[4], entries[8], entries[12]} {
		fmt.Printf("\n--- %s (price=%s) ---\n", e.Name, sim.Short(e.Price))
		for _, adv := range sim.Advisors() {
			fmt.Printf("  %s (%s):\n", adv.Name, adv.Effect)
			for _, lvl := range []int{1, 2, 3, 5, 10} {
				cost := e.Price * adv.CostMult * math.Pow(adv.CostGrowth, float64(lvl-1))
				total := sim.InvestedTotal(e.Price*adv.CostMult, adv.CostGrowth, 0, lvl-1)
				effect := adv.BaseEffect * float64(lvl)
				fmt.Printf("    Lvl %d: cost=%s, total=%s, effect=%.0f%%\n",
					lvl, sim.Short(cost), sim.Short(total), effect*100)
			}
		}
	}
}

func corporationAnalysis() {
	fmt.Print("\n\n")
	banner(
		"6. CORPORATION REQUIREMENTS & COST",
		fmt.Sprintf("   Requires: level >= %d, branches >= %d", sim.CorporationLevel, sim.CorporationBranches),
		"   Shows total investment needed to reach requirements",
	)

	for _, e := range sim.ProgressionEntries() {
		lvlInv := sim.InvestedTotal(e.Price, sim.LevelCostGrowth, 2, sim.CorporationLevel)
		brInv := sim.InvestedTotal(e.BranchCost, sim.BranchCostGrowth, 1, sim.CorporationBranches)
		totalInv := e.Price + lvlInv + brInv

		m := sim.BaseModifiers()
		m.Level = sim.CorporationLevel
		m.Branches = sim.CorporationBranches
		m.Corporation = true
		corp := e.Profit(m)
		corpProfS := corp.Profit * 10

		m.Corporation = false
		plainProfS := e.Profit(m).Profit * 10

		totalRoi := math.Inf(1)
		if corpProfS > 0 {
			totalRoi = totalInv / (corpProfS * 60)
		}

		fmt.Printf("%12s: lvlInv=%s, brInv=%s, total=%s\n",
			e.Name, sim.Short(lvlInv), sim.Short(brInv), sim.Short(totalInv))
		fmt.Printf("%12s  profS(corp)=%s, profS(no-corp)=%s, corp_gain=%s/s, totalROI=%.1fm\n",
			"", sim.Short(corpProfS), sim.Short(plainProfS), sim.Short(corpProfS-plainProfS), totalRoi)
	}
}
