// Command simbalance prints a one-tick snapshot of every business at level
// 1, full staff and optimal price, first under the shipped values and then
// under the rebalanced ones. Rows that lose money are flagged.
//
// Usage:
//
//	go run ./cmd/simbalance
package main

import (
	"fmt"
	"strings"

	"github.com/udisondev/tycoonbalance/internal/sim"
)

func main() {
	report("CURRENT (BROKEN)", sim.CurrentBusinesses())
	report("REBALANCED", sim.RebalancedBusinesses())
}

func report(label string, businesses []sim.Business) {
	fmt.Printf("\n=== %s ===\n", label)
	fmt.Printf("%-15s | %4s %4s %4s | %10s %10s %10s | %7s | %10s | %8s\n",
		"ID", "dmd", "cap", "sold", "revenue", "costs", "profit", "margin", "ROI min", "$/s")
	fmt.Println(strings.Repeat("-", 110))

	for _, b := range businesses {
		s := b.Snapshot()
		status := "OK"
		if s.Profit <= 0 {
			status = "LOSS!"
		}
		fmt.Printf("%-15s | %4d %4d %4d | %10.1f %10.1f %10.1f | %6.1f%% | %10.1f | %8.1f %s\n",
			b.ID, s.Demand, s.Capacity, s.Sold,
			s.Revenue, s.Costs, s.Profit,
			s.Margin, s.ROIMinutes, s.PerSecond, status)
	}
}
