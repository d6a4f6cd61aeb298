package patch

import (
	"github.com/shopspring/decimal"
)

// TargetStat tallies one target across the skill trees: how many nodes
// grant it and the compounded product of (1 + multiplier) over all of them.
type TargetStat struct {
	Count   int
	Product decimal.Decimal
}

// Tally scans content for skill nodes and folds each occurrence into stats.
// Multiplier literals feed the product exactly as written, so the result
// reflects the files rather than any recomputation.
func Tally(content string, stats map[string]*TargetStat) {
	for _, m := range nodeRe.FindAllStringSubmatch(content, -1) {
		v, err := decimal.NewFromString(m[2])
		if err != nil {
			continue
		}
		st := stats[m[1]]
		if st == nil {
			st = &TargetStat{Product: decimal.NewFromInt(1)}
			stats[m[1]] = st
		}
		st.Count++
		st.Product = st.Product.Mul(decimal.NewFromInt(1).Add(v))
	}
}
