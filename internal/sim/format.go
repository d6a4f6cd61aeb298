package sim

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Short abbreviates a quantity the way the in-game HUD does: one decimal
// with a K/M/B/T suffix past a thousand.
func Short(n float64) string {
	a := math.Abs(n)
	switch {
	case a >= 1e12:
		return strconv.FormatFloat(n/1e12, 'f', 1, 64) + "T"
	case a >= 1e9:
		return strconv.FormatFloat(n/1e9, 'f', 1, 64) + "B"
	case a >= 1e6:
		return strconv.FormatFloat(n/1e6, 'f', 1, 64) + "M"
	case a >= 1e3:
		return strconv.FormatFloat(n/1e3, 'f', 1, 64) + "K"
	}
	return strconv.FormatFloat(n, 'f', 1, 64)
}

// Money renders a whole-dollar amount with thousands separators.
func Money(n float64) string {
	return "$" + humanize.Commaf(math.Round(n))
}
