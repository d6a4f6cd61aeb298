package balance

import (
	"math"
	"strconv"
	"strings"
)

// FormatMultiplier renders a curve multiplier exactly as it is stored in the
// skill files: fixed two decimals, sign included ("0.06", "-0.06").
func FormatMultiplier(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatPercent renders |v| as the percent string used in effect
// descriptions: rounded to one decimal, the decimal dropped when it is zero
// ("6", not "6.0"; "5.8" otherwise). The sign prefix is the caller's job.
func FormatPercent(v float64) string {
	p := math.Round(math.Abs(v)*1000) / 10
	if p == math.Trunc(p) {
		return strconv.Itoa(int(p))
	}
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// FormatValue renders a static override value in its minimal decimal form,
// matching how the tables are authored ("0", "0.03", "0.005").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatReward renders a milestone reward to at most four decimals with
// trailing zeros trimmed, always keeping one decimal digit ("0.008",
// "0.015", "1.0").
func FormatReward(v float64) string {
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
