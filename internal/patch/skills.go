package patch

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/udisondev/tycoonbalance/internal/balance"
)

// Options sets the backward scan windows and the rewrite tolerance. Windows
// count lines above the matched value line; a marker further away than the
// window is invisible and the occurrence is skipped.
type Options struct {
	RowWindow  int
	DescWindow int
	Tolerance  float64
}

// DefaultOptions matches the layout the skill files were authored against:
// the row marker sits within 7 lines of the multiplier, the description
// within 4.
func DefaultOptions() Options {
	return Options{RowWindow: 7, DescWindow: 4, Tolerance: 0.001}
}

var (
	nodeRe     = regexp.MustCompile(`target:\s*'(\w+)'.*?multiplier:\s*(-?\d+\.?\d*)`)
	rowRe      = regexp.MustCompile(`\brow:\s*(\d+)`)
	multRe     = regexp.MustCompile(`(multiplier:\s*)-?\d+\.?\d*`)
	nodeDescRe = regexp.MustCompile(`(effectDescription:\s*')[+-]\d+(?:\.\d+)?(%)`)
)

// SkillNodes rewrites every skill-node multiplier whose curve value moved by
// at least opt.Tolerance, and keeps the node's effect description in step.
// Nodes with no row marker in the window, an unknown target, or an
// up-to-date value are left untouched. Returns the number of nodes
// rewritten.
func SkillNodes(doc *Document, tbl balance.Table, opt Options) int {
	changed := 0
	for i := 0; i < doc.Len(); i++ {
		m := nodeRe.FindStringSubmatch(doc.Line(i))
		if m == nil {
			continue
		}
		target := m[1]
		oldMult, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}

		row, ok := scanRow(doc, i, opt.RowWindow)
		if !ok {
			continue
		}
		newMult, ok := tbl.Evaluate(row, target)
		if !ok {
			continue
		}
		if math.Abs(newMult-oldMult) < opt.Tolerance {
			continue
		}

		line := doc.Line(i)
		loc := multRe.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		doc.SetLine(i, line[:loc[3]]+balance.FormatMultiplier(newMult)+line[loc[1]:])
		syncDescription(doc, i, newMult, opt.DescWindow)
		changed++
	}
	return changed
}

// scanRow walks backward from line i looking for the node's row marker.
func scanRow(doc *Document, i, window int) (int, bool) {
	for j := i - 1; j >= 0 && j >= i-window; j-- {
		if m := rowRe.FindStringSubmatch(doc.Line(j)); m != nil {
			row, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, false
			}
			return row, true
		}
	}
	return 0, false
}

// syncDescription rewrites the signed percentage inside the nearest
// effectDescription above line i. Only the first description line in the
// window is considered; if its text carries no percentage it stays as is.
func syncDescription(doc *Document, i int, mult float64, window int) {
	sign := "+"
	if mult < 0 {
		sign = "-"
	}
	pct := balance.FormatPercent(mult)
	for j := i - 1; j >= 0 && j >= i-window; j-- {
		line := doc.Line(j)
		if !strings.Contains(line, "effectDescription") {
			continue
		}
		if loc := nodeDescRe.FindStringSubmatchIndex(line); loc != nil {
			doc.SetLine(j, line[:loc[3]]+sign+pct+line[loc[4]:])
		}
		return
	}
}
