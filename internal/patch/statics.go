package patch

import (
	"regexp"
	"strings"

	"github.com/udisondev/tycoonbalance/internal/balance"
)

// Applied records one static override landing in a document. Value holds
// the literal as written.
type Applied struct {
	Key   string
	Value string
}

var (
	idRe          = regexp.MustCompile(`id:\s*'(\w+)'`)
	eraIDRe       = regexp.MustCompile(`id:\s*'(era_\w+)'`)
	milestoneIDRe = regexp.MustCompile(`id:\s*'(ms_\w+)'`)

	eraBonusRe = regexp.MustCompile(`(globalBonus:\s*)\d+\.?\d*`)
	effValueRe = regexp.MustCompile(`(effectValue:\s*)\d+\.?\d*`)
	perkValRe  = regexp.MustCompile(`(value:\s*)\d+\.?\d*`)
	rewardRe   = regexp.MustCompile(`\{\s*type:\s*'(\w+)',\s*value:\s*(\d+\.?\d*)`)
	coeffRe    = regexp.MustCompile(`mul\(prestige\.points,\s*(\d+\.?\d*)\)`)
)

// EraBonuses rewrites the globalBonus field of every known era. An era id
// arms the scanner; the next globalBonus line consumes it, armed or not.
func EraBonuses(doc *Document, eras map[string]float64) []Applied {
	var applied []Applied
	current := ""
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		if m := eraIDRe.FindStringSubmatch(line); m != nil {
			if _, ok := eras[m[1]]; ok {
				current = m[1]
			}
		}
		if current == "" || !strings.Contains(line, "globalBonus:") {
			continue
		}
		if loc := eraBonusRe.FindStringSubmatchIndex(line); loc != nil {
			v := balance.FormatValue(eras[current])
			doc.SetLine(i, line[:loc[3]]+v+line[loc[1]:])
			applied = append(applied, Applied{Key: current, Value: v})
		}
		current = ""
	}
	return applied
}

// UpgradeValues rewrites the effectValue field of every known prestige
// upgrade. Any id line re-arms the scanner, so an unknown upgrade between
// two known ones cannot leak a stale marker forward.
func UpgradeValues(doc *Document, upgrades map[string]float64) []Applied {
	var applied []Applied
	current := ""
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		if m := idRe.FindStringSubmatch(line); m != nil {
			current = m[1]
		}
		v, ok := upgrades[current]
		if !ok || !strings.Contains(line, "effectValue:") {
			continue
		}
		if loc := effValueRe.FindStringSubmatchIndex(line); loc != nil {
			s := balance.FormatValue(v)
			doc.SetLine(i, line[:loc[3]]+s+line[loc[1]:])
			applied = append(applied, Applied{Key: current, Value: s})
		}
		current = ""
	}
	return applied
}

// PerkValues rewrites the effect value of every known perk. Perk effects
// keep both keys on one line, so only lines carrying effect: and value:
// together are candidates.
func PerkValues(doc *Document, perks map[string]float64) []Applied {
	var applied []Applied
	current := ""
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		if m := idRe.FindStringSubmatch(line); m != nil {
			current = m[1]
		}
		v, ok := perks[current]
		if !ok || !strings.Contains(line, "effect:") || !strings.Contains(line, "value:") {
			continue
		}
		if loc := perkValRe.FindStringSubmatchIndex(line); loc != nil {
			s := balance.FormatValue(v)
			doc.SetLine(i, line[:loc[3]]+s+line[loc[1]:])
			applied = append(applied, Applied{Key: current, Value: s})
		}
		current = ""
	}
	return applied
}

// PerkDescriptions swaps stale wording in perk description lines. Each fix
// replaces the first occurrence of its old fragment; once replaced, reruns
// find nothing and leave the line alone. Returns the number of lines
// rewritten.
func PerkDescriptions(doc *Document, fixes map[string]balance.DescriptionFix) int {
	changed := 0
	current := ""
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		if m := idRe.FindStringSubmatch(line); m != nil {
			current = m[1]
		}
		fix, ok := fixes[current]
		if !ok || !strings.Contains(line, "description:") {
			continue
		}
		if strings.Contains(line, fix.Old) {
			doc.SetLine(i, strings.Replace(line, fix.Old, fix.New, 1))
			changed++
		}
	}
	return changed
}

// MilestoneRewards rewrites reward values keyed by milestone id and reward
// type. The milestone marker is sticky: it stays armed across the whole
// rewards block until the next milestone id appears. Returns the number of
// rewards written.
func MilestoneRewards(doc *Document, rewards map[balance.MilestoneReward]float64) int {
	changed := 0
	current := ""
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		if m := milestoneIDRe.FindStringSubmatch(line); m != nil {
			current = m[1]
		}
		if current == "" {
			continue
		}
		loc := rewardRe.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		rtype := line[loc[2]:loc[3]]
		v, ok := rewards[balance.MilestoneReward{ID: current, Reward: rtype}]
		if !ok {
			continue
		}
		doc.SetLine(i, line[:loc[4]]+balance.FormatReward(v)+line[loc[5]:])
		changed++
	}
	return changed
}

// PointsCoefficient rewrites every prestige-points coefficient in the
// multiplier composable. Returns the first coefficient found before the
// rewrite, or false when the call site is missing.
func PointsCoefficient(doc *Document, coeff float64) (string, bool) {
	content := doc.Content()
	m := coeffRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	repl := "mul(prestige.points, " + balance.FormatValue(coeff) + ")"
	doc.SetContent(coeffRe.ReplaceAllString(content, repl))
	return m[1], true
}
