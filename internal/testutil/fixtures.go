// Package testutil provides canned game data files shaped like the real
// renderer source tree, so integration tests can run the rebalance passes
// end to end without the game checkout.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixtures holds the synthetic data files. Values are deliberately stale
// so that every pass has work to do on the first run.
var Fixtures = struct {
	BusinessTree string
	XPTree       string
	Eras         string
	Upgrades     string
	Perks        string
	Milestones   string
	Composable   string
}{
	BusinessTree: `import type { SkillNode } from '../types'

export const BUSINESS_TREE: SkillNode[] = [
  {
    id: 'biz_0',
    row: 0,
    col: 1,
    name: 'Street Stand',
    icon: '🛒',
    cost: 1,
    effectDescription: '+2% business revenue',
    effects: [{ target: 'businessRevenue', multiplier: 0.02 }],
    requires: [],
  },
  {
    id: 'biz_8',
    row: 8,
    col: 1,
    name: 'Chain Store',
    icon: '🏪',
    cost: 3,
    effectDescription: '+4% business revenue',
    effects: [{ target: 'businessRevenue', multiplier: 0.04 }],
    requires: ['biz_0'],
  },
  {
    id: 'biz_cost_8',
    row: 8,
    col: 2,
    name: 'Lean Operations',
    icon: '✂️',
    cost: 3,
    effectDescription: '-3% operating costs',
    effects: [{ target: 'costReduction', multiplier: -0.03 }],
    requires: ['biz_0'],
  },
  {
    id: 'biz_17',
    row: 17,
    col: 1,
    name: 'Business Empire',
    icon: '👑',
    cost: 10,
    effectDescription: '+5% business revenue',
    effects: [{ target: 'businessRevenue', multiplier: 0.05 }],
    requires: ['biz_8'],
  },
  {
    id: 'biz_cap',
    row: 17,
    col: 2,
    name: 'Tycoon',
    icon: '💎',
    cost: 10,
    effectDescription: '+3% all income',
    effects: [{ target: 'allIncome', multiplier: 0.03 }],
    requires: ['biz_17'],
  },
]
`,
	XPTree: `import type { SkillNode } from '../types'

export const XP_TREE: SkillNode[] = [
  {
    id: 'xp_10',
    row: 10,
    col: 0,
    name: 'Scholar',
    icon: '📚',
    cost: 4,
    effectDescription: '+4% XP gain',
    effects: [{ target: 'xpGain', multiplier: 0.04 }],
    requires: [],
  },
  {
    id: 'xp_12',
    row: 12,
    col: 0,
    name: 'Professor',
    icon: '🎓',
    cost: 5,
    effectDescription: '+6% XP gain',
    effects: [{ target: 'xpGain', multiplier: 0.06 }],
    requires: ['xp_10'],
  },
]
`,
	Eras: `import type { Era } from '../types'

export const ERAS: Era[] = [
  {
    id: 'era_humble',
    name: 'Humble Beginnings',
    minPrestige: 0,
    globalBonus: 0.05,
  },
  {
    id: 'era_rising',
    name: 'Rising Star',
    minPrestige: 10,
    globalBonus: 0.1,
  },
  {
    id: 'era_eternal',
    name: 'Eternal Dynasty',
    minPrestige: 10000,
    globalBonus: 0.4,
  },
]
`,
	Upgrades: `import type { PrestigeUpgrade } from '../types'

export const PRESTIGE_UPGRADES: PrestigeUpgrade[] = [
  {
    id: 'pup_global_1',
    name: 'Global Boost I',
    effectValue: 0.1,
  },
  {
    id: 'pup_extra',
    name: 'Experimental',
    effectValue: 0.5,
  },
  {
    id: 'pup_loan_discount',
    name: 'Loan Haggler',
    effectValue: 0.02,
  },
]
`,
	Perks: `import type { Perk } from '../types'

export const PERKS: Perk[] = [
  {
    id: 'perk_golden_touch',
    name: 'Golden Touch',
    description: 'Next purchase grants +50% to all income for 10 minutes',
    effect: { type: 'income_boost', value: 0.5 },
  },
  {
    id: 'perk_tax_haven',
    name: 'Tax Haven',
    description: 'Permanently reduce loan rates by 3%',
    effect: { type: 'loan_discount', value: 0.03 },
  },
]
`,
	Milestones: `import type { Milestone } from '../types'

export const MILESTONES: Milestone[] = [
  {
    id: 'ms_points_10',
    name: 'First Steps',
    threshold: 10,
    rewards: [
      { type: 'global_multiplier', value: 0.05 },
    ],
  },
  {
    id: 'ms_rebirth_50',
    name: 'Serial Founder',
    threshold: 50,
    rewards: [
      { type: 'global_multiplier', value: 0.1 },
      { type: 'prestige_gain', value: 0.1 },
      { type: 'offline_bonus', value: 0.1 },
    ],
  },
]
`,
	Composable: `import { computed } from 'vue'
import { mul } from './useMath'

export const usePrestigeMultiplier = () => {
  const prestigeMult = computed(() => {
    let m = mul(prestige.points, 0.001)
    if (eraBonus.value > 0) m = m * (1 + eraBonus.value)
    return m
  })
  return { prestigeMult }
}
`,
}

// WriteDataTree lays the fixtures out under root in the renderer-source
// layout the run config expects. Pass root as the config DataDir.
func WriteDataTree(t testing.TB, root string) {
	t.Helper()

	files := map[string]string{
		filepath.Join("data", "skills", "businessTree.ts"): Fixtures.BusinessTree,
		filepath.Join("data", "skills", "xpTree.ts"):       Fixtures.XPTree,
		filepath.Join("data", "prestige", "eras.ts"):       Fixtures.Eras,
		filepath.Join("data", "prestige", "upgrades.ts"):   Fixtures.Upgrades,
		filepath.Join("data", "prestige", "perks.ts"):      Fixtures.Perks,
		filepath.Join("data", "prestige", "milestones.ts"): Fixtures.Milestones,
		filepath.Join("composables", "useMultipliers.ts"):  Fixtures.Composable,
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
}
