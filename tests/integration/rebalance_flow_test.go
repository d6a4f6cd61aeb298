package integration

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/tycoonbalance/internal/balance"
	"github.com/udisondev/tycoonbalance/internal/config"
	"github.com/udisondev/tycoonbalance/internal/patch"
	"github.com/udisondev/tycoonbalance/internal/testutil"
)

func setup(t *testing.T) config.Rebalance {
	t.Helper()
	cfg := config.DefaultRebalance()
	cfg.DataDir = t.TempDir()
	testutil.WriteDataTree(t, cfg.DataDir)
	return cfg
}

// applyAll runs every rebalance pass over the data tree in the same order
// the CLI does, and reports whether any file changed.
func applyAll(t *testing.T, cfg config.Rebalance) bool {
	t.Helper()

	tbl := balance.DefaultTable()
	ov := balance.DefaultOverrides()
	opt := patch.Options{
		RowWindow:  cfg.RowScanWindow,
		DescWindow: cfg.DescScanWindow,
		Tolerance:  cfg.Tolerance,
	}

	changed := false

	files, err := filepath.Glob(filepath.Join(cfg.SkillsPath(), "*.ts"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	sort.Strings(files)
	for _, path := range files {
		doc, err := patch.Load(path)
		require.NoError(t, err)
		patch.SkillNodes(doc, tbl, opt)
		changed = changed || doc.Dirty()
		require.NoError(t, doc.Save())
	}

	statics := []struct {
		path  string
		apply func(*patch.Document)
	}{
		{cfg.ErasPath(), func(d *patch.Document) { patch.EraBonuses(d, ov.Eras) }},
		{cfg.UpgradesPath(), func(d *patch.Document) { patch.UpgradeValues(d, ov.Upgrades) }},
		{cfg.PerksPath(), func(d *patch.Document) {
			patch.PerkValues(d, ov.Perks)
			patch.PerkDescriptions(d, ov.PerkDescriptions)
		}},
		{cfg.MilestonesPath(), func(d *patch.Document) { patch.MilestoneRewards(d, ov.Milestones) }},
		{cfg.CoeffPath(), func(d *patch.Document) { patch.PointsCoefficient(d, ov.PointsCoefficient) }},
	}
	for _, s := range statics {
		doc, err := patch.Load(s.path)
		require.NoError(t, err)
		s.apply(doc)
		changed = changed || doc.Dirty()
		require.NoError(t, doc.Save())
	}

	return changed
}

func read(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(raw)
}

// treeSnapshot captures every file under root keyed by relative path.
func treeSnapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	snap := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snap[rel] = string(raw)
		return nil
	})
	require.NoError(t, err)
	return snap
}

func TestRebalanceFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cfg := setup(t)
	require.True(t, applyAll(t, cfg))

	biz := read(t, filepath.Join(cfg.SkillsPath(), "businessTree.ts"))
	assert.Contains(t, biz, "multiplier: 0.06")
	assert.Contains(t, biz, "'+6% business revenue'")
	assert.Contains(t, biz, "multiplier: -0.06")
	assert.Contains(t, biz, "'-6% operating costs'")
	assert.Contains(t, biz, "multiplier: 0.12")
	assert.Contains(t, biz, "'+12% business revenue'")
	assert.Contains(t, biz, "'+6% all income'")
	// the already-correct base node keeps its literal
	assert.Contains(t, biz, "multiplier: 0.02")

	xp := read(t, filepath.Join(cfg.SkillsPath(), "xpTree.ts"))
	assert.Contains(t, xp, "multiplier: 0.06")
	assert.Contains(t, xp, "'+6% XP gain'")
	assert.Contains(t, xp, "multiplier: 0.10")
	assert.Contains(t, xp, "'+10% XP gain'")

	eras := read(t, cfg.ErasPath())
	assert.Contains(t, eras, "globalBonus: 0,")
	assert.Contains(t, eras, "globalBonus: 0.03,")
	assert.Contains(t, eras, "globalBonus: 0.25,")

	ups := read(t, cfg.UpgradesPath())
	assert.Contains(t, ups, "effectValue: 0.03,")
	assert.Contains(t, ups, "effectValue: 0.005,")
	// ids outside the override tables stay as authored
	assert.Contains(t, ups, "effectValue: 0.5,")

	perks := read(t, cfg.PerksPath())
	assert.Contains(t, perks, "value: 0.08 }")
	assert.Contains(t, perks, "value: 0.005 }")
	assert.Contains(t, perks, "+8% to all income")
	assert.Contains(t, perks, "rates by 0.5%")

	ms := read(t, cfg.MilestonesPath())
	assert.Contains(t, ms, "{ type: 'global_multiplier', value: 0.008 }")
	assert.Contains(t, ms, "{ type: 'global_multiplier', value: 0.05 }")
	assert.Contains(t, ms, "{ type: 'prestige_gain', value: 0.04 }")
	assert.Contains(t, ms, "{ type: 'offline_bonus', value: 0.025 }")

	comp := read(t, cfg.CoeffPath())
	assert.Contains(t, comp, "mul(prestige.points, 0.0003)")
}

func TestRebalanceFlowIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cfg := setup(t)
	require.True(t, applyAll(t, cfg))
	snap := treeSnapshot(t, cfg.DataDir)

	assert.False(t, applyAll(t, cfg), "second run must be a no-op")
	assert.Equal(t, snap, treeSnapshot(t, cfg.DataDir))
}

func TestRebalanceVerifyProducts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cfg := setup(t)
	applyAll(t, cfg)

	files, err := filepath.Glob(filepath.Join(cfg.SkillsPath(), "*.ts"))
	require.NoError(t, err)

	stats := make(map[string]*patch.TargetStat)
	for _, path := range files {
		doc, err := patch.Load(path)
		require.NoError(t, err)
		patch.Tally(doc.Content(), stats)
	}

	tests := []struct {
		target  string
		count   int
		product string
	}{
		{"businessRevenue", 3, "1.210944"},
		{"costReduction", 1, "0.94"},
		{"allIncome", 1, "1.06"},
		{"xpGain", 2, "1.166"},
	}
	for _, tt := range tests {
		st := stats[tt.target]
		require.NotNil(t, st, tt.target)
		assert.Equal(t, tt.count, st.Count, tt.target)
		assert.True(t, st.Product.Equal(decimal.RequireFromString(tt.product)),
			"%s: got %s", tt.target, st.Product)
	}
}
