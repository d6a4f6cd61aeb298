package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRebalanceMissingFile(t *testing.T) {
	cfg, err := LoadRebalance(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRebalance(), cfg)
}

func TestLoadRebalanceOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rebalance.yaml")
	raw := []byte("data_dir: /srv/game/src\nrow_scan_window: 10\nworkers: 1\n")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg, err := LoadRebalance(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/game/src", cfg.DataDir)
	assert.Equal(t, 10, cfg.RowScanWindow)
	assert.Equal(t, 1, cfg.Workers)
	// Untouched fields keep their defaults.
	assert.Equal(t, "data/skills", cfg.SkillsDir)
	assert.Equal(t, 0.001, cfg.Tolerance)
}

func TestLoadRebalanceMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rebalance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644))

	_, err := LoadRebalance(path)
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	cfg := DefaultRebalance()
	cfg.DataDir = "/game/src"

	assert.Equal(t, filepath.Join("/game/src", "data", "skills"), cfg.SkillsPath())
	assert.Equal(t, filepath.Join("/game/src", "data", "prestige", "eras.ts"), cfg.ErasPath())
	assert.Equal(t, filepath.Join("/game/src", "data", "prestige", "upgrades.ts"), cfg.UpgradesPath())
	assert.Equal(t, filepath.Join("/game/src", "data", "prestige", "perks.ts"), cfg.PerksPath())
	assert.Equal(t, filepath.Join("/game/src", "data", "prestige", "milestones.ts"), cfg.MilestonesPath())
	assert.Equal(t, filepath.Join("/game/src", "composables", "useMultipliers.ts"), cfg.CoeffPath())
}
