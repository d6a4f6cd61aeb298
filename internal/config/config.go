package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Rebalance holds run parameters for the rebalance tool: where the game
// source tree lives and how the line scanner behaves. The balance tables
// themselves are compile-time data in the balance package.
type Rebalance struct {
	// Game source layout
	DataDir     string `yaml:"data_dir"`     // root of the game's src/renderer/src tree
	SkillsDir   string `yaml:"skills_dir"`   // skill tree files, relative to DataDir
	PrestigeDir string `yaml:"prestige_dir"` // eras/upgrades/perks/milestones, relative to DataDir
	CoeffFile   string `yaml:"coeff_file"`   // multiplier composable, relative to DataDir

	// Scanner windows. Each entity kind gets its own explicit window; the
	// prestige files use sticky key markers and need none.
	RowScanWindow  int `yaml:"row_scan_window"`  // lines to look back for a row marker
	DescScanWindow int `yaml:"desc_scan_window"` // lines to look back for an effect description

	// Tolerance below which a recomputed multiplier counts as unchanged.
	Tolerance float64 `yaml:"tolerance"`

	// Workers bounds concurrent skill-file processing. Documents are
	// independent, so parallelism is safe; reports stay ordered.
	Workers int `yaml:"workers"`
}

// DefaultRebalance returns the Rebalance config with the windows and paths
// the skill files were authored against.
func DefaultRebalance() Rebalance {
	return Rebalance{
		DataDir:        "../business-tycoon/src/renderer/src",
		SkillsDir:      "data/skills",
		PrestigeDir:    "data/prestige",
		CoeffFile:      "composables/useMultipliers.ts",
		RowScanWindow:  7,
		DescScanWindow: 4,
		Tolerance:      0.001,
		Workers:        4,
	}
}

// LoadRebalance loads the rebalance config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadRebalance(path string) (Rebalance, error) {
	cfg := DefaultRebalance()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SkillsPath returns the path of the skill tree directory.
func (c Rebalance) SkillsPath() string {
	return filepath.Join(c.DataDir, c.SkillsDir)
}

// ErasPath returns the path of the prestige eras file.
func (c Rebalance) ErasPath() string {
	return filepath.Join(c.DataDir, c.PrestigeDir, "eras.ts")
}

// UpgradesPath returns the path of the prestige upgrades file.
func (c Rebalance) UpgradesPath() string {
	return filepath.Join(c.DataDir, c.PrestigeDir, "upgrades.ts")
}

// PerksPath returns the path of the prestige perks file.
func (c Rebalance) PerksPath() string {
	return filepath.Join(c.DataDir, c.PrestigeDir, "perks.ts")
}

// MilestonesPath returns the path of the prestige milestones file.
func (c Rebalance) MilestonesPath() string {
	return filepath.Join(c.DataDir, c.PrestigeDir, "milestones.ts")
}

// CoeffPath returns the path of the multiplier composable.
func (c Rebalance) CoeffPath() string {
	return filepath.Join(c.DataDir, c.CoeffFile)
}
