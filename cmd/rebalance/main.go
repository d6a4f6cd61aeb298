// Command rebalance rewrites the business-tycoon data files to the authored
// progression curves and static override tables. Runs are idempotent: a
// second pass over already-patched files changes nothing.
//
// Usage:
//
//	go run ./cmd/rebalance all
//	go run ./cmd/rebalance skills verify
//	go run ./cmd/rebalance -dir ../business-tycoon/src/renderer/src -dry-run all
//	go run ./cmd/rebalance --list
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/tycoonbalance/internal/balance"
	"github.com/udisondev/tycoonbalance/internal/config"
	"github.com/udisondev/tycoonbalance/internal/patch"
)

type step struct {
	name string
	desc string
	run  func(*app) error
}

var steps []step

func registerStep(name, desc string, fn func(*app) error) {
	steps = append(steps, step{name: name, desc: desc, run: fn})
}

func init() {
	registerStep("skills", "skill tree multipliers and effect descriptions", runSkills)
	registerStep("eras", "prestige era global bonuses", runEras)
	registerStep("upgrades", "prestige upgrade effect values", runUpgrades)
	registerStep("perks", "perk effect values and descriptions", runPerks)
	registerStep("milestones", "milestone reward values", runMilestones)
	registerStep("coeff", "prestige points income coefficient", runCoeff)
	registerStep("verify", "recount nodes and products per target", runVerify)
}

// app carries everything a step needs: the run config, the authored tables,
// and the scanner options derived from the config.
type app struct {
	cfg    config.Rebalance
	table  balance.Table
	ov     balance.Overrides
	opt    patch.Options
	dryRun bool
}

func main() {
	configPath := flag.String("config", "rebalance.yaml", "run config file")
	dir := flag.String("dir", "", "override the game data directory")
	dryRun := flag.Bool("dry-run", false, "report changes without writing")
	verbose := flag.Bool("v", false, "debug logging")
	list := flag.Bool("list", false, "list available steps")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	if *list {
		printList()
		return
	}

	cfg, err := config.LoadRebalance(*configPath)
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}
	if *dir != "" {
		cfg.DataDir = *dir
	}
	slog.Debug("config loaded", "data_dir", cfg.DataDir, "workers", cfg.Workers, "tolerance", cfg.Tolerance)

	a := &app{
		cfg:   cfg,
		table: balance.DefaultTable(),
		ov:    balance.DefaultOverrides(),
		opt: patch.Options{
			RowWindow:  cfg.RowScanWindow,
			DescWindow: cfg.DescScanWindow,
			Tolerance:  cfg.Tolerance,
		},
		dryRun: *dryRun,
	}

	toRun, err := resolveSteps(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printList()
		os.Exit(1)
	}

	totalStart := time.Now()
	for _, s := range toRun {
		start := time.Now()
		fmt.Printf("[rebalance] running %s...\n", s.name)
		if err := s.run(a); err != nil {
			slog.Error("step failed", "step", s.name, "err", err)
			os.Exit(1)
		}
		fmt.Printf("[rebalance] %s done (%s)\n", s.name, time.Since(start).Round(time.Millisecond))
	}
	fmt.Printf("[rebalance] all done (%s)\n", time.Since(totalStart).Round(time.Millisecond))
	if a.dryRun {
		fmt.Println("(dry-run, no files modified)")
	}
}

// resolveSteps maps step names to registered steps. No names, or "all",
// selects every step in registration order, which ends with verify.
func resolveSteps(names []string) ([]step, error) {
	if len(names) == 0 || names[0] == "all" {
		return steps, nil
	}

	byName := make(map[string]step, len(steps))
	for _, s := range steps {
		byName[s.name] = s
	}

	var toRun []step
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown step: %s", name)
		}
		toRun = append(toRun, s)
	}
	return toRun, nil
}

func printList() {
	maxLen := 0
	for _, s := range steps {
		if len(s.name) > maxLen {
			maxLen = len(s.name)
		}
	}

	fmt.Println("Available steps:")
	for _, s := range steps {
		padding := strings.Repeat(" ", maxLen-len(s.name)+2)
		fmt.Printf("  %s%s%s\n", s.name, padding, s.desc)
	}
}

// skillFiles lists the skill tree sources in a stable order.
func skillFiles(a *app) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(a.cfg.SkillsPath(), "*.ts"))
	if err != nil {
		return nil, fmt.Errorf("listing skill files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no skill files under %s", a.cfg.SkillsPath())
	}
	sort.Strings(files)
	return files, nil
}

func runSkills(a *app) error {
	files, err := skillFiles(a)
	if err != nil {
		return err
	}

	// files are independent, so patch them in parallel
	counts := make([]int, len(files))
	var g errgroup.Group
	g.SetLimit(a.cfg.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			doc, err := patch.Load(path)
			if err != nil {
				return err
			}
			counts[i] = patch.SkillNodes(doc, a.table, a.opt)
			if a.dryRun {
				return nil
			}
			return doc.Save()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for i, path := range files {
		fmt.Printf("  %s: %d nodes\n", filepath.Base(path), counts[i])
		total += counts[i]
	}
	fmt.Printf("  total: %d nodes updated\n", total)
	return nil
}

// patchFile loads one data file, applies a pass, and writes it back unless
// the run is dry or nothing changed.
func patchFile(a *app, path string, apply func(*patch.Document)) error {
	doc, err := patch.Load(path)
	if err != nil {
		return err
	}
	apply(doc)
	if a.dryRun {
		return nil
	}
	return doc.Save()
}

func runEras(a *app) error {
	return patchFile(a, a.cfg.ErasPath(), func(doc *patch.Document) {
		for _, ap := range patch.EraBonuses(doc, a.ov.Eras) {
			fmt.Printf("  %-25s → globalBonus: %s\n", ap.Key, ap.Value)
		}
	})
}

func runUpgrades(a *app) error {
	return patchFile(a, a.cfg.UpgradesPath(), func(doc *patch.Document) {
		for _, ap := range patch.UpgradeValues(doc, a.ov.Upgrades) {
			fmt.Printf("  %-25s → effectValue: %s\n", ap.Key, ap.Value)
		}
	})
}

func runPerks(a *app) error {
	return patchFile(a, a.cfg.PerksPath(), func(doc *patch.Document) {
		for _, ap := range patch.PerkValues(doc, a.ov.Perks) {
			fmt.Printf("  %-25s → value: %s\n", ap.Key, ap.Value)
		}
		if n := patch.PerkDescriptions(doc, a.ov.PerkDescriptions); n > 0 {
			fmt.Printf("  %d descriptions reworded\n", n)
		}
	})
}

func runMilestones(a *app) error {
	return patchFile(a, a.cfg.MilestonesPath(), func(doc *patch.Document) {
		n := patch.MilestoneRewards(doc, a.ov.Milestones)
		fmt.Printf("  %d rewards written\n", n)
	})
}

func runCoeff(a *app) error {
	return patchFile(a, a.cfg.CoeffPath(), func(doc *patch.Document) {
		old, ok := patch.PointsCoefficient(doc, a.ov.PointsCoefficient)
		if !ok {
			fmt.Println("  points coefficient call site not found")
			return
		}
		fmt.Printf("  points coefficient: %s → %s\n", old, balance.FormatValue(a.ov.PointsCoefficient))
	})
}

func runVerify(a *app) error {
	files, err := skillFiles(a)
	if err != nil {
		return err
	}

	stats := make(map[string]*patch.TargetStat)
	for _, path := range files {
		doc, err := patch.Load(path)
		if err != nil {
			return err
		}
		patch.Tally(doc.Content(), stats)
	}

	targets := make([]string, 0, len(stats))
	for t := range stats {
		targets = append(targets, t)
	}
	sort.Strings(targets)

	for _, t := range targets {
		st := stats[t]
		fmt.Printf("  %-25s: %3d nodes, product = x%s\n", t, st.Count, st.Product.StringFixed(2))
	}
	return nil
}
