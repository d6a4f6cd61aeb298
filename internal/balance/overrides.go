package balance

// Overrides carries the static value tables for entities not governed by
// the curve model: prestige eras, upgrades, perks, and milestones. Values
// are asserted as-is on every run rather than interpolated.
type Overrides struct {
	Eras             map[string]float64
	Upgrades         map[string]float64
	Perks            map[string]float64
	PerkDescriptions map[string]DescriptionFix
	Milestones       map[MilestoneReward]float64

	// PointsCoefficient is the prestige-points income coefficient written
	// into the multiplier composable.
	PointsCoefficient float64
}

// DescriptionFix replaces an outdated phrase in a perk description with the
// wording that matches the rebalanced effect value.
type DescriptionFix struct {
	Old string
	New string
}

// MilestoneReward keys a reward value by milestone ID and reward type, since
// one milestone can grant several distinct reward types.
type MilestoneReward struct {
	ID     string
	Reward string
}

// DefaultOverrides returns the authored static tables.
func DefaultOverrides() Overrides {
	return Overrides{
		Eras: map[string]float64{
			"era_humble":      0,
			"era_rising":      0.03,
			"era_established": 0.06,
			"era_titan":       0.10,
			"era_legend":      0.15,
			"era_eternal":     0.25,
		},
		Upgrades: map[string]float64{
			"pup_global_1":         0.03,
			"pup_global_2":         0.05,
			"pup_business_boost":   0.02,
			"pup_investment_boost": 0.02,
			"pup_realestate_boost": 0.02,
			"pup_prestige_gain":    0.03,
			"pup_xp_boost":         0.02,
			"pup_job_efficiency":   0.06,
			"pup_offline":          0.03,
			"pup_cost_reduction":   0.01,
			"pup_loan_discount":    0.005,
		},
		Perks: map[string]float64{
			"perk_instant_jobs":      0.10,
			"perk_offline_boost":     0.05,
			"perk_market_insight":    0.03,
			"perk_tax_haven":         0.005,
			"perk_business_sense":    0.04,
			"perk_real_estate_mogul": 0.04,
			"perk_golden_touch":      0.08,
			"perk_time_warp":         0.08,
			"perk_prestige_master":   0.08,
			"perk_reality_warp":      0.12,
		},
		PerkDescriptions: map[string]DescriptionFix{
			"perk_instant_jobs":      {"at 50% efficiency", "at 10% efficiency"},
			"perk_offline_boost":     {"efficiency by 25%", "efficiency by 5%"},
			"perk_market_insight":    {"gain 15% better", "gain 3% better"},
			"perk_tax_haven":         {"rates by 3%", "rates by 0.5%"},
			"perk_business_sense":    {"generate 20% more", "generate 4% more"},
			"perk_real_estate_mogul": {"generate 20% more", "generate 4% more"},
			"perk_golden_touch":      {"+50% to all", "+8% to all"},
			"perk_time_warp":         {"at 100% efficiency", "with boosted efficiency"},
			"perk_prestige_master":   {"50% more prestige", "8% more prestige"},
			"perk_reality_warp":      {"+100% to all", "+12% to all"},
		},
		Milestones: map[MilestoneReward]float64{
			{"ms_points_10", "global_multiplier"}:   0.008,
			{"ms_points_50", "prestige_gain"}:       0.015,
			{"ms_points_100", "global_multiplier"}:  0.015,
			{"ms_points_500", "prestige_gain"}:      0.025,
			{"ms_points_500", "xp_gain"}:            0.015,
			{"ms_points_1000", "global_multiplier"}: 0.03,
			{"ms_points_5000", "global_multiplier"}: 0.05,
			{"ms_points_5000", "prestige_gain"}:     0.04,
			{"ms_points_10000", "global_multiplier"}: 0.08,
			{"ms_points_10000", "offline_bonus"}:     0.03,
			{"ms_rebirth_1", "prestige_gain"}:        0.008,
			{"ms_rebirth_5", "job_efficiency"}:       0.015,
			{"ms_rebirth_10", "prestige_gain"}:       0.025,
			{"ms_rebirth_10", "global_multiplier"}:   0.015,
			{"ms_rebirth_25", "global_multiplier"}:   0.03,
			{"ms_rebirth_25", "loan_discount"}:       0.003,
			{"ms_rebirth_50", "global_multiplier"}:   0.05,
			{"ms_rebirth_50", "prestige_gain"}:       0.04,
			{"ms_rebirth_50", "offline_bonus"}:       0.025,
			{"ms_rebirth_100", "global_multiplier"}:  0.08,
			{"ms_rebirth_100", "prestige_gain"}:      0.06,
			{"ms_upgrades_5", "prestige_gain"}:       0.008,
			{"ms_upgrades_25", "global_multiplier"}:  0.015,
			{"ms_upgrades_25", "cost_reduction"}:     0.008,
			{"ms_upgrades_50", "prestige_gain"}:      0.03,
			{"ms_upgrades_50", "xp_gain"}:            0.02,
		},
		PointsCoefficient: 0.0003,
	}
}
