package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoFor(t *testing.T) {
	tests := []struct {
		branches int
		tier     string
		mult     float64
	}{
		{0, "Local", 1.0},
		{4, "Local", 1.0},
		{5, "Regional", 1.5},
		{11, "Regional", 1.5},
		{12, "National", 2.5},
		{20, "Continental", 4.0},
		{30, "Global", 7.0},
		{44, "Global", 7.0},
		{45, "Interplanetary", 12.0},
		{200, "Interplanetary", 12.0},
	}
	for _, tt := range tests {
		tier := GeoFor(tt.branches)
		assert.Equal(t, tt.tier, tier.Name, "branches=%d", tt.branches)
		assert.Equal(t, tt.mult, tier.Mult, "branches=%d", tt.branches)
	}
}

func TestGeoTiersEarlierThanLegacy(t *testing.T) {
	// the tuned tiers must make expansion reachable sooner and keep the
	// legacy top multiplier
	assert.Equal(t, 5, GeoTiers()[1].MinBranches)
	top := GeoTiers()[len(GeoTiers())-1]
	legacyTop, _ := GeoMultiplier(50)
	assert.Equal(t, legacyTop, top.Mult)
}

func TestDemand(t *testing.T) {
	assert.Equal(t, 6, Demand(5, 50))
	assert.Equal(t, 107, Demand(77, 60))
	assert.Equal(t, 20, Demand(10, 100))
	assert.Zero(t, Demand(0, 50))
}

func TestLevelCustomerMult(t *testing.T) {
	assert.InDelta(t, 1.0, LevelCustomerMult(0), 1e-9)
	assert.InDelta(t, 1.25, LevelCustomerMult(1), 1e-9)
	assert.InDelta(t, 1.5, LevelCustomerMult(3), 1e-9)
	assert.InDelta(t, 1.75, LevelCustomerMult(7), 1e-9)
}

func TestBranchCustomerMult(t *testing.T) {
	assert.InDelta(t, 1.0, BranchCustomerMult(0), 1e-9)
	assert.InDelta(t, 2.5, BranchCustomerMult(10), 1e-9)
}

func TestEffectiveQuality(t *testing.T) {
	assert.InDelta(t, 50, EffectiveQuality(50, 0), 1e-9)
	assert.InDelta(t, 60, EffectiveQuality(50, 5), 1e-9)
	assert.InDelta(t, 100, EffectiveQuality(60, 25), 1e-9)
}

func TestOperatingCosts(t *testing.T) {
	assert.InDelta(t, 8.8, OperatingCosts(5, 0.5, 0.3, 1.0, 6, 0), 1e-9)
	assert.InDelta(t, 9.7, OperatingCosts(5, 0.5, 0.3, 1.0, 6, 10), 1e-9)
}

func TestTunedBusinessesBaselineProfitable(t *testing.T) {
	for _, b := range TunedBusinesses() {
		t.Run(b.Name, func(t *testing.T) {
			demand := Demand(b.BaseCust, float64(b.Quality))
			capacity := b.MaxEmployees * b.OutPerEmp
			sold := min(demand, capacity)
			revenue := float64(sold) * b.OptPrice
			costs := OperatingCosts(b.MaxEmployees, b.Salary, b.Rent, b.Supply, sold, 0)

			assert.Positive(t, revenue-costs)
		})
	}
}

func TestTunedBusinessesTable(t *testing.T) {
	tuned := TunedBusinesses()
	require.Len(t, tuned, 5)

	names := make([]string, 0, len(tuned))
	for _, b := range tuned {
		names = append(names, b.Name)
		assert.Positive(t, b.Elasticity, b.Name)
		assert.Positive(t, b.BranchBase, b.Name)
	}
	assert.Equal(t, []string{"Lemonade", "Pizzeria", "Nightclub", "TechStartup", "Bank"}, names)
}

func TestTunedGrowthLowerThanLegacy(t *testing.T) {
	assert.Less(t, BranchCostGrowthTuned, BranchCostGrowth)
	assert.Less(t, TrainingCostGrowthTuned, TrainingCostGrowth)
}
