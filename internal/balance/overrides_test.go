package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOverridesShape(t *testing.T) {
	ov := DefaultOverrides()

	assert.Len(t, ov.Eras, 6)
	assert.Len(t, ov.Upgrades, 11)
	assert.Len(t, ov.Perks, 10)
	assert.Len(t, ov.PerkDescriptions, 10)
	assert.Len(t, ov.Milestones, 26)
	assert.Equal(t, 0.0003, ov.PointsCoefficient)
}

func TestPerkDescriptionsMatchPerks(t *testing.T) {
	// Every description fix must belong to a perk that also gets a value
	// override, otherwise the wording would drift from the number.
	ov := DefaultOverrides()
	for id, fix := range ov.PerkDescriptions {
		_, ok := ov.Perks[id]
		assert.True(t, ok, "description fix for %s has no value override", id)
		assert.NotEqual(t, fix.Old, fix.New, "%s fix is a no-op", id)
	}
}

func TestEraBonusesOrdered(t *testing.T) {
	// Later eras always grant at least as much as earlier ones.
	ov := DefaultOverrides()
	order := []string{"era_humble", "era_rising", "era_established", "era_titan", "era_legend", "era_eternal"}

	prev := -1.0
	for _, era := range order {
		v, ok := ov.Eras[era]
		assert.True(t, ok, era)
		assert.Greater(t, v, prev, era)
		prev = v
	}
}
