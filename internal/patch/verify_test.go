package patch

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	stats := map[string]*TargetStat{}

	Tally(`
  effects: [{ target: 'xpGain', multiplier: 0.03 }],
  effects: [{ target: 'xpGain', multiplier: 0.06 }],
  effects: [{ target: 'costReduction', multiplier: -0.04 }],
`, stats)

	require.Len(t, stats, 2)
	assert.Equal(t, 2, stats["xpGain"].Count)
	assert.True(t, stats["xpGain"].Product.Equal(decimal.RequireFromString("1.0918")),
		"got %s", stats["xpGain"].Product)
	assert.Equal(t, 1, stats["costReduction"].Count)
	assert.True(t, stats["costReduction"].Product.Equal(decimal.RequireFromString("0.96")),
		"got %s", stats["costReduction"].Product)
}

func TestTallyAccumulates(t *testing.T) {
	stats := map[string]*TargetStat{}

	Tally(`{ target: 'allIncome', multiplier: 0.01 }`, stats)
	Tally(`{ target: 'allIncome', multiplier: 0.02 }`, stats)

	require.Contains(t, stats, "allIncome")
	assert.Equal(t, 2, stats["allIncome"].Count)
	assert.True(t, stats["allIncome"].Product.Equal(decimal.RequireFromString("1.0302")),
		"got %s", stats["allIncome"].Product)
}

func TestTallyIgnoresNonNodes(t *testing.T) {
	stats := map[string]*TargetStat{}

	Tally(`
  row: 3,
  name: 'target practice',
  multiplier: 0.5,
`, stats)

	assert.Empty(t, stats)
}
