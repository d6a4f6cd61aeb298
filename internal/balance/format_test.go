package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMultiplier(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.06, "0.06"},
		{-0.06, "-0.06"},
		{0.1, "0.10"},
		{0.28, "0.28"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMultiplier(tt.in))
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.06, "6"},
		{-0.06, "6"},
		{0.1, "10"},
		{0.125, "12.5"},
		{0.0582, "5.8"},
		{0.005, "0.5"},
		{0.28, "28"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPercent(tt.in))
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.03, "0.03"},
		{0.005, "0.005"},
		{0.1, "0.1"},
		{0.25, "0.25"},
		{0.0003, "0.0003"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}

func TestFormatReward(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.008, "0.008"},
		{0.015, "0.015"},
		{0.03, "0.03"},
		{0.003, "0.003"},
		{0.025, "0.025"},
		{1, "1.0"},
		{0.0001, "0.0001"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatReward(tt.in))
	}
}
