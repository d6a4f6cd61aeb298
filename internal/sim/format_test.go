package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{999, "999.0"},
		{1500, "1.5K"},
		{2500000, "2.5M"},
		{-3200000000, "-3.2B"},
		{1400000000000, "1.4T"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Short(tt.in), "Short(%v)", tt.in)
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{12000, "$12,000"},
		{1234567.4, "$1,234,567"},
		{60000000000, "$60,000,000,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%v)", tt.in)
	}
}
