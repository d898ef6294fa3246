package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatCell(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"  ", 0},
		{"150", 150},
		{"12.5", 12.5},
		{"12,5", 12.5}, // Türkçe ondalık virgül
		{"1.234,5", 1234.5},
		{"1,234.5", 1234.5},
		{"1.234.567", 1234567},
		{"1,234,567", 1234567},
		{" 250,75 ", 250.75},
	}

	for _, tc := range cases {
		got, err := parseFloatCell(tc.raw)
		require.NoError(t, err, "girdi: %q", tc.raw)
		assert.InDelta(t, tc.want, got, 0.0001, "girdi: %q", tc.raw)
	}
}

func TestParseFloatCellInvalid(t *testing.T) {
	for _, raw := range []string{"abc", "12,5 kg", "-.-"} {
		_, err := parseFloatCell(raw)
		assert.Error(t, err, "girdi: %q", raw)
	}
}
