package commission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	cases := []struct {
		name  string
		total float64
		rate  float64
		want  float64
	}{
		{"partner rate", 1000, 15, 150},
		{"default rate", 1000, DefaultRatePercent, 100},
		{"zero total", 0, 15, 0},
		{"zero rate", 500, 0, 0},
		{"fractional", 999, 12.5, 124.875},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, Amount(tc.total, tc.rate), 1e-9)
		})
	}
}
