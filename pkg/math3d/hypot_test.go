package math3d

import (
	"math"
	"testing"
)

func TestHypot3(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()

	tests := []struct {
		name    string
		x, y, z float64
		want    float64
	}{
		{"zero", 0, 0, 0, 0},
		{"3-4-5", 3, 4, 0, 5},
		{"1-2-2", 1, 2, 2, 3},
		{"2-3-6", -2, 3, -6, 7},
		{"single axis", 0, 0, -9.5, 9.5},
		{"huge", 3e300, 4e300, 0, 5e300},
		{"tiny", 3e-300, 4e-300, 0, 5e-300},
		{"subnormal", 3 * math.SmallestNonzeroFloat64, 4 * math.SmallestNonzeroFloat64, 0, 5 * math.SmallestNonzeroFloat64},
		{"inf", 1, -inf, 2, inf},
		{"inf beats nan", nan, inf, 0, inf},
		{"overflowing result", math.MaxFloat64, math.MaxFloat64, 0, inf},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Hypot3(tc.x, tc.y, tc.z)
			if got != tc.want && math.Abs(got-tc.want) > 1e-15*tc.want {
				t.Errorf("Hypot3(%v, %v, %v) = %v, want %v", tc.x, tc.y, tc.z, got, tc.want)
			}
		})
	}

	// Not correctly rounded: allow one ulp.
	want := 0.3741657386773941
	if got := Hypot3(0.1, 0.2, 0.3); math.Abs(got-want) > want-math.Nextafter(want, 0) {
		t.Errorf("Hypot3(0.1, 0.2, 0.3) = %v, want %v within one ulp", got, want)
	}

	if got := Hypot3(1, nan, 2); !math.IsNaN(got) {
		t.Errorf("Hypot3 with NaN = %v, want NaN", got)
	}
}
