package math3d

import "math"

// Hypot3 returns sqrt(x*x + y*y + z*z) without intermediate overflow or
// underflow.
//
// The result is within one ulp of the correctly rounded value; it may
// differ from it in the last bit.
//
// Special cases are:
//
//	Hypot3(±Inf, y, z) = +Inf, also when y or z is NaN
//	Hypot3(NaN, y, z) = NaN, unless y or z is ±Inf
//	Hypot3(0, 0, 0) = 0
func Hypot3(x, y, z float64) float64 {
	x, y, z = math.Abs(x), math.Abs(y), math.Abs(z)
	switch {
	case math.IsInf(x, 1) || math.IsInf(y, 1) || math.IsInf(z, 1):
		return math.Inf(1)
	case math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z):
		return math.NaN()
	}

	m := max(x, y, z)
	if m == 0 {
		return 0
	}

	// Scale by a power of two so the largest term lands in [0.5, 1).
	// Multiplying by a power of two is exact outside the subnormal range.
	_, exp := math.Frexp(m)
	x = math.Ldexp(x, -exp)
	y = math.Ldexp(y, -exp)
	z = math.Ldexp(z, -exp)
	return math.Ldexp(math.Sqrt(x*x+y*y+z*z), exp)
}
