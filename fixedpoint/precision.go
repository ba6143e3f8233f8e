package fixedpoint

import "math"

// PrecisionTable describes how an uncertainty maps to a precision class.
//
// Class c in [Min, Max] advertises an uncertainty of 2^(Exponent-c).
type PrecisionTable struct {
	Exponent int
	Min      uint8
	Max      uint8
}

// Published precision tables.
var (
	// LatLonPrecision maps degrees of latitude or longitude uncertainty (classes 1..34).
	LatLonPrecision = PrecisionTable{Exponent: 8, Min: 1, Max: 34}
	// AltitudePrecision maps meters (or floors) of altitude uncertainty (classes 1..30).
	AltitudePrecision = PrecisionTable{Exponent: 21, Min: 1, Max: 30}
	// HeightPrecision maps meters of height-above-floor uncertainty (classes 1..15).
	HeightPrecision = PrecisionTable{Exponent: 4, Min: 1, Max: 15}
)

// PrecisionClass maps a physical uncertainty to a precision class.
//
// Zero, negative, and NaN uncertainties return 0 (unknown). Otherwise the result
// is the finest class whose advertised uncertainty still covers the input,
// clamped to [t.Min, t.Max].
func PrecisionClass(uncertainty float64, t PrecisionTable) uint8 {
	if math.IsNaN(uncertainty) || uncertainty <= 0 {
		return 0
	}
	if math.IsInf(uncertainty, 1) {
		return t.Min
	}

	class := t.Exponent - ceilLog2(uncertainty)
	switch {
	case class < int(t.Min):
		return t.Min
	case class > int(t.Max):
		return t.Max
	default:
		return uint8(class) //nolint:gosec
	}
}

// Uncertainty returns the uncertainty advertised by class, or 0 for the unknown class.
func Uncertainty(class uint8, t PrecisionTable) float64 {
	if class == 0 {
		return 0
	}

	return math.Ldexp(1, t.Exponent-int(class))
}

// ceilLog2 returns ⌈log2(x)⌉ for a finite x > 0 without floating point log error.
func ceilLog2(x float64) int {
	frac, exp := math.Frexp(x) // x = frac·2^exp, frac in [0.5, 1)
	if frac == 0.5 {
		return exp - 1
	}

	return exp
}
