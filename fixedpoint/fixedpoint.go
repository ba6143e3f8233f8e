package fixedpoint

import (
	"fmt"
	"math"

	"github.com/arloliu/lcikit/errs"
)

// MaxBitWidth is the widest field Quantize supports; wider fields lose float64 exactness.
const MaxBitWidth = 53

// Quantize rounds value·2^fractionBits to the nearest integer, ties away from zero.
//
// Parameters:
//   - value: Measurement in the field's unit (degrees, meters, floors)
//   - bitWidth: Width of the two's complement field, 1..MaxBitWidth
//   - fractionBits: Number of fraction bits, 0..bitWidth
//
// Returns:
//   - int64: Quantized value within [-2^(bitWidth-1), 2^(bitWidth-1)-1]
//   - error: ErrRange if value is NaN, infinite, or does not fit the field
func Quantize(value float64, bitWidth, fractionBits int) (int64, error) {
	if bitWidth < 1 || bitWidth > MaxBitWidth || fractionBits < 0 || fractionBits > bitWidth {
		panic(fmt.Sprintf("fixedpoint: invalid field shape %d.%d", bitWidth-fractionBits, fractionBits))
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %v is not a finite number", errs.ErrRange, value)
	}

	scaled := math.Round(math.Ldexp(value, fractionBits))
	lo, hi := Bounds(bitWidth)
	if scaled < float64(lo) || scaled > float64(hi) {
		return 0, fmt.Errorf("%w: %v does not fit a %d-bit field with %d fraction bits",
			errs.ErrRange, value, bitWidth, fractionBits)
	}

	return int64(scaled), nil
}

// Bounds returns the smallest and largest value of a two's complement field.
func Bounds(bitWidth int) (lo, hi int64) {
	hi = int64(1)<<(bitWidth-1) - 1
	lo = -hi - 1

	return lo, hi
}

// Range returns the representable physical range of a fixed-point field.
func Range(bitWidth, fractionBits int) (lo, hi float64) {
	l, h := Bounds(bitWidth)

	return math.Ldexp(float64(l), -fractionBits), math.Ldexp(float64(h), -fractionBits)
}

// TwosComplement returns the low bitWidth bits of v.
func TwosComplement(v int64, bitWidth int) uint64 {
	return uint64(v) & (uint64(1)<<bitWidth - 1) //nolint:gosec
}
