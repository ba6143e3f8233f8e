// Package fixedpoint converts real-world measurements into the signed
// fixed-point integers and precision classes used by location subelements.
//
// # Fixed-point values
//
// Quantize scales a value by 2^fractionBits, rounds half away from zero, and
// verifies the result fits a two's complement field of the given width:
//
//	lat, err := fixedpoint.Quantize(37.422, 34, 25) // LCI latitude
//	bits := fixedpoint.TwosComplement(lat, 34)      // ready for bit packing
//
// # Precision classes
//
// A precision class is a small integer c advertising an uncertainty of
// 2^(Exponent-c) in the field's unit. Larger uncertainties map to smaller
// (coarser) classes; 0 always means "unknown":
//
//	c := fixedpoint.PrecisionClass(0.0001, fixedpoint.LatLonPrecision) // 21
//
// The advertised uncertainty is never smaller than the requested one unless
// the class is clamped to the table's Max.
package fixedpoint
