package fixedpoint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arloliu/lcikit/errs"
)

func TestQuantize(t *testing.T) {
	testCases := []struct {
		name         string
		value        float64
		bitWidth     int
		fractionBits int
		expected     int64
	}{
		{"zero", 0, 34, 25, 0},
		{"latitude", 37.422, 34, 25, 1255673954},
		{"negative longitude", -122.084, 34, 25, -4096459276},
		{"height", 1.5, 16, 12, 6144},
		{"height rounds up", 0.1, 16, 12, 410},
		{"half away from zero", 0.5, 8, 0, 1},
		{"negative half away from zero", -0.5, 8, 0, -1},
		{"max latitude", 90, 34, 25, 90 << 25},
		{"min latitude", -90, 34, 25, -90 << 25},
		{"max 16-bit", 32767.0 / 4096, 16, 12, 32767},
		{"min 16-bit", -8, 16, 12, -32768},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Quantize(tc.value, tc.bitWidth, tc.fractionBits)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestQuantize_OutOfRange(t *testing.T) {
	testCases := []struct {
		name         string
		value        float64
		bitWidth     int
		fractionBits int
	}{
		{"height above 8m", 8, 16, 12},
		{"height below -8m", -8.001, 16, 12},
		{"altitude above range", 2097152, 30, 8},
		{"altitude below range", -2097152.01, 30, 8},
		{"NaN", math.NaN(), 34, 25},
		{"+Inf", math.Inf(1), 34, 25},
		{"-Inf", math.Inf(-1), 34, 25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Quantize(tc.value, tc.bitWidth, tc.fractionBits)
			require.ErrorIs(t, err, errs.ErrRange)
		})
	}
}

func TestQuantize_InvalidShapePanics(t *testing.T) {
	require.Panics(t, func() { _, _ = Quantize(1, 0, 0) })
	require.Panics(t, func() { _, _ = Quantize(1, MaxBitWidth+1, 0) })
	require.Panics(t, func() { _, _ = Quantize(1, 8, 9) })
	require.Panics(t, func() { _, _ = Quantize(1, 8, -1) })
}

func TestQuantize_ErrorBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Float64Range(-180, 180).Draw(t, "value")

		q, err := Quantize(value, 34, 25)
		require.NoError(t, err)
		require.LessOrEqual(t, math.Abs(math.Ldexp(float64(q), -25)-value), math.Ldexp(1, -26))
	})
}

func TestBoundsAndRange(t *testing.T) {
	lo, hi := Bounds(16)
	require.Equal(t, int64(-32768), lo)
	require.Equal(t, int64(32767), hi)

	flo, fhi := Range(30, 8)
	require.InDelta(t, -2097152.0, flo, 1e-9)
	require.InDelta(t, 2097151.99609375, fhi, 1e-9)
}

func TestTwosComplement(t *testing.T) {
	require.Equal(t, uint64(0x3FFFFFFFF), TwosComplement(-1, 34))
	require.Equal(t, uint64(0x200000000), TwosComplement(-1<<33, 34))
	require.Equal(t, uint64(0x1FFFFFFFF), TwosComplement(1<<33-1, 34))
	require.Equal(t, uint64(0xF000), TwosComplement(-4096, 16))
}
