package subelem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
)

func TestEncodeZ_Vectors(t *testing.T) {
	testCases := []struct {
		name string
		rec  ZRecord
		want []byte
	}{
		{
			name: "Ground floor, unknown everything",
			rec:  ZRecord{Movement: format.MovementStationary},
			want: []byte{0x04, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name: "Second floor, mobile",
			rec:  ZRecord{Floor: 2, HeightAboveFloor: 1.5, HeightUncertainty: 0.5, Movement: format.MovementMobile},
			want: []byte{0x04, 0x06, 0x01, 0x20, 0x00, 0x00, 0x18, 0x45},
		},
		{
			name: "Basement, unknown movement",
			rec:  ZRecord{Floor: -1, HeightAboveFloor: -0.25, Movement: format.MovementUnknown},
			want: []byte{0x04, 0x06, 0x02, 0xF0, 0xFF, 0x00, 0xFC, 0x80},
		},
		{
			name: "Lowest height",
			rec:  ZRecord{HeightAboveFloor: -8},
			want: []byte{0x04, 0x06, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00},
		},
		{
			name: "Second floor, mobile, legacy",
			rec: ZRecord{
				Floor: 2, HeightAboveFloor: 1.5, HeightUncertainty: 0.5,
				Movement: format.MovementMobile, LegacyCompatibility: true,
			},
			want: []byte{0x04, 0x06, 0x01, 0x20, 0x00, 0x00, 0x18, 0x75},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := EncodeZ(tc.rec)
			require.NoError(t, err)
			require.Equal(t, tc.want, b)
		})
	}
}

func TestEncodeZ_LegacyOption(t *testing.T) {
	rec := ZRecord{Floor: 7, HeightAboveFloor: 2.75, HeightUncertainty: 0.01, Movement: format.MovementMobile}

	fromOption, err := EncodeZ(rec, WithLegacyCompatibility(true))
	require.NoError(t, err)

	rec.LegacyCompatibility = true
	fromRecord, err := EncodeZ(rec)
	require.NoError(t, err)
	require.Equal(t, fromRecord, fromOption)

	// The record flag wins over a false option.
	fromBoth, err := EncodeZ(rec, WithLegacyCompatibility(false))
	require.NoError(t, err)
	require.Equal(t, fromRecord, fromBoth)
}

func TestEncodeZ_LegacyDiffersOnlyInReservedBits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rec := ZRecord{
			Floor:             rapid.IntRange(-2048, 2047).Draw(t, "floor"),
			HeightAboveFloor:  rapid.Float64Range(-8, 7.99).Draw(t, "height"),
			HeightUncertainty: rapid.Float64Range(0, 100).Draw(t, "uncertainty"),
			Movement:          format.MovementClass(rapid.IntRange(0, 2).Draw(t, "movement")),
		}

		current, err := EncodeZ(rec)
		if err != nil {
			t.Fatalf("current: %v", err)
		}
		legacy, err := EncodeZ(rec, WithLegacyCompatibility(true))
		if err != nil {
			t.Fatalf("legacy: %v", err)
		}

		if len(current) != 8 || len(legacy) != 8 {
			t.Fatalf("unexpected lengths %d, %d", len(current), len(legacy))
		}
		for i := range 7 {
			if current[i] != legacy[i] {
				t.Fatalf("byte %d differs: %#x vs %#x", i, current[i], legacy[i])
			}
		}
		if current[7]&0x30 != 0 || legacy[7]&0x30 != 0x30 || current[7]|0x30 != legacy[7] {
			t.Fatalf("final byte: current %#x legacy %#x", current[7], legacy[7])
		}
	})
}

func TestEncodeZ_Errors(t *testing.T) {
	testCases := []struct {
		name string
		rec  ZRecord
	}{
		{"floor too high", ZRecord{Floor: 2048}},
		{"floor too low", ZRecord{Floor: -2049}},
		{"height 8 m", ZRecord{HeightAboveFloor: 8}},
		{"height NaN", ZRecord{HeightAboveFloor: math.NaN()}},
		{"negative uncertainty", ZRecord{HeightUncertainty: -1}},
		{"invalid movement", ZRecord{Movement: 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := EncodeZ(tc.rec)
			require.ErrorIs(t, err, errs.ErrRange)
			require.Nil(t, b)
		})
	}
}
