package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsageFlag(t *testing.T) {
	var f UsageFlag
	require.Equal(t, UsageFlag(0), f)

	f.SetRetransmissionAllowed(true)
	require.Equal(t, UsageFlag(0x01), f)
	require.True(t, f.RetransmissionAllowed())

	f.SetRetransmissionAllowed(false)
	f.SetRetentionExpires(true)
	f.SetSTALocationPolicy(true)
	require.Equal(t, UsageFlag(0x06), f)
	require.False(t, f.RetransmissionAllowed())
	require.True(t, f.RetentionExpires())
	require.True(t, f.STALocationPolicy())
	require.Zero(t, uint8(f)&UsageReservedMask)
}

func TestLCIStatus(t *testing.T) {
	s := NewLCIStatus(1, LCIVersion1)
	require.Equal(t, LCIStatus(0x41), s)
	require.Equal(t, uint8(1), s.Datum())
	require.Equal(t, uint8(1), s.Version())

	s.WithRegLocAgreement(true)
	s.WithRegLocDSE(true)
	s.WithDependentSTA(true)
	require.Equal(t, LCIStatus(0x79), s)
	require.True(t, s.RegLocAgreement())
	require.True(t, s.RegLocDSE())
	require.True(t, s.DependentSTA())

	s.WithRegLocDSE(false)
	require.Equal(t, LCIStatus(0x69), s)

	// out-of-range inputs are masked
	require.Equal(t, uint8(7), NewLCIStatus(0xFF, 0).Datum())
	require.Equal(t, uint8(3), NewLCIStatus(0, 0xFF).Version())
}

func TestZStatus(t *testing.T) {
	testCases := []struct {
		name        string
		movement    uint8
		uncertainty uint8
		legacy      bool
		lead        uint8
		trail       uint8
	}{
		{"stationary unknown uncertainty", 0, 0, false, 0x00, 0x00},
		{"stationary unknown uncertainty legacy", 0, 0, true, 0x00, 0x30},
		{"mobile class 6", 1, 6, false, 0x01, 0x46},
		{"unknown class 15 legacy", 2, 15, true, 0x02, 0xBF},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewZStatus(tc.movement, tc.uncertainty, tc.legacy)
			require.Equal(t, tc.lead, s.Lead)
			require.Equal(t, tc.trail, s.Trail)
			require.Equal(t, tc.movement, s.Movement())
			require.Equal(t, tc.uncertainty, s.Uncertainty())
			require.Equal(t, tc.legacy, s.IsLegacy())
		})
	}
}

func TestZStatus_LegacyOnlyTouchesReservedBits(t *testing.T) {
	for movement := range uint8(3) {
		for class := range uint8(16) {
			current := NewZStatus(movement, class, false)
			legacy := NewZStatus(movement, class, true)

			require.Equal(t, current.Lead, legacy.Lead)
			require.Equal(t, uint8(ZLegacyReservedMask), current.Trail^legacy.Trail)
		}
	}
}
