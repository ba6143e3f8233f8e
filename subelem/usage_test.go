package subelem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lcikit/errs"
)

func TestEncodeUsage(t *testing.T) {
	testCases := []struct {
		name string
		rec  UsageRecord
		want []byte
	}{
		{
			name: "Retransmission only",
			rec:  UsageRecord{RetransmissionAllowed: true},
			want: []byte{0x06, 0x01, 0x01},
		},
		{
			name: "Expiry with policy",
			rec:  UsageRecord{RetentionExpires: true, ExpireHours: 32768, STALocationPolicy: true},
			want: []byte{0x06, 0x03, 0x06, 0x00, 0x80},
		},
		{
			name: "Expiry ignored when retention does not expire",
			rec:  UsageRecord{ExpireHours: 1_000_000},
			want: []byte{0x06, 0x01, 0x00},
		},
		{
			name: "Largest expiry",
			rec:  UsageRecord{RetransmissionAllowed: true, RetentionExpires: true, ExpireHours: 65535},
			want: []byte{0x06, 0x03, 0x03, 0xFF, 0xFF},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := EncodeUsage(tc.rec)
			require.NoError(t, err)
			require.Equal(t, tc.want, b)
		})
	}
}

func TestEncodeUsage_ExpiryOutOfRange(t *testing.T) {
	b, err := EncodeUsage(UsageRecord{RetentionExpires: true, ExpireHours: 65536})
	require.ErrorIs(t, err, errs.ErrRange)
	require.Nil(t, b)
}
