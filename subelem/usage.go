package subelem

import (
	"fmt"
	"math"

	"github.com/arloliu/lcikit/endian"
	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/section"
)

// UsageRecord describes the usage rules and policy for a location.
type UsageRecord struct {
	RetransmissionAllowed bool
	RetentionExpires      bool
	// ExpireHours is only encoded when RetentionExpires is set.
	ExpireHours       uint32
	STALocationPolicy bool
}

// Kind implements Record.
func (UsageRecord) Kind() format.Kind { return format.KindUsage }

func (UsageRecord) subelement() {}

// EncodeUsage encodes a usage rules/policy subelement.
//
// The payload is the flag byte, followed by the expiry in hours as a
// little-endian uint16 when RetentionExpires is set.
//
// Returns:
//   - []byte: The 3- or 5-byte subelement
//   - error: ErrRange if ExpireHours exceeds 65535
func EncodeUsage(rec UsageRecord) ([]byte, error) {
	var flag section.UsageFlag
	flag.SetRetransmissionAllowed(rec.RetransmissionAllowed)
	flag.SetRetentionExpires(rec.RetentionExpires)
	flag.SetSTALocationPolicy(rec.STALocationPolicy)

	payload := make([]byte, 0, section.UsagePayloadSize+section.UsageExpirySize)
	payload = append(payload, uint8(flag))

	if rec.RetentionExpires {
		if rec.ExpireHours > math.MaxUint16 {
			return nil, fmt.Errorf("%w: expiry %d hours exceeds %d", errs.ErrRange, rec.ExpireHours, math.MaxUint16)
		}
		payload = endian.WireEngine().AppendUint16(payload, uint16(rec.ExpireHours))
	}

	return section.Frame(format.IDUsage, payload)
}
