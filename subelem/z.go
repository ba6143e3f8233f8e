package subelem

import (
	"fmt"

	"github.com/arloliu/lcikit/endian"
	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/fixedpoint"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/section"
)

// Z fixed-point field shapes.
const (
	zFieldBits      = 16
	zFloorFraction  = 4  // floor number, 12.4
	zHeightFraction = 12 // height above floor in meters, 4.12
)

// ZRecord describes the vertical position of a station.
type ZRecord struct {
	// Floor is the floor number; 0 is the ground floor.
	Floor int
	// HeightAboveFloor is in meters, within [-8, 8).
	HeightAboveFloor float64
	// HeightUncertainty is in meters; 0 means unknown.
	HeightUncertainty float64
	Movement          format.MovementClass
	// LegacyCompatibility selects the legacy layout of the final status byte.
	LegacyCompatibility bool
}

// Kind implements Record.
func (ZRecord) Kind() format.Kind { return format.KindZ }

func (ZRecord) subelement() {}

// EncodeZ encodes a Z (vertical) subelement.
//
// Payload layout:
//
//	byte 0     movement class (bits 0-1)
//	bytes 1-2  floor × 16, int16 little-endian
//	bytes 3-4  height above floor × 4096, int16 little-endian
//	byte 5     height uncertainty class (bits 0-3), reserved (bits 4-5),
//	           movement class (bits 6-7)
//
// The legacy layout, selected by rec.LegacyCompatibility or
// WithLegacyCompatibility(true), sets the reserved bits of byte 5. No other
// byte depends on the mode.
//
// Returns:
//   - []byte: The 8-byte subelement
//   - error: ErrRange for an invalid movement class, a floor or height that does not
//     fit its field, or a negative uncertainty
func EncodeZ(rec ZRecord, opts ...EncodeOption) ([]byte, error) {
	cfg, err := NewEncodeConfig(opts...)
	if err != nil {
		return nil, err
	}

	if !rec.Movement.IsValid() {
		return nil, fmt.Errorf("%w: movement class %d", errs.ErrRange, uint8(rec.Movement))
	}
	if err := checkUncertainty("height", rec.HeightUncertainty); err != nil {
		return nil, err
	}

	floor, err := fixedpoint.Quantize(float64(rec.Floor), zFieldBits, zFloorFraction)
	if err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}
	height, err := fixedpoint.Quantize(rec.HeightAboveFloor, zFieldBits, zHeightFraction)
	if err != nil {
		return nil, fmt.Errorf("height above floor: %w", err)
	}

	class := fixedpoint.PrecisionClass(rec.HeightUncertainty, fixedpoint.HeightPrecision)
	status := section.NewZStatus(uint8(rec.Movement), class, rec.LegacyCompatibility || cfg.legacy)

	engine := endian.WireEngine()
	payload := make([]byte, 0, section.ZPayloadSize)
	payload = append(payload, status.Lead)
	payload = endian.AppendInt16(engine, payload, int16(floor))  //nolint:gosec
	payload = endian.AppendInt16(engine, payload, int16(height)) //nolint:gosec
	payload = append(payload, status.Trail)

	return section.Frame(format.IDZ, payload)
}
