package subelem

import (
	"fmt"
	"math"

	"github.com/arloliu/lcikit/encoding"
	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/fixedpoint"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/section"
)

// LCI field widths, in bits.
const (
	lciClassBits        = 6
	lciLatLonBits       = 34
	lciLatLonFraction   = 25
	lciAltTypeBits      = 4
	lciAltitudeBits     = 30
	lciAltitudeFraction = 8
)

// LCIRecord describes a geodetic position.
//
// Latitude and longitude are in degrees. Altitude and its uncertainty are in
// meters or floors, as selected by AltitudeType; both are ignored when the
// altitude type is unknown. A zero uncertainty means unknown.
type LCIRecord struct {
	Latitude             float64
	LatitudeUncertainty  float64
	Longitude            float64
	LongitudeUncertainty float64
	Altitude             float64
	AltitudeUncertainty  float64
	AltitudeType         format.AltitudeType
	MapDatum             format.MapDatum
	RegLocAgreement      bool
	RegLocDSE            bool
	DependentSTA         bool
	Version              uint8
}

// DefaultLCIRecord returns the baseline record: position 0/0, unknown altitude,
// WGS84 datum, all flags cleared, version 1.
func DefaultLCIRecord() LCIRecord {
	return LCIRecord{
		MapDatum: format.DatumWGS84,
		Version:  section.LCIVersion1,
	}
}

// Kind implements Record.
func (LCIRecord) Kind() format.Kind { return format.KindLCI }

func (LCIRecord) subelement() {}

// EncodeLCI encodes a geodetic LCI subelement.
//
// The 16-byte payload is a bit stream written least significant bit first:
//
//	bits   0-5    latitude uncertainty class
//	bits   6-39   latitude, 34-bit two's complement, 25 fraction bits
//	bits  40-45   longitude uncertainty class
//	bits  46-79   longitude, 34-bit two's complement, 25 fraction bits
//	bits  80-83   altitude type
//	bits  84-89   altitude uncertainty class
//	bits  90-119  altitude, 30-bit two's complement, 8 fraction bits
//	bits 120-127  status byte (datum, RegLoc flags, dependent STA, version)
//
// Returns:
//   - []byte: The 18-byte subelement
//   - error: ErrInvalidVersion for a version other than 1, ErrRange for an
//     out-of-range coordinate, altitude, altitude type or datum
func EncodeLCI(rec LCIRecord) ([]byte, error) {
	if rec.Version != section.LCIVersion1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidVersion, rec.Version)
	}
	if !rec.AltitudeType.IsValid() {
		return nil, fmt.Errorf("%w: altitude type %d", errs.ErrRange, uint8(rec.AltitudeType))
	}
	if !rec.MapDatum.IsValid() {
		return nil, fmt.Errorf("%w: map datum %d", errs.ErrRange, uint8(rec.MapDatum))
	}
	if err := checkDegrees("latitude", rec.Latitude, 90); err != nil {
		return nil, err
	}
	if err := checkDegrees("longitude", rec.Longitude, 180); err != nil {
		return nil, err
	}
	if err := checkUncertainty("latitude", rec.LatitudeUncertainty); err != nil {
		return nil, err
	}
	if err := checkUncertainty("longitude", rec.LongitudeUncertainty); err != nil {
		return nil, err
	}

	lat, err := fixedpoint.Quantize(rec.Latitude, lciLatLonBits, lciLatLonFraction)
	if err != nil {
		return nil, fmt.Errorf("latitude: %w", err)
	}
	lon, err := fixedpoint.Quantize(rec.Longitude, lciLatLonBits, lciLatLonFraction)
	if err != nil {
		return nil, fmt.Errorf("longitude: %w", err)
	}

	var alt int64
	var altClass uint8
	if rec.AltitudeType != format.AltitudeUnknown {
		if err := checkUncertainty("altitude", rec.AltitudeUncertainty); err != nil {
			return nil, err
		}
		alt, err = fixedpoint.Quantize(rec.Altitude, lciAltitudeBits, lciAltitudeFraction)
		if err != nil {
			return nil, fmt.Errorf("altitude: %w", err)
		}
		altClass = fixedpoint.PrecisionClass(rec.AltitudeUncertainty, fixedpoint.AltitudePrecision)
	}

	status := section.NewLCIStatus(uint8(rec.MapDatum), rec.Version)
	status.WithRegLocAgreement(rec.RegLocAgreement)
	status.WithRegLocDSE(rec.RegLocDSE)
	status.WithDependentSTA(rec.DependentSTA)

	w := encoding.NewBitWriter()
	defer w.Finish()

	w.WriteBits(uint64(fixedpoint.PrecisionClass(rec.LatitudeUncertainty, fixedpoint.LatLonPrecision)), lciClassBits)
	w.WriteBits(fixedpoint.TwosComplement(lat, lciLatLonBits), lciLatLonBits)
	w.WriteBits(uint64(fixedpoint.PrecisionClass(rec.LongitudeUncertainty, fixedpoint.LatLonPrecision)), lciClassBits)
	w.WriteBits(fixedpoint.TwosComplement(lon, lciLatLonBits), lciLatLonBits)
	w.WriteBits(uint64(rec.AltitudeType), lciAltTypeBits)
	w.WriteBits(uint64(altClass), lciClassBits)
	w.WriteBits(fixedpoint.TwosComplement(alt, lciAltitudeBits), lciAltitudeBits)
	w.WriteBits(uint64(status), 8)

	return section.Frame(format.IDLCI, w.Bytes())
}

func checkDegrees(field string, v, limit float64) error {
	if math.IsNaN(v) || v < -limit || v > limit {
		return fmt.Errorf("%w: %s %v outside [-%v, %v]", errs.ErrRange, field, v, limit, limit)
	}

	return nil
}
