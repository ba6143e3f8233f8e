package position

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/subelem"
)

// metersPerDegree is the length of one degree of arc on the WGS84 equator.
const metersPerDegree = 2 * math.Pi * 6378137.0 / 360

// Fix is a single position reading.
type Fix struct {
	// Latitude and Longitude are in degrees.
	Latitude  float64
	Longitude float64
	// Altitude is in meters and only meaningful when HasAltitude is set.
	Altitude    float64
	HasAltitude bool
	// HorizontalError is the estimated horizontal error in meters, 0 if unknown.
	HorizontalError float64
}

// LatLng returns the fix as an s2.LatLng.
func (f Fix) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(f.Latitude, f.Longitude)
}

// Validate checks that the fix has usable coordinates.
//
// Returns:
//   - error: ErrInvalidPosition for NaN, out-of-bounds coordinates or a negative error estimate
func (f Fix) Validate() error {
	if math.IsNaN(f.Latitude) || math.IsNaN(f.Longitude) || !f.LatLng().IsValid() {
		return fmt.Errorf("%w: latitude %v, longitude %v", errs.ErrInvalidPosition, f.Latitude, f.Longitude)
	}
	if f.HorizontalError < 0 || math.IsNaN(f.HorizontalError) {
		return fmt.Errorf("%w: horizontal error %v", errs.ErrInvalidPosition, f.HorizontalError)
	}
	if f.HasAltitude && (math.IsNaN(f.Altitude) || math.IsInf(f.Altitude, 0)) {
		return fmt.Errorf("%w: altitude %v", errs.ErrInvalidPosition, f.Altitude)
	}

	return nil
}

// Apply copies the fix into rec.
//
// The horizontal error is converted to latitude and longitude uncertainties in
// degrees. A fix with altitude switches rec to meters; the altitude
// uncertainty is left untouched. Fields the fix does not carry are kept.
func (f Fix) Apply(rec *subelem.LCIRecord) {
	rec.Latitude = f.Latitude
	rec.Longitude = f.Longitude

	rec.LatitudeUncertainty = 0
	rec.LongitudeUncertainty = 0
	if f.HorizontalError > 0 {
		rec.LatitudeUncertainty = f.HorizontalError / metersPerDegree

		// Meridians converge towards the poles; clamp to keep the division finite.
		cos := math.Max(math.Cos(f.Latitude*math.Pi/180), 1e-6)
		rec.LongitudeUncertainty = f.HorizontalError / (metersPerDegree * cos)
	}

	if f.HasAltitude {
		rec.Altitude = f.Altitude
		rec.AltitudeType = format.AltitudeMeters
	}
}

func validated(f Fix) (Fix, error) {
	if err := f.Validate(); err != nil {
		return Fix{}, err
	}

	return f, nil
}
