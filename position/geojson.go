package position

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/arloliu/lcikit/errs"
)

// GeoJSON feature properties read by FromGeoJSON.
const (
	PropertyAltitude = "altitude"
	PropertyAccuracy = "accuracy"
)

// FromGeoJSON parses a GeoJSON Feature with Point geometry.
//
// The optional numeric properties "altitude" (meters) and "accuracy"
// (horizontal error in meters) fill the matching Fix fields.
//
// Returns:
//   - Fix: The position
//   - error: ErrInvalidPosition for malformed JSON, a non-Point geometry or a
//     non-numeric altitude/accuracy property
func FromGeoJSON(data []byte) (Fix, error) {
	feature, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return Fix{}, fmt.Errorf("%w: %w", errs.ErrInvalidPosition, err)
	}

	point, ok := feature.Geometry.(orb.Point)
	if !ok {
		return Fix{}, fmt.Errorf("%w: geometry is %T, want Point", errs.ErrInvalidPosition, feature.Geometry)
	}

	fix := Fix{
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
	}

	if v, found := feature.Properties[PropertyAltitude]; found {
		alt, ok := v.(float64)
		if !ok {
			return Fix{}, fmt.Errorf("%w: %s property is %T", errs.ErrInvalidPosition, PropertyAltitude, v)
		}
		fix.Altitude = alt
		fix.HasAltitude = true
	}

	if v, found := feature.Properties[PropertyAccuracy]; found {
		acc, ok := v.(float64)
		if !ok {
			return Fix{}, fmt.Errorf("%w: %s property is %T", errs.ErrInvalidPosition, PropertyAccuracy, v)
		}
		fix.HorizontalError = acc
	}

	return validated(fix)
}
