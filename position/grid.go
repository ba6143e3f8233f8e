package position

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"

	"github.com/arloliu/lcikit/errs"
)

// utmBands lists the valid UTM latitude band letters, south to north.
const utmBands = "CDEFGHJKLMNPQRSTUVWX"

// FromUTM converts a UTM coordinate.
//
// Parameters:
//   - zone: UTM zone, 1 to 60
//   - band: Latitude band letter (C-X, I and O excluded); 0 means northern hemisphere
//   - easting, northing: Meters
//
// Returns:
//   - Fix: The position, without altitude or error estimate
//   - error: ErrInvalidPosition for an invalid band or a failed conversion
func FromUTM(zone int, band rune, easting, northing float64) (Fix, error) {
	hemisphere := coordconv.HemisphereNorth
	if band != 0 {
		band = unicode.ToUpper(band)
		if !strings.ContainsRune(utmBands, band) {
			return Fix{}, fmt.Errorf("%w: UTM band %q", errs.ErrInvalidPosition, band)
		}
		if band < 'N' {
			hemisphere = coordconv.HemisphereSouth
		}
	}

	latlng, err := coordconv.DefaultUTMConverter.ConvertToGeodetic(coordconv.UTMCoord{
		Zone:       zone,
		Hemisphere: hemisphere,
		Easting:    easting,
		Northing:   northing,
	})
	if err != nil {
		return Fix{}, fmt.Errorf("%w: UTM zone %d, easting %v, northing %v: %w",
			errs.ErrInvalidPosition, zone, easting, northing, err)
	}

	return fromLatLng(latlng)
}

// FromMGRS converts an MGRS grid reference such as "31NEA0000000000".
//
// Returns:
//   - Fix: The position, without altitude or error estimate
//   - error: ErrInvalidPosition for a malformed reference
func FromMGRS(ref string) (Fix, error) {
	ref = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(ref), " ", ""))

	latlng, err := coordconv.DefaultMGRSConverter.ConvertToGeodetic(ref)
	if err != nil {
		return Fix{}, fmt.Errorf("%w: MGRS %q: %w", errs.ErrInvalidPosition, ref, err)
	}

	return fromLatLng(latlng)
}

func fromLatLng(ll s2.LatLng) (Fix, error) {
	return validated(Fix{
		Latitude:  ll.Lat.Degrees(),
		Longitude: ll.Lng.Degrees(),
	})
}
