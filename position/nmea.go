package position

import (
	"fmt"
	"strings"

	"github.com/adrianmo/go-nmea"

	"github.com/arloliu/lcikit/errs"
)

// UERE is the user equivalent range error, in meters, used to turn an HDOP
// value into a horizontal error estimate.
const UERE = 5.0

// FromNMEA parses an NMEA 0183 GGA sentence.
//
// The horizontal error is HDOP × UERE. The altitude is the antenna altitude
// above mean sea level.
//
// Parameters:
//   - sentence: A single GGA sentence, checksum included (e.g. "$GPGGA,...*47")
//
// Returns:
//   - Fix: The position
//   - error: ErrInvalidPosition for an unparsable sentence, a sentence that is
//     not GGA, or a GGA without a fix
func FromNMEA(sentence string) (Fix, error) {
	s, err := nmea.Parse(strings.TrimSpace(sentence))
	if err != nil {
		return Fix{}, fmt.Errorf("%w: %w", errs.ErrInvalidPosition, err)
	}

	gga, ok := s.(nmea.GGA)
	if !ok {
		return Fix{}, fmt.Errorf("%w: %s sentence carries no GGA fix", errs.ErrInvalidPosition, s.DataType())
	}
	if gga.FixQuality == nmea.Invalid || gga.FixQuality == "" {
		return Fix{}, fmt.Errorf("%w: GGA fix quality %q", errs.ErrInvalidPosition, gga.FixQuality)
	}

	return validated(Fix{
		Latitude:        gga.Latitude,
		Longitude:       gga.Longitude,
		Altitude:        gga.Altitude,
		HasAltitude:     true,
		HorizontalError: gga.HDOP * UERE,
	})
}
