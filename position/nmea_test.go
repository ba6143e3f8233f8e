package position

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lcikit/errs"
)

func TestFromNMEA(t *testing.T) {
	t.Run("GPS fix", func(t *testing.T) {
		fix, err := FromNMEA("$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n")
		require.NoError(t, err)
		require.InDelta(t, 48.1173, fix.Latitude, 1e-9)
		require.InDelta(t, 11.516666667, fix.Longitude, 1e-8)
		require.True(t, fix.HasAltitude)
		require.InDelta(t, 545.4, fix.Altitude, 1e-9)
		require.InDelta(t, 4.5, fix.HorizontalError, 1e-9)
	})

	t.Run("Southern hemisphere DGPS fix", func(t *testing.T) {
		fix, err := FromNMEA("$GPGGA,002153.000,3342.6618,S,15112.6296,E,2,10,1.2,27.0,M,-34.2,M,,0000*5A")
		require.NoError(t, err)
		require.InDelta(t, -33.71103, fix.Latitude, 1e-6)
		require.InDelta(t, 151.21049333, fix.Longitude, 1e-6)
		require.InDelta(t, 6.0, fix.HorizontalError, 1e-9)
	})

	t.Run("Errors", func(t *testing.T) {
		for _, sentence := range []string{
			"",
			"not nmea",
			"$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*00", // bad checksum
			"$GPGGA,123519,4807.038,N,01131.000,E,0,00,,,M,,M,,*52",            // no fix
			"$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A",
		} {
			_, err := FromNMEA(sentence)
			require.ErrorIs(t, err, errs.ErrInvalidPosition, sentence)
		}
	})
}
