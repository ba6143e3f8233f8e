package position

import (
	"fmt"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/require"
	"github.com/tzneal/coordconv"

	"github.com/arloliu/lcikit/errs"
)

func TestFromUTM(t *testing.T) {
	t.Run("Central meridian on the equator", func(t *testing.T) {
		fix, err := FromUTM(31, 'N', 500000, 0)
		require.NoError(t, err)
		require.InDelta(t, 0, fix.Latitude, 1e-9)
		require.InDelta(t, 3, fix.Longitude, 1e-9)
		require.False(t, fix.HasAltitude)
	})

	t.Run("Round trip", func(t *testing.T) {
		for _, ll := range []s2.LatLng{
			s2.LatLngFromDegrees(37.4220, -122.0838),
			s2.LatLngFromDegrees(-33.8568, 151.2153),
		} {
			utm, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(ll, 0)
			require.NoError(t, err)

			band := 'N'
			if utm.Hemisphere == coordconv.HemisphereSouth {
				band = 'M'
			}

			fix, err := FromUTM(utm.Zone, band, utm.Easting, utm.Northing)
			require.NoError(t, err)
			require.InDelta(t, ll.Lat.Degrees(), fix.Latitude, 1e-6)
			require.InDelta(t, ll.Lng.Degrees(), fix.Longitude, 1e-6)
		}
	})

	t.Run("Invalid band", func(t *testing.T) {
		for _, band := range []rune{'I', 'O', 'A', 'Y', '3'} {
			_, err := FromUTM(31, band, 500000, 0)
			require.ErrorIs(t, err, errs.ErrInvalidPosition)
		}
	})
}

func TestFromMGRS(t *testing.T) {
	ll := s2.LatLngFromDegrees(48.8584, 2.2945)
	ref, err := coordconv.DefaultMGRSConverter.ConvertFromGeodetic(ll, 5)
	require.NoError(t, err)

	fix, err := FromMGRS(fmt.Sprint(ref))
	require.NoError(t, err)
	require.InDelta(t, 48.8584, fix.Latitude, 1e-4)
	require.InDelta(t, 2.2945, fix.Longitude, 1e-4)

	_, err = FromMGRS("not a grid reference")
	require.ErrorIs(t, err, errs.ErrInvalidPosition)
}
