package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/section"
	"github.com/arloliu/lcikit/subelem"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()

	b := NewBuilder(nil)
	require.NoError(t, b.Add(subelem.CivicRecord{
		Country: "Germany",
		Elements: []subelem.CivicElement{
			{Name: "Berlin", Language: "German", Type: "City"},
			{Name: "Unter den Linden", Language: "German", Type: "Primary Road Name"},
		},
	}))
	require.NoError(t, b.Add(subelem.MapImageRecord{ImageType: "PNG", URL: "https://maps.example.com/berlin.png"}))

	r, err := b.Build()
	require.NoError(t, err)

	return r
}

func TestPackUnpack(t *testing.T) {
	r := sampleReport(t)

	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			archive, err := r.Pack(ct)
			require.NoError(t, err)
			require.Equal(t, []byte{0x52, 0x4C, 0x01, byte(ct)}, archive[:4])

			raw, header, err := Unpack(archive)
			require.NoError(t, err)
			require.Equal(t, r.Bytes(), raw)
			require.Equal(t, ct, header.Compression)
			require.Equal(t, uint32(r.Len()), header.RawLength)
			require.Equal(t, r.Fingerprint(), header.Checksum)
		})
	}
}

func TestPack_UnsupportedCompression(t *testing.T) {
	_, err := sampleReport(t).Pack(format.CompressionType(0x42))
	require.Error(t, err)
}

func TestUnpack_Errors(t *testing.T) {
	r := sampleReport(t)
	archive, err := r.Pack(format.CompressionNone)
	require.NoError(t, err)

	t.Run("Truncated header", func(t *testing.T) {
		_, _, err := Unpack(archive[:section.ArchiveHeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidArchive)
	})

	t.Run("Truncated body", func(t *testing.T) {
		_, _, err := Unpack(archive[:len(archive)-1])
		require.ErrorIs(t, err, errs.ErrInvalidArchive)
	})

	t.Run("Corrupted body", func(t *testing.T) {
		corrupted := append([]byte(nil), archive...)
		corrupted[len(corrupted)-1] ^= 0xFF

		_, _, err := Unpack(corrupted)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("Unknown codec", func(t *testing.T) {
		corrupted := append([]byte(nil), archive...)
		corrupted[3] = 0x42

		_, _, err := Unpack(corrupted)
		require.ErrorIs(t, err, errs.ErrInvalidArchive)
	})

	t.Run("Corrupted compressed body", func(t *testing.T) {
		zstdArchive, err := r.Pack(format.CompressionZstd)
		require.NoError(t, err)
		zstdArchive = zstdArchive[:section.ArchiveHeaderSize+4]

		_, _, err = Unpack(zstdArchive)
		require.ErrorIs(t, err, errs.ErrInvalidArchive)
	})
}
