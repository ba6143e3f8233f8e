package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
)

func TestArchiveHeader_BytesAndParse(t *testing.T) {
	original := NewArchiveHeader(format.CompressionZstd, 42, 0x0102030405060708)

	data := original.Bytes()
	require.Len(t, data, ArchiveHeaderSize)
	require.Equal(t, []byte{0x52, 0x4C, 0x01, 0x02, 0x2A, 0x00, 0x00, 0x00}, data[:8])

	var parsed ArchiveHeader
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, original, parsed)
}

func TestArchiveHeader_Parse_Invalid(t *testing.T) {
	t.Run("Too short", func(t *testing.T) {
		var h ArchiveHeader
		require.ErrorIs(t, h.Parse([]byte{0x52, 0x4C}), errs.ErrInvalidArchive)
	})

	t.Run("Bad magic", func(t *testing.T) {
		data := NewArchiveHeader(format.CompressionNone, 0, 0).Bytes()
		data[0] = 0x00

		var h ArchiveHeader
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidArchive)
	})

	t.Run("Unknown version", func(t *testing.T) {
		data := NewArchiveHeader(format.CompressionNone, 0, 0).Bytes()
		data[2] = 9

		var h ArchiveHeader
		require.ErrorIs(t, h.Parse(data), errs.ErrInvalidArchive)
	})
}
