package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/lcikit/errs"
)

func TestNewHeader(t *testing.T) {
	h, err := NewHeader(6, 3)
	require.NoError(t, err)
	require.Equal(t, Header{ID: 6, Length: 3}, h)
	require.Equal(t, []byte{0x06, 0x03}, h.Bytes())

	h, err = NewHeader(0, MaxPayloadSize)
	require.NoError(t, err)
	require.Equal(t, uint8(255), h.Length)

	_, err = NewHeader(0, MaxPayloadSize+1)
	require.ErrorIs(t, err, errs.ErrLengthOverflow)

	_, err = NewHeader(0, -1)
	require.ErrorIs(t, err, errs.ErrLengthOverflow)
}

func TestFrame(t *testing.T) {
	t.Run("Empty payload", func(t *testing.T) {
		b, err := Frame(5, nil)
		require.NoError(t, err)
		require.Equal(t, []byte{0x05, 0x00}, b)
	})

	t.Run("Max payload", func(t *testing.T) {
		payload := bytes.Repeat([]byte{0xAB}, MaxPayloadSize)
		b, err := Frame(0, payload)
		require.NoError(t, err)
		require.Len(t, b, HeaderSize+MaxPayloadSize)
		require.Equal(t, byte(0xFF), b[1])
	})

	t.Run("Overflow leaves dst unchanged", func(t *testing.T) {
		dst := []byte{0x01, 0x02}
		out, err := AppendFrame(dst, 0, make([]byte, MaxPayloadSize+1))
		require.ErrorIs(t, err, errs.ErrLengthOverflow)
		require.Equal(t, []byte{0x01, 0x02}, out)
	})

	t.Run("Append after existing subelement", func(t *testing.T) {
		out, err := AppendFrame([]byte{0x06, 0x01, 0x01}, 7, []byte{0x00})
		require.NoError(t, err)
		require.Equal(t, []byte{0x06, 0x01, 0x01, 0x07, 0x01, 0x00}, out)
	})
}
