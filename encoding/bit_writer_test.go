package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBitWriter_WriteBits(t *testing.T) {
	t.Run("Low bits first", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(0x3, 2)
		w.WriteBits(0x0, 2)
		w.WriteBits(0xF, 4)
		require.Equal(t, []byte{0xF3}, w.Bytes())
	})

	t.Run("Field crosses byte boundary", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(0x15, 6)   // 010101
		w.WriteBits(0x2AB, 10) // 1010101011
		// bits 0-5: 0x15, bits 6-15: 0x2AB
		// value = 0x15 | 0x2AB<<6 = 0xAAD5
		require.Equal(t, []byte{0xD5, 0xAA}, w.Bytes())
		require.Equal(t, 16, w.BitLen())
	})

	t.Run("Partial byte is zero padded", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(0x1, 1)
		w.WriteBits(0x1, 3)
		require.Equal(t, []byte{0x03}, w.Bytes())
	})

	t.Run("Discards bits above width", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(0xFFFF, 4)
		w.WriteBits(0, 4)
		require.Equal(t, []byte{0x0F}, w.Bytes())
	})

	t.Run("Full 64-bit field", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(0x1, 4)
		w.WriteBits(0x0123456789ABCDEF, 64)
		w.WriteBits(0x0, 4)
		require.Equal(t, []byte{0xF1, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12, 0x00}, w.Bytes())
	})

	t.Run("WriteBool and WriteByte", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBool(true)
		w.WriteBool(false)
		w.WriteBool(true)
		w.WriteBits(0, 5)
		require.NoError(t, w.WriteByte(0xAB))
		require.Equal(t, []byte{0x05, 0xAB}, w.Bytes())
	})

	t.Run("Invalid width panics", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		require.Panics(t, func() { w.WriteBits(0, 65) })
		require.Panics(t, func() { w.WriteBits(0, -1) })
	})
}

func TestBitReader_ReadBits(t *testing.T) {
	r := NewBitReader([]byte{0xD5, 0xAA})

	v, ok := r.ReadBits(6)
	require.True(t, ok)
	require.Equal(t, uint64(0x15), v)

	s, ok := r.ReadSigned(10)
	require.True(t, ok)
	require.Equal(t, int64(0x2AB)-1024, s)

	require.Equal(t, 0, r.Remaining())
	_, ok = r.ReadBits(1)
	require.False(t, ok)
	require.False(t, r.Skip(1))
}

func TestBitWriter_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		widths := rapid.SliceOfN(rapid.IntRange(1, 64), 1, 16).Draw(t, "widths")
		values := make([]uint64, len(widths))
		for i, width := range widths {
			v := rapid.Uint64().Draw(t, "value")
			if width < 64 {
				v &= (1 << width) - 1
			}
			values[i] = v
		}

		w := NewBitWriter()
		defer w.Finish()
		for i, width := range widths {
			w.WriteBits(values[i], width)
		}

		totalBits := w.BitLen()
		data := w.Bytes()
		if len(data) != (totalBits+7)/8 {
			t.Fatalf("got %d bytes for %d bits", len(data), totalBits)
		}

		r := NewBitReader(data)
		for i, width := range widths {
			got, ok := r.ReadBits(width)
			if !ok || got != values[i] {
				t.Fatalf("field %d: got %#x, want %#x", i, got, values[i])
			}
		}
		if r.Remaining() >= 8 {
			t.Fatalf("%d unread bits left", r.Remaining())
		}
	})
}
