package encoding

import (
	"github.com/arloliu/lcikit/internal/pool"
)

// BitWriter packs fields of arbitrary width into a byte stream, least significant
// bit first.
//
// Field i starts at the bit position immediately following field i-1. Within the
// stream, bit n lives in byte n/8 at bit position n%8, so a value written with
// WriteBits occupies its low bits first. This is the layout used by the geodetic
// LCI payload, where the 6-bit uncertainty class sits in the low bits of byte 0
// and the 34-bit latitude continues into the next bytes.
//
// The writer accumulates bits in a 64-bit buffer and flushes whole bytes to a
// pooled ByteBuffer.
type BitWriter struct {
	bitBuf   uint64 // pending bits, bit 0 is the next bit to be flushed
	bitCount int    // number of valid bits in bitBuf
	total    int    // number of bits written since creation

	buf *pool.ByteBuffer
}

// NewBitWriter creates a new bit writer backed by a pooled subelement buffer.
//
// Returns:
//   - *BitWriter: A new writer ready for WriteBits calls
func NewBitWriter() *BitWriter {
	return &BitWriter{buf: pool.GetSubelementBuffer()}
}

// WriteBits appends the low numBits bits of value to the stream.
//
// Bits of value above numBits are discarded. numBits must be within [0, 64].
//
// Parameters:
//   - value: the bits to write (only the least significant numBits are used)
//   - numBits: number of bits to write (0-64)
func (w *BitWriter) WriteBits(value uint64, numBits int) {
	if numBits < 0 || numBits > 64 {
		panic("encoding: bit width out of range")
	}
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}
	w.total += numBits

	available := 64 - w.bitCount
	if numBits < available {
		w.bitBuf |= value << w.bitCount
		w.bitCount += numBits
		w.flushFullBytes()

		return
	}

	// Split across the buffer boundary: the low bits complete the buffer.
	w.bitBuf |= value << w.bitCount
	w.bitCount = 64
	w.flushFullBytes()

	rest := numBits - available
	if rest > 0 {
		w.bitBuf = value >> available
		w.bitCount = rest
		w.flushFullBytes()
	}
}

// WriteBool appends a single bit.
func (w *BitWriter) WriteBool(bit bool) {
	if bit {
		w.WriteBits(1, 1)
	} else {
		w.WriteBits(0, 1)
	}
}

// WriteByte appends a full byte. It is a shorthand for WriteBits(uint64(b), 8).
func (w *BitWriter) WriteByte(b byte) error {
	w.WriteBits(uint64(b), 8)
	return nil
}

// BitLen returns the number of bits written so far.
func (w *BitWriter) BitLen() int {
	return w.total
}

// Bytes flushes any partial byte, zero-padding its high bits, and returns the
// encoded stream.
//
// The returned slice shares the underlying buffer with the writer and is only
// valid until Finish is called. Callers that keep the data must copy it.
func (w *BitWriter) Bytes() []byte {
	if w.bitCount > 0 {
		w.buf.MustWrite([]byte{byte(w.bitBuf)})
		// The partial byte is now part of the stream; pad the bit count up
		// to the next byte boundary so later writes start byte-aligned.
		w.total += 8 - w.bitCount
		w.bitBuf = 0
		w.bitCount = 0
	}

	return w.buf.Bytes()
}

// Finish returns the buffer to the pool. The writer must not be used afterwards.
func (w *BitWriter) Finish() {
	if w.buf != nil {
		pool.PutSubelementBuffer(w.buf)
		w.buf = nil
	}
	w.bitBuf = 0
	w.bitCount = 0
	w.total = 0
}

func (w *BitWriter) flushFullBytes() {
	for w.bitCount >= 8 {
		w.buf.MustWrite([]byte{byte(w.bitBuf)})
		w.bitBuf >>= 8
		w.bitCount -= 8
	}
}
