package encoding

// BitReader reads fields from a stream produced by BitWriter, least significant
// bit first.
type BitReader struct {
	data []byte
	pos  int // bit position of the next read
}

// NewBitReader creates a reader positioned at the first bit of data.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// ReadBits reads numBits bits (0-64) and returns them in the low bits of the result.
//
// Returns:
//   - uint64: The field value
//   - bool: false if the stream holds fewer than numBits remaining bits
func (r *BitReader) ReadBits(numBits int) (uint64, bool) {
	if numBits < 0 || numBits > 64 || r.pos+numBits > len(r.data)*8 {
		return 0, false
	}

	var value uint64
	for i := range numBits {
		bit := (r.data[(r.pos+i)/8] >> uint((r.pos+i)%8)) & 1
		value |= uint64(bit) << i
	}
	r.pos += numBits

	return value, true
}

// ReadSigned reads a numBits-wide two's complement field and sign-extends it.
func (r *BitReader) ReadSigned(numBits int) (int64, bool) {
	raw, ok := r.ReadBits(numBits)
	if !ok || numBits == 0 {
		return 0, ok
	}

	shift := 64 - numBits

	return int64(raw<<shift) >> shift, true //nolint:gosec
}

// Skip advances the read position by numBits.
func (r *BitReader) Skip(numBits int) bool {
	if numBits < 0 || r.pos+numBits > len(r.data)*8 {
		return false
	}
	r.pos += numBits

	return true
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return len(r.data)*8 - r.pos
}
