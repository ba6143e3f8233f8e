package encoding

import (
	"fmt"

	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/internal/pool"
)

// MaxCivicValueLength is the largest value a single civic address element can carry.
// The element length is a single byte.
const MaxCivicValueLength = 255

// CivicEncoder writes civic address elements into a bounded payload.
//
// Each element is encoded as:
//   - 1 byte: CA type
//   - 1 byte: value length (0-255)
//   - N bytes: value (UTF-8)
//
// The encoder tracks the running payload size against a limit, so the caller
// learns about an overflow at the element that causes it rather than after
// assembling the whole payload.
type CivicEncoder struct {
	buf   *pool.ByteBuffer
	limit int
	count int
}

// NewCivicEncoder creates a new civic element encoder.
//
// Parameters:
//   - limit: maximum number of payload bytes the encoder may produce
//
// Returns:
//   - *CivicEncoder: A new encoder instance backed by a pooled buffer
func NewCivicEncoder(limit int) *CivicEncoder {
	return &CivicEncoder{
		buf:   pool.GetSubelementBuffer(),
		limit: limit,
	}
}

// WriteRaw appends bytes verbatim, e.g. the two-letter country code that
// precedes the first element.
//
// Returns:
//   - error: ErrLengthOverflow if the payload would exceed the limit
func (e *CivicEncoder) WriteRaw(data []byte) error {
	if err := e.reserve(len(data)); err != nil {
		return err
	}
	e.buf.MustWrite(data)

	return nil
}

// WriteElement appends one civic address element.
//
// Parameters:
//   - caType: The CA type code
//   - value: The element value, written as UTF-8 bytes
//
// Returns:
//   - error: ErrLengthOverflow if value exceeds MaxCivicValueLength or the payload would exceed the limit
func (e *CivicEncoder) WriteElement(caType uint8, value string) error {
	if len(value) > MaxCivicValueLength {
		return fmt.Errorf("%w: civic element %d value length %d exceeds maximum %d",
			errs.ErrLengthOverflow, caType, len(value), MaxCivicValueLength)
	}

	if err := e.reserve(2 + len(value)); err != nil {
		return err
	}

	e.buf.MustWrite([]byte{caType, uint8(len(value))}) //nolint:gosec
	e.buf.MustWrite([]byte(value))
	e.count++

	return nil
}

// Bytes returns the encoded payload.
//
// The returned slice shares the underlying buffer with the encoder.
func (e *CivicEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of elements written.
func (e *CivicEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *CivicEncoder) Size() int {
	return e.buf.Len()
}

// Finish returns the buffer to the pool. The encoder must not be used afterwards.
func (e *CivicEncoder) Finish() {
	if e.buf != nil {
		pool.PutSubelementBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

func (e *CivicEncoder) reserve(n int) error {
	if e.buf.Len()+n > e.limit {
		return fmt.Errorf("%w: civic payload would grow to %d bytes, limit %d",
			errs.ErrLengthOverflow, e.buf.Len()+n, e.limit)
	}
	e.buf.Grow(n)

	return nil
}
