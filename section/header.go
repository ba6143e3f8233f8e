package section

import (
	"fmt"

	"github.com/arloliu/lcikit/errs"
)

// Header is the two-byte prefix of every subelement.
type Header struct {
	// ID is the subelement identifier within its report.
	ID uint8 // byte offset 0
	// Length is the payload length in bytes, not counting the header.
	Length uint8 // byte offset 1
}

// NewHeader creates a header for a payload of payloadLen bytes.
//
// Returns:
//   - Header: The header
//   - error: ErrLengthOverflow if payloadLen does not fit the length byte
func NewHeader(id uint8, payloadLen int) (Header, error) {
	if payloadLen < 0 || payloadLen > MaxPayloadSize {
		return Header{}, fmt.Errorf("%w: subelement %d payload is %d bytes",
			errs.ErrLengthOverflow, id, payloadLen)
	}

	return Header{ID: id, Length: uint8(payloadLen)}, nil //nolint:gosec
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	return []byte{h.ID, h.Length}
}

// AppendFrame appends a framed subelement (header followed by payload) to dst.
//
// dst is returned unchanged when the payload is too long, so a failed frame
// never leaves a partial subelement behind.
func AppendFrame(dst []byte, id uint8, payload []byte) ([]byte, error) {
	h, err := NewHeader(id, len(payload))
	if err != nil {
		return dst, err
	}

	dst = append(dst, h.ID, h.Length)

	return append(dst, payload...), nil
}

// Frame returns a newly allocated framed subelement.
func Frame(id uint8, payload []byte) ([]byte, error) {
	return AppendFrame(make([]byte, 0, HeaderSize+len(payload)), id, payload)
}
