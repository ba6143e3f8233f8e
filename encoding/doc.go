// Package encoding provides the low-level writers used to build subelement payloads.
//
// # Bit Packing
//
// The geodetic LCI payload is a 128-bit stream of fields that do not align to
// byte boundaries. BitWriter appends fields least significant bit first, so
// field i starts right after field i-1 and bit n of the stream is bit n%8 of
// byte n/8:
//
//	w := encoding.NewBitWriter()
//	defer w.Finish()
//
//	w.WriteBits(uint64(latClass), 6)
//	w.WriteBits(fixedpoint.TwosComplement(lat, 34), 34)
//	payload := bytes.Clone(w.Bytes())
//
// BitReader reads such a stream back and is mainly used to verify field
// positions in tests and debugging tools.
//
// # Civic Elements
//
// CivicEncoder writes type-length-value civic address elements into a payload
// with a hard size limit. An element whose value exceeds 255 bytes, or one that
// would push the payload past the limit, fails with errs.ErrLengthOverflow:
//
//	enc := encoding.NewCivicEncoder(section.MaxPayloadSize)
//	defer enc.Finish()
//
//	_ = enc.WriteRaw([]byte("DE"))
//	_ = enc.WriteElement(3, "Berlin")
//
// Both writers are backed by pooled buffers from internal/pool and must be
// released with Finish. Neither is safe for concurrent use.
package encoding
