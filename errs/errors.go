// Package errs declares the sentinel errors returned by lcikit.
//
// Call sites wrap these sentinels with context using fmt.Errorf and the %w verb,
// so callers should compare with errors.Is rather than equality:
//
//	buf, err := subelem.EncodeCivic(rec, tbl)
//	if errors.Is(err, errs.ErrLengthOverflow) {
//	    // civic payload does not fit the single-byte length field
//	}
package errs

import "errors"

// Encoding errors.
var (
	// ErrUnknownKey indicates a human-readable name (language, country,
	// civic address type, image type, map datum) has no code table entry.
	ErrUnknownKey = errors.New("unknown code table key")

	// ErrRange indicates a numeric field does not fit its allotted bit width.
	ErrRange = errors.New("value out of range")

	// ErrCapacity indicates a repeating field exceeds its fixed maximum element count.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrLengthOverflow indicates a subelement payload exceeds the single-byte length limit.
	ErrLengthOverflow = errors.New("subelement payload exceeds 255 bytes")

	// ErrInvalidVersion indicates an unsupported LCI version number.
	ErrInvalidVersion = errors.New("invalid LCI version")

	// ErrInvalidAddress indicates a hardware address that is not a 6-byte EUI-48.
	ErrInvalidAddress = errors.New("invalid hardware address")

	// ErrInvalidPosition indicates a position source produced an unusable fix.
	ErrInvalidPosition = errors.New("invalid position")
)

// Report assembly errors.
var (
	ErrDuplicateSubelement = errors.New("subelement already added")
	ErrMixedReportFamily   = errors.New("subelement belongs to a different report")
	ErrEmptyReport         = errors.New("no subelements added")
	ErrInvalidArchive      = errors.New("invalid report archive")
	ErrChecksumMismatch    = errors.New("report archive checksum mismatch")
)
