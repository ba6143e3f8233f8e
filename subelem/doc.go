// Package subelem encodes the location subelements carried in Wi-Fi location
// reports.
//
// Each subelement kind has a parameter record and a pure encode function that
// returns the complete subelement, header included:
//
//	Record           Encoder          ID  Report
//	LCIRecord        EncodeLCI         0  LCI
//	ZRecord          EncodeZ           4  LCI
//	UsageRecord      EncodeUsage       6  LCI
//	*BSSIDRecord     EncodeBSSID       7  LCI
//	CivicRecord      EncodeCivic       0  LCR
//	MapImageRecord   EncodeMapImage    5  LCR
//
// Encode dispatches on the record type, so callers holding a mixed list of
// records can encode them uniformly:
//
//	b, err := subelem.Encode(subelem.UsageRecord{RetransmissionAllowed: true}, nil)
//	// b == []byte{0x06, 0x01, 0x01}
//
// Records are plain values built right before encoding; encoders never modify
// them and never return partial output. Human-readable names (countries,
// languages, civic address types, image types) are resolved through a
// *tables.Tables; passing nil selects tables.Default().
//
// # Errors
//
// All failures wrap a sentinel from the errs package and can be tested with
// errors.Is:
//
//   - errs.ErrUnknownKey: a name has no entry in the code tables
//   - errs.ErrRange: a numeric field does not fit its fixed-point width
//   - errs.ErrCapacity: more than 42 co-located BSSIDs
//   - errs.ErrLengthOverflow: a civic or map image payload above 255 bytes
//   - errs.ErrInvalidVersion: an LCI version other than 1
//
// # Legacy Z Layout
//
// Older client parsers expect the two reserved bits of the final Z status byte
// to be set. ZRecord.LegacyCompatibility or WithLegacyCompatibility(true)
// selects that layout; nothing else in the output changes.
package subelem
