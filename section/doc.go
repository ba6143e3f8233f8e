// Package section defines the low-level binary structures and constants shared by
// the location subelement encoders.
//
// # Subelement Framing
//
// Every subelement uses the same two-byte header:
//
//	┌────────┬────────┬──────────────────────────┐
//	│ ID (1) │ L (1)  │ payload (L bytes, ≤ 255)  │
//	└────────┴────────┴──────────────────────────┘
//
// AppendFrame and Frame reject payloads longer than MaxPayloadSize with
// errs.ErrLengthOverflow instead of truncating them.
//
// # Status Bytes
//
// Several subelements pack flags into a single byte. Each one has a small type
// with accessor and setter methods:
//
//   - UsageFlag: retransmission allowed, retention expires, STA location policy
//   - LCIStatus: map datum, RegLoc agreement, RegLoc DSE, dependent STA, version
//   - ZStatus: movement class and height uncertainty class, plus the legacy
//     reserved bits
//
// Bit layouts:
//
//	UsageFlag
//	  Bit 0: retransmission allowed
//	  Bit 1: retention expires
//	  Bit 2: STA location policy
//	  Bits 3-7: reserved (0)
//
//	LCIStatus (LCI payload bits 120-127)
//	  Bits 0-2: map datum (1=WGS84, 2=NAD83+NAVD88, 3=NAD83+MLLW)
//	  Bit 3: RegLoc agreement
//	  Bit 4: RegLoc DSE
//	  Bit 5: dependent STA
//	  Bits 6-7: version (1)
//
//	ZStatus.Lead (Z payload byte 0)
//	  Bits 0-1: movement class
//	  Bits 2-7: reserved (0)
//
//	ZStatus.Trail (Z payload byte 5)
//	  Bits 0-3: height uncertainty class
//	  Bits 4-5: reserved (0, or 1 in legacy mode)
//	  Bits 6-7: movement class
//
// # Report Archive
//
// ArchiveHeader is the 16-byte little-endian header of a packed report:
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|------------------------------
//	0-1    | Magic       | uint16 | 0x4C52
//	2      | Version     | uint8  | 1
//	3      | Compression | uint8  | format.CompressionType
//	4-7    | RawLength   | uint32 | report length before compression
//	8-15   | Checksum    | uint64 | xxHash64 of the raw report
package section
