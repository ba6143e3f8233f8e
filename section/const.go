package section

import "math"

// Framing sizes.
const (
	HeaderSize     = 2             // subelement ID byte + payload length byte
	MaxPayloadSize = math.MaxUint8 // largest payload a single length byte can describe
)

// Fixed payload sizes.
const (
	LCIPayloadSize      = 16 // geodetic LCI payload
	ZPayloadSize        = 6  // Z payload
	UsagePayloadSize    = 1  // usage payload without expiry
	UsageExpirySize     = 2  // expiry hours field
	BSSIDSize           = 6  // one EUI-48 address
	MaxBSSIDs           = 42 // (MaxPayloadSize - 1 indicator byte) / BSSIDSize
	CountryCodeSize     = 2  // civic country code
	LanguageCodeSize    = 2  // civic language code
	CivicElementHdrSize = 2  // CA type byte + CA length byte
	MapTypeSize         = 1  // map image type byte
)

// Usage rules/policy flag bits.
const (
	UsageRetransmissionMask = 0x01 // Bit 0: retransmission allowed
	UsageRetentionMask      = 0x02 // Bit 1: retention expires (expiry field follows)
	UsagePolicyMask         = 0x04 // Bit 2: STA location policy present
	UsageReservedMask       = 0xF8 // Bits 3-7: reserved, must be 0
)

// Z status bits.
const (
	ZMovementMask         = 0x03 // Bits 0-1 of byte 0 and bits 6-7 (after shift) of byte 5
	ZUncertaintyMask      = 0x0F // Bits 0-3 of byte 5: height uncertainty class
	ZLegacyReservedMask   = 0x30 // Bits 4-5 of byte 5: reserved, forced to 1 in legacy mode
	ZMovementTrailerShift = 6    // movement class position in byte 5
)

// LCI final status byte bits (payload bits 120-127).
const (
	LCIDatumMask           = 0x07 // Bits 0-2: map datum
	LCIRegLocAgreementMask = 0x08 // Bit 3: RegLoc agreement
	LCIRegLocDSEMask       = 0x10 // Bit 4: RegLoc DSE
	LCIDependentSTAMask    = 0x20 // Bit 5: dependent STA
	LCIVersionMask         = 0xC0 // Bits 6-7: version
	LCIVersionShift        = 6
	LCIVersion1            = 1
)

// Report archive envelope.
const (
	ArchiveMagic      = 0x4C52 // "RL" little-endian, identifies a packed report
	ArchiveVersion1   = 1
	ArchiveHeaderSize = 16
)
