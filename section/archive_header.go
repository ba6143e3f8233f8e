package section

import (
	"fmt"

	"github.com/arloliu/lcikit/endian"
	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
)

// ArchiveHeader is the fixed-size header of a packed report.
type ArchiveHeader struct {
	// Magic identifies the envelope, always ArchiveMagic.
	Magic uint16 // byte offset 0-1
	// Version is the envelope version, currently ArchiveVersion1.
	Version uint8 // byte offset 2
	// Compression is the codec applied to the body.
	Compression format.CompressionType // byte offset 3
	// RawLength is the length of the report before compression.
	RawLength uint32 // byte offset 4-7
	// Checksum is the xxHash64 of the uncompressed report.
	Checksum uint64 // byte offset 8-15
}

// NewArchiveHeader creates a header for a report of rawLength bytes.
func NewArchiveHeader(compression format.CompressionType, rawLength uint32, checksum uint64) ArchiveHeader {
	return ArchiveHeader{
		Magic:       ArchiveMagic,
		Version:     ArchiveVersion1,
		Compression: compression,
		RawLength:   rawLength,
		Checksum:    checksum,
	}
}

// Bytes serializes the header, always little-endian.
func (h ArchiveHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, 0, ArchiveHeaderSize)
	b = engine.AppendUint16(b, h.Magic)
	b = append(b, h.Version, uint8(h.Compression))
	b = engine.AppendUint32(b, h.RawLength)

	return engine.AppendUint64(b, h.Checksum)
}

// Parse parses the header from the first ArchiveHeaderSize bytes of data.
//
// Returns:
//   - error: ErrInvalidArchive for short data, a wrong magic number or an unknown version
func (h *ArchiveHeader) Parse(data []byte) error {
	if len(data) < ArchiveHeaderSize {
		return fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidArchive, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	h.Magic = engine.Uint16(data[0:2])
	h.Version = data[2]
	h.Compression = format.CompressionType(data[3])
	h.RawLength = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	if h.Magic != ArchiveMagic {
		return fmt.Errorf("%w: magic 0x%04x", errs.ErrInvalidArchive, h.Magic)
	}
	if h.Version != ArchiveVersion1 {
		return fmt.Errorf("%w: version %d", errs.ErrInvalidArchive, h.Version)
	}

	return nil
}
