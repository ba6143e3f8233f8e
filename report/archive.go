package report

import (
	"fmt"
	"math"

	"github.com/arloliu/lcikit/compress"
	"github.com/arloliu/lcikit/errs"
	"github.com/arloliu/lcikit/format"
	"github.com/arloliu/lcikit/internal/hash"
	"github.com/arloliu/lcikit/internal/pool"
	"github.com/arloliu/lcikit/section"
)

// Pack wraps the report body in an archive envelope.
//
// Layout (little-endian):
//
//	magic 0x4C52 (2) | version (1) | compression (1) | raw length (4) | xxHash64 (8) | body
//
// Parameters:
//   - compression: Codec applied to the body
//
// Returns:
//   - []byte: The archive, newly allocated
//   - error: unsupported compression or a codec failure
func (r *Report) Pack(compression format.CompressionType) ([]byte, error) {
	return PackBytes(r.data, compression)
}

// PackBytes wraps an arbitrary report body in an archive envelope. See Report.Pack.
func PackBytes(raw []byte, compression format.CompressionType) ([]byte, error) {
	if uint64(len(raw)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: report of %d bytes is too large", errs.ErrInvalidArchive, len(raw))
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	body, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress report: %w", err)
	}

	header := section.NewArchiveHeader(compression, uint32(len(raw)), hash.Fingerprint(raw)) //nolint:gosec

	buf := pool.GetReportBuffer()
	defer pool.PutReportBuffer(buf)

	buf.Grow(section.ArchiveHeaderSize + len(body))
	buf.MustWrite(header.Bytes())
	buf.MustWrite(body)

	return append([]byte(nil), buf.Bytes()...), nil
}

// Unpack restores the report body from an archive produced by Pack.
//
// Returns:
//   - []byte: The raw report body
//   - section.ArchiveHeader: The parsed archive header
//   - error: ErrInvalidArchive for a malformed envelope or body, ErrChecksumMismatch
//     if the restored body does not match the recorded fingerprint
func Unpack(data []byte) ([]byte, section.ArchiveHeader, error) {
	var header section.ArchiveHeader
	if err := header.Parse(data); err != nil {
		return nil, header, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, header, fmt.Errorf("%w: %w", errs.ErrInvalidArchive, err)
	}

	raw, err := codec.Decompress(data[section.ArchiveHeaderSize:])
	if err != nil {
		return nil, header, fmt.Errorf("%w: %w", errs.ErrInvalidArchive, err)
	}

	if uint64(len(raw)) != uint64(header.RawLength) {
		return nil, header, fmt.Errorf("%w: body is %d bytes, header says %d",
			errs.ErrInvalidArchive, len(raw), header.RawLength)
	}
	if sum := hash.Fingerprint(raw); sum != header.Checksum {
		return nil, header, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	return append([]byte(nil), raw...), header, nil
}
