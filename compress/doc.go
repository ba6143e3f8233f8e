// Package compress provides the codecs used to compress archived location reports.
//
// A joined report is a few dozen to a few hundred bytes, so archives default to
// no compression. The other codecs pay off when many reports for a site are
// stored or shipped together.
//
// # Available Algorithms
//
//   - None (NoOpCompressor): pass-through, no allocation
//   - Zstd (ZstdCompressor): best ratio; pure Go by default, valyala/gozstd with
//     the gozstd build tag
//   - S2 (S2Compressor): klauspost/compress S2 blocks, fast with a fair ratio
//   - LZ4 (LZ4Compressor): pierrec/lz4 blocks, fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//
//	compressed, err := codec.Compress(report)
//	if err != nil {
//	    return err
//	}
//
//	original, err := codec.Decompress(compressed)
//
// The report package wraps the compressed body in an archive envelope that
// records the codec, the raw length and an xxHash64 checksum; use report.Pack
// and report.Unpack rather than calling the codecs directly.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Zstd and LZ4 keep their encoders and
// decoders in sync.Pool instances.
package compress
