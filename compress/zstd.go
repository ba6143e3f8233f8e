package compress

// ZstdCompressor provides Zstandard compression of archived reports.
//
// The default build uses the pure Go klauspost/compress implementation. Building
// with the gozstd tag (and cgo enabled) switches to the valyala/gozstd bindings
// of the reference C library; both produce standard zstd frames and can read each
// other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(report)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
