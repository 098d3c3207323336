package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// The backend is chosen at build time, see the package documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec at the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
