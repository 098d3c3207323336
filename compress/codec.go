package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
)

// Compressor compresses an encoded tape payload.
type Compressor interface {
	// Compress returns the compressed form of data. data is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original payload, or an error if data is
	// corrupted or was produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compress/decompress round trip.
type CompressionStats struct {
	Algorithm           format.CompressionType
	OriginalSize        int64
	CompressedSize      int64
	CompressionTimeNs   int64
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size, or 0 for an empty input.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses and decompresses data with the built-in codec for
// compressionType and reports sizes and timings. It fails if the round trip
// does not reproduce data's length.
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return CompressionStats{}, err
	}

	start := time.Now()
	packed, err := codec.Compress(data)
	if err != nil {
		return CompressionStats{}, err
	}
	compressTime := time.Since(start)

	start = time.Now()
	restored, err := codec.Decompress(packed)
	if err != nil {
		return CompressionStats{}, err
	}
	decompressTime := time.Since(start)

	if len(restored) != len(data) {
		return CompressionStats{}, fmt.Errorf("%w: %s round trip returned %d of %d bytes",
			errs.ErrInvalidPayloadSize, compressionType, len(restored), len(data))
	}

	return CompressionStats{
		Algorithm:           compressionType,
		OriginalSize:        int64(len(data)),
		CompressedSize:      int64(len(packed)),
		CompressionTimeNs:   compressTime.Nanoseconds(),
		DecompressionTimeNs: decompressTime.Nanoseconds(),
	}, nil
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
