// Package compress provides the codecs applied to the payloads of a serialized
// tape after encoding.
//
// A tape blob carries two payloads, the variable tape and the coefficient
// tape, and each may use its own codec:
//
//   - None: payload stored as encoded.
//   - Zstd: best ratio. Variable tapes of large polynomial families repeat
//     the same term headers and index runs, which Zstd folds well.
//   - S2: fast with a reasonable ratio.
//   - LZ4: fastest decompression.
//
// Raw float64 coefficients compress poorly with any codec; the usual choice
// is Zstd for the variable tape and None or S2 for the coefficient tape.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
//
// Built-in codecs are stateless values backed by pooled encoders and are safe
// for concurrent use.
//
// # Zstd backends
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with
// cgo enabled and the gozstd tag switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// Both backends produce standard Zstd frames, so blobs written by one decode
// with the other.
package compress
