// Package blob persists compact tapes as self-describing byte blobs.
//
// A blob holds a versioned 32-byte header (see package section), the
// encoded and compressed variable tape, the encoded and compressed
// coefficient tape, and a BLAKE3 digest of everything before it. The
// in-memory tape layout is unchanged by persistence: decoding a blob yields a
// tape equal to the one that was encoded.
//
// # Encoding
//
//	enc, err := blob.NewTapeEncoder(
//		blob.WithIndexEncoding(format.IndexVarint),
//		blob.WithIndexCompression(format.CompressionZstd),
//		blob.WithCoeffCompression(format.CompressionNone),
//	)
//	if err != nil {
//		return err
//	}
//	data, err := enc.Encode(t)
//
// # Decoding
//
//	dec, err := blob.NewTapeDecoder(data)
//	if err != nil {
//		return err // bad header, truncated blob or digest mismatch
//	}
//	t, err := dec.Decode()
//
// The decoder picks the byte order, encodings and codecs from the header, so
// no options are needed.
//
// # Thread Safety
//
// A TapeEncoder holds only its configuration and may encode many tapes,
// also concurrently. A TapeDecoder is bound to one blob and is not safe for
// concurrent use.
package blob
