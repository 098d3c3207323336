package encoding

import "iter"

// ColumnarEncoder accumulates a column of values into a byte payload.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded payload.
	// The returned slice is valid until the next call to Write, WriteSlice, Reset or Finish.
	// The caller must not modify it.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the payload size in bytes.
	Size() int

	// Reset discards the encoded values and keeps the buffer for reuse.
	Reset()

	// Finish returns the buffer to the pool.
	//
	// After Finish the encoder is no longer usable; Write, WriteSlice, Bytes
	// and Size panic. Use defer to release the buffer on error paths:
	//
	//	enc := NewIndexRawEncoder(engine)
	//	defer enc.Finish()
	Finish()

	// Write encodes a single value.
	Write(v T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values back from a payload produced by the matching encoder.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator over the first count values of data.
	//
	// On malformed or short data the iterator yields fewer than count
	// values; callers that need a hard failure use the Decode functions.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index. The second result is false when index is
	// outside [0, count) or data is too short.
	At(data []byte, index int, count int) (T, bool)
}
