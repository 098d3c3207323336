package encoding

import (
	"iter"

	"github.com/arloliu/polytape/endian"
	"github.com/arloliu/polytape/internal/pool"
)

const indexRawWidth = 4

// IndexRawEncoder writes variable tape entries as fixed-width 4-byte integers.
type IndexRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[int32] = (*IndexRawEncoder)(nil)

// NewIndexRawEncoder creates a fixed-width encoder using engine's byte order.
func NewIndexRawEncoder(engine endian.EndianEngine) *IndexRawEncoder {
	return &IndexRawEncoder{
		engine: engine,
		buf:    pool.GetTapeBuffer(),
	}
}

// Write encodes a single entry.
//
// Panics if Finish() has been called.
func (e *IndexRawEncoder) Write(v int32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(indexRawWidth)
	e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(v)) //nolint:gosec
}

// WriteSlice encodes values with a single buffer growth.
//
// Panics if Finish() has been called.
func (e *IndexRawEncoder) WriteSlice(values []int32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(values)
	e.buf.Grow(len(values) * indexRawWidth)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(v)) //nolint:gosec
	}
}

// Bytes returns the encoded payload.
func (e *IndexRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded entries.
func (e *IndexRawEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes, always 4 * Len().
func (e *IndexRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset discards the encoded entries.
func (e *IndexRawEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *IndexRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutTapeBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// IndexRawDecoder reads entries written by IndexRawEncoder.
//
// It is stateless; the value form avoids a heap allocation per decoder.
type IndexRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[int32] = IndexRawDecoder{}

// NewIndexRawDecoder creates a decoder; engine must match the encoder's.
func NewIndexRawDecoder(engine endian.EndianEngine) IndexRawDecoder {
	return IndexRawDecoder{engine: engine}
}

// All yields count entries, or nothing if data is shorter than 4*count bytes.
func (d IndexRawDecoder) All(data []byte, count int) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		if count <= 0 || len(data) < count*indexRawWidth {
			return
		}

		for i := range count {
			start := i * indexRawWidth
			if !yield(int32(d.engine.Uint32(data[start : start+indexRawWidth]))) { //nolint:gosec
				return
			}
		}
	}
}

// At returns the entry at index.
func (d IndexRawDecoder) At(data []byte, index int, count int) (int32, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * indexRawWidth
	if start+indexRawWidth > len(data) {
		return 0, false
	}

	return int32(d.engine.Uint32(data[start : start+indexRawWidth])), true //nolint:gosec
}
