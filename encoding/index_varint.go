package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/arloliu/polytape/internal/pool"
)

// IndexVarintEncoder writes variable tape entries as zigzag varints.
//
// Zigzag maps small magnitudes of either sign to small unsigned values:
// 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3. A valid tape holds only non-negative
// entries, but corrupt tapes still round-trip unchanged.
//
// Varints are byte-order independent, so the encoder takes no engine.
type IndexVarintEncoder struct {
	temp  [binary.MaxVarintLen32]byte
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[int32] = (*IndexVarintEncoder)(nil)

// NewIndexVarintEncoder creates a varint encoder.
func NewIndexVarintEncoder() *IndexVarintEncoder {
	return &IndexVarintEncoder{buf: pool.GetTapeBuffer()}
}

// Write encodes a single entry.
//
// Panics if Finish() has been called.
func (e *IndexVarintEncoder) Write(v int32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	n := binary.PutUvarint(e.temp[:], zigzag(v))
	_, _ = e.buf.Write(e.temp[:n])
}

// WriteSlice encodes values, growing the buffer once for the common
// one-byte case.
//
// Panics if Finish() has been called.
func (e *IndexVarintEncoder) WriteSlice(values []int32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(values)
	e.buf.Grow(len(values))
	for _, v := range values {
		e.buf.B = binary.AppendUvarint(e.buf.B, zigzag(v))
	}
}

// Bytes returns the encoded payload.
func (e *IndexVarintEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded entries.
func (e *IndexVarintEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *IndexVarintEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset discards the encoded entries.
func (e *IndexVarintEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *IndexVarintEncoder) Finish() {
	if e.buf != nil {
		pool.PutTapeBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// IndexVarintDecoder reads entries written by IndexVarintEncoder.
type IndexVarintDecoder struct{}

var _ ColumnarDecoder[int32] = IndexVarintDecoder{}

// NewIndexVarintDecoder creates a varint decoder.
func NewIndexVarintDecoder() IndexVarintDecoder {
	return IndexVarintDecoder{}
}

// All yields up to count entries and stops at the first malformed varint.
func (d IndexVarintDecoder) All(data []byte, count int) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		offset := 0
		for range count {
			v, n, ok := readVarint(data[offset:])
			if !ok {
				return
			}
			offset += n
			if !yield(v) {
				return
			}
		}
	}
}

// At scans forward to the entry at index. It is O(index).
func (d IndexVarintDecoder) At(data []byte, index int, count int) (int32, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	offset := 0
	for i := 0; ; i++ {
		v, n, ok := readVarint(data[offset:])
		if !ok {
			return 0, false
		}
		if i == index {
			return v, true
		}
		offset += n
	}
}

// readVarint decodes one zigzag varint that must fit in an int32.
func readVarint(data []byte) (int32, int, bool) {
	u, n := binary.Uvarint(data)
	if n <= 0 || u > 0xFFFFFFFF {
		return 0, 0, false
	}

	return unzigzag(uint32(u)), n, true
}

func zigzag(v int32) uint64 {
	return uint64(uint32((v << 1) ^ (v >> 31))) //nolint:gosec
}

func unzigzag(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1) //nolint:gosec
}
