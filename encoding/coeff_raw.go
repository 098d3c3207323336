package encoding

import (
	"iter"
	"math"

	"github.com/arloliu/polytape/endian"
	"github.com/arloliu/polytape/internal/pool"
)

const (
	realWidth    = 8
	complexWidth = 16
)

// RealRawEncoder writes real coefficients in their IEEE 754 representation,
// 8 bytes per value.
type RealRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*RealRawEncoder)(nil)

// NewRealRawEncoder creates a real coefficient encoder using engine's byte order.
func NewRealRawEncoder(engine endian.EndianEngine) *RealRawEncoder {
	return &RealRawEncoder{
		engine: engine,
		buf:    pool.GetTapeBuffer(),
	}
}

// Write encodes a single coefficient.
//
// Panics if Finish() has been called.
func (e *RealRawEncoder) Write(v float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(realWidth)
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
}

// WriteSlice encodes values with a single buffer growth.
//
// Panics if Finish() has been called.
func (e *RealRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(values)
	e.buf.Grow(len(values) * realWidth)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
	}
}

// Bytes returns the encoded payload.
func (e *RealRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded coefficients.
func (e *RealRawEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *RealRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset discards the encoded coefficients.
func (e *RealRawEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *RealRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutTapeBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// RealRawDecoder reads coefficients written by RealRawEncoder.
type RealRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = RealRawDecoder{}

// NewRealRawDecoder creates a decoder; engine must match the encoder's.
func NewRealRawDecoder(engine endian.EndianEngine) RealRawDecoder {
	return RealRawDecoder{engine: engine}
}

// All yields count coefficients, or nothing if data is too short.
func (d RealRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 || len(data) < count*realWidth {
			return
		}

		for i := range count {
			if !yield(d.decode(data[i*realWidth:])) {
				return
			}
		}
	}
}

// At returns the coefficient at index.
func (d RealRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count || (index+1)*realWidth > len(data) {
		return 0, false
	}

	return d.decode(data[index*realWidth:]), true
}

func (d RealRawDecoder) decode(b []byte) float64 {
	return math.Float64frombits(d.engine.Uint64(b[:realWidth]))
}

// ComplexRawEncoder writes complex coefficients as two IEEE 754 values, real
// part first, 16 bytes per value.
type ComplexRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[complex128] = (*ComplexRawEncoder)(nil)

// NewComplexRawEncoder creates a complex coefficient encoder using engine's byte order.
func NewComplexRawEncoder(engine endian.EndianEngine) *ComplexRawEncoder {
	return &ComplexRawEncoder{
		engine: engine,
		buf:    pool.GetTapeBuffer(),
	}
}

// Write encodes a single coefficient.
//
// Panics if Finish() has been called.
func (e *ComplexRawEncoder) Write(v complex128) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(complexWidth)
	e.append(v)
}

// WriteSlice encodes values with a single buffer growth.
//
// Panics if Finish() has been called.
func (e *ComplexRawEncoder) WriteSlice(values []complex128) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(values)
	e.buf.Grow(len(values) * complexWidth)
	for _, v := range values {
		e.append(v)
	}
}

func (e *ComplexRawEncoder) append(v complex128) {
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(real(v)))
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(imag(v)))
}

// Bytes returns the encoded payload.
func (e *ComplexRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded coefficients.
func (e *ComplexRawEncoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *ComplexRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset discards the encoded coefficients.
func (e *ComplexRawEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *ComplexRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutTapeBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// ComplexRawDecoder reads coefficients written by ComplexRawEncoder.
type ComplexRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[complex128] = ComplexRawDecoder{}

// NewComplexRawDecoder creates a decoder; engine must match the encoder's.
func NewComplexRawDecoder(engine endian.EndianEngine) ComplexRawDecoder {
	return ComplexRawDecoder{engine: engine}
}

// All yields count coefficients, or nothing if data is too short.
func (d ComplexRawDecoder) All(data []byte, count int) iter.Seq[complex128] {
	return func(yield func(complex128) bool) {
		if count <= 0 || len(data) < count*complexWidth {
			return
		}

		for i := range count {
			if !yield(d.decode(data[i*complexWidth:])) {
				return
			}
		}
	}
}

// At returns the coefficient at index.
func (d ComplexRawDecoder) At(data []byte, index int, count int) (complex128, bool) {
	if index < 0 || index >= count || (index+1)*complexWidth > len(data) {
		return 0, false
	}

	return d.decode(data[index*complexWidth:]), true
}

func (d ComplexRawDecoder) decode(b []byte) complex128 {
	re := math.Float64frombits(d.engine.Uint64(b[:realWidth]))
	im := math.Float64frombits(d.engine.Uint64(b[realWidth:complexWidth]))

	return complex(re, im)
}
