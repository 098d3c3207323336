package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/polytape/endian"
	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
)

// NewIndexEncoder returns the variable tape encoder for enc.
func NewIndexEncoder(enc format.IndexEncoding, engine endian.EndianEngine) (ColumnarEncoder[int32], error) {
	switch enc {
	case format.IndexRaw:
		return NewIndexRawEncoder(engine), nil
	case format.IndexVarint:
		return NewIndexVarintEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: index encoding %d", errs.ErrInvalidEncodingType, enc)
	}
}

// NewIndexDecoder returns the variable tape decoder for enc.
func NewIndexDecoder(enc format.IndexEncoding, engine endian.EndianEngine) (ColumnarDecoder[int32], error) {
	switch enc {
	case format.IndexRaw:
		return NewIndexRawDecoder(engine), nil
	case format.IndexVarint:
		return NewIndexVarintDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: index encoding %d", errs.ErrInvalidEncodingType, enc)
	}
}

// DecodeIndices decodes exactly count variable tape entries from data.
//
// Unlike ColumnarDecoder.All it fails with errs.ErrInvalidPayload on short or
// malformed data, and on trailing bytes. count is checked against len(data)
// before any allocation.
func DecodeIndices(enc format.IndexEncoding, engine endian.EndianEngine, data []byte, count int) ([]int32, error) {
	switch {
	case count < 0:
		return nil, fmt.Errorf("%w: negative count %d", errs.ErrInvalidPayload, count)
	case enc == format.IndexRaw && int64(len(data)) != int64(count)*indexRawWidth:
		return nil, fmt.Errorf("%w: %d bytes for %d raw indices", errs.ErrInvalidPayload, len(data), count)
	case enc == format.IndexVarint && count > len(data):
		// every varint takes at least one byte
		return nil, fmt.Errorf("%w: %d bytes cannot hold %d varint indices", errs.ErrInvalidPayload, len(data), count)
	}

	dec, err := NewIndexDecoder(enc, engine)
	if err != nil {
		return nil, err
	}

	out, err := collect(dec.All(data, count), count)
	if err != nil {
		return nil, err
	}

	if enc == format.IndexVarint && varintSize(out) != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after varint indices", errs.ErrInvalidPayload, len(data)-varintSize(out))
	}

	return out, nil
}

// DecodeReal decodes exactly count real coefficients from data.
func DecodeReal(engine endian.EndianEngine, data []byte, count int) ([]float64, error) {
	if count < 0 || int64(len(data)) != int64(count)*realWidth {
		return nil, fmt.Errorf("%w: %d bytes for %d real coefficients", errs.ErrInvalidPayload, len(data), count)
	}

	return collect(NewRealRawDecoder(engine).All(data, count), count)
}

// DecodeComplex decodes exactly count complex coefficients from data.
func DecodeComplex(engine endian.EndianEngine, data []byte, count int) ([]complex128, error) {
	if count < 0 || int64(len(data)) != int64(count)*complexWidth {
		return nil, fmt.Errorf("%w: %d bytes for %d complex coefficients", errs.ErrInvalidPayload, len(data), count)
	}

	return collect(NewComplexRawDecoder(engine).All(data, count), count)
}

func collect[T any](seq iter.Seq[T], count int) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", errs.ErrInvalidPayload, count)
	}

	out := make([]T, 0, count)
	for v := range seq {
		out = append(out, v)
	}
	if len(out) != count {
		return nil, fmt.Errorf("%w: decoded %d of %d values", errs.ErrInvalidPayload, len(out), count)
	}

	return out, nil
}

// varintSize returns the encoded size of values under IndexVarint.
func varintSize(values []int32) int {
	size := 0
	for _, v := range values {
		u := zigzag(v)
		size++
		for u >= 0x80 {
			u >>= 7
			size++
		}
	}

	return size
}
