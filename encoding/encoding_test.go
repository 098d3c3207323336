package encoding

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polytape/endian"
	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
)

var sampleVars = []int32{3, 0, 1, 0, 2, 0, 1, 0, 2, 1, 2, 2, 1, 7}

func engines() map[string]endian.EndianEngine {
	return map[string]endian.EndianEngine{
		"little": endian.GetLittleEndianEngine(),
		"big":    endian.GetBigEndianEngine(),
	}
}

func TestIndexRawEncoder(t *testing.T) {
	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			enc := NewIndexRawEncoder(engine)
			defer enc.Finish()

			require.Zero(t, enc.Len())
			require.Empty(t, enc.Bytes())

			enc.Write(sampleVars[0])
			enc.WriteSlice(sampleVars[1:])
			require.Equal(t, len(sampleVars), enc.Len())
			require.Equal(t, 4*len(sampleVars), enc.Size())

			dec := NewIndexRawDecoder(engine)
			require.Equal(t, sampleVars, slices.Collect(dec.All(enc.Bytes(), enc.Len())))

			v, ok := dec.At(enc.Bytes(), 13, enc.Len())
			require.True(t, ok)
			require.Equal(t, int32(7), v)

			_, ok = dec.At(enc.Bytes(), enc.Len(), enc.Len())
			require.False(t, ok)
			_, ok = dec.At(enc.Bytes(), -1, enc.Len())
			require.False(t, ok)

			require.Empty(t, slices.Collect(dec.All(enc.Bytes()[:7], 2)))
		})
	}
}

func TestIndexRawEncoder_ByteOrder(t *testing.T) {
	le := NewIndexRawEncoder(endian.GetLittleEndianEngine())
	defer le.Finish()
	be := NewIndexRawEncoder(endian.GetBigEndianEngine())
	defer be.Finish()

	le.Write(0x01020304)
	be.Write(0x01020304)

	require.Equal(t, []byte{4, 3, 2, 1}, le.Bytes())
	require.Equal(t, []byte{1, 2, 3, 4}, be.Bytes())
}

func TestIndexVarintEncoder(t *testing.T) {
	enc := NewIndexVarintEncoder()
	defer enc.Finish()

	enc.WriteSlice(sampleVars)
	require.Equal(t, len(sampleVars), enc.Len())
	require.Equal(t, len(sampleVars), enc.Size(), "small entries take one byte each")

	dec := NewIndexVarintDecoder()
	require.Equal(t, sampleVars, slices.Collect(dec.All(enc.Bytes(), enc.Len())))

	v, ok := dec.At(enc.Bytes(), 9, enc.Len())
	require.True(t, ok)
	require.Equal(t, sampleVars[9], v)

	_, ok = dec.At(enc.Bytes(), 20, enc.Len())
	require.False(t, ok)
}

func TestIndexVarintEncoder_Extremes(t *testing.T) {
	values := []int32{0, -1, 1, -64, 64, math.MaxInt32, math.MinInt32}

	enc := NewIndexVarintEncoder()
	defer enc.Finish()
	for _, v := range values {
		enc.Write(v)
	}

	require.Equal(t, []byte{0, 1, 2}, enc.Bytes()[:3])
	require.Equal(t, values, slices.Collect(NewIndexVarintDecoder().All(enc.Bytes(), len(values))))
}

func TestIndexVarintDecoder_Truncated(t *testing.T) {
	enc := NewIndexVarintEncoder()
	defer enc.Finish()
	enc.Write(1000)

	data := enc.Bytes()
	require.Len(t, data, 2)

	require.Empty(t, slices.Collect(NewIndexVarintDecoder().All(data[:1], 1)))
	_, ok := NewIndexVarintDecoder().At(data[:1], 0, 1)
	require.False(t, ok)
}

func TestEncoder_ResetAndFinish(t *testing.T) {
	enc := NewIndexVarintEncoder()
	enc.WriteSlice([]int32{1, 2, 3})
	enc.Reset()
	require.Zero(t, enc.Len())
	require.Zero(t, enc.Size())

	enc.Finish()
	require.Panics(t, func() { enc.Write(1) })
	require.Panics(t, func() { enc.Bytes() })

	raw := NewRealRawEncoder(endian.GetLittleEndianEngine())
	raw.Finish()
	require.Panics(t, func() { raw.WriteSlice([]float64{1}) })
}

func TestRealRawEncoder(t *testing.T) {
	values := []float64{4, -1, 0.125, math.Inf(1), math.SmallestNonzeroFloat64}

	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			enc := NewRealRawEncoder(engine)
			defer enc.Finish()

			enc.WriteSlice(values[:2])
			for _, v := range values[2:] {
				enc.Write(v)
			}
			require.Equal(t, 8*len(values), enc.Size())

			dec := NewRealRawDecoder(engine)
			require.Equal(t, values, slices.Collect(dec.All(enc.Bytes(), len(values))))

			v, ok := dec.At(enc.Bytes(), 2, len(values))
			require.True(t, ok)
			require.Equal(t, 0.125, v)
		})
	}
}

func TestComplexRawEncoder(t *testing.T) {
	values := []complex128{1 + 2i, -0.5i, 3, complex(math.MaxFloat64, -math.MaxFloat64)}

	for name, engine := range engines() {
		t.Run(name, func(t *testing.T) {
			enc := NewComplexRawEncoder(engine)
			defer enc.Finish()

			enc.WriteSlice(values)
			require.Equal(t, len(values), enc.Len())
			require.Equal(t, 16*len(values), enc.Size())

			dec := NewComplexRawDecoder(engine)
			require.Equal(t, values, slices.Collect(dec.All(enc.Bytes(), len(values))))

			v, ok := dec.At(enc.Bytes(), 1, len(values))
			require.True(t, ok)
			require.Equal(t, -0.5i, v)

			_, ok = dec.At(enc.Bytes()[:40], 2, len(values))
			require.False(t, ok)
		})
	}
}

func TestDecodeIndices(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	for _, kind := range []format.IndexEncoding{format.IndexRaw, format.IndexVarint} {
		t.Run(kind.String(), func(t *testing.T) {
			enc, err := NewIndexEncoder(kind, engine)
			require.NoError(t, err)
			defer enc.Finish()
			enc.WriteSlice(sampleVars)

			got, err := DecodeIndices(kind, engine, enc.Bytes(), len(sampleVars))
			require.NoError(t, err)
			require.Equal(t, sampleVars, got)

			_, err = DecodeIndices(kind, engine, enc.Bytes(), len(sampleVars)+1)
			require.ErrorIs(t, err, errs.ErrInvalidPayload)

			_, err = DecodeIndices(kind, engine, append(slices.Clone(enc.Bytes()), 0), len(sampleVars))
			require.ErrorIs(t, err, errs.ErrInvalidPayload)
		})
	}

	t.Run("count larger than payload", func(t *testing.T) {
		for _, kind := range []format.IndexEncoding{format.IndexRaw, format.IndexVarint} {
			_, err := DecodeIndices(kind, engine, []byte{1, 2, 3, 4}, math.MaxInt32)
			require.ErrorIs(t, err, errs.ErrInvalidPayload)

			_, err = DecodeIndices(kind, engine, []byte{1, 2, 3, 4}, -1)
			require.ErrorIs(t, err, errs.ErrInvalidPayload)
		}

		_, err := DecodeReal(engine, make([]byte, 8), math.MaxInt32)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
		_, err = DecodeComplex(engine, make([]byte, 16), math.MaxInt32)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})

	_, err := NewIndexEncoder(format.IndexEncoding(99), engine)
	require.ErrorIs(t, err, errs.ErrInvalidEncodingType)
	_, err = DecodeIndices(format.IndexEncoding(99), engine, nil, 0)
	require.ErrorIs(t, err, errs.ErrInvalidEncodingType)
}

func TestDecodeCoefficients(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	renc := NewRealRawEncoder(engine)
	defer renc.Finish()
	renc.WriteSlice([]float64{1, 2, 3})

	reals, err := DecodeReal(engine, renc.Bytes(), 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, reals)

	_, err = DecodeReal(engine, renc.Bytes()[:23], 3)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	empty, err := DecodeReal(engine, nil, 0)
	require.NoError(t, err)
	require.Empty(t, empty)

	cenc := NewComplexRawEncoder(engine)
	defer cenc.Finish()
	cenc.WriteSlice([]complex128{1i, 2})

	cs, err := DecodeComplex(engine, cenc.Bytes(), 2)
	require.NoError(t, err)
	require.Equal(t, []complex128{1i, 2}, cs)

	_, err = DecodeComplex(engine, cenc.Bytes(), 1)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func BenchmarkIndexEncoders(b *testing.B) {
	vars := make([]int32, 0, 64*1024)
	for i := range cap(vars) {
		vars = append(vars, int32(i%17)) //nolint:gosec
	}
	engine := endian.GetLittleEndianEngine()

	b.Run("Raw", func(b *testing.B) {
		for b.Loop() {
			enc := NewIndexRawEncoder(engine)
			enc.WriteSlice(vars)
			enc.Finish()
		}
	})

	b.Run("Varint", func(b *testing.B) {
		for b.Loop() {
			enc := NewIndexVarintEncoder()
			enc.WriteSlice(vars)
			enc.Finish()
		}
	})
}
