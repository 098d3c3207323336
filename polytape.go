// Package polytape builds sparse multivariate polynomials, compacts them into
// flat tapes and evaluates those tapes at many parameter vectors.
//
// # Core Features
//
//   - Sparse polynomials over indexed variables with real or complex coefficients
//   - Algebra: add, multiply, scale, power, partial derivative
//   - Compact tape form: one int32 variable tape plus one coefficient tape
//   - Bulk evaluation of many encoded polynomials in one pass, optionally
//     in parallel over many parameter vectors
//   - Persisted blobs with varint indices, optional compression (Zstd, S2, LZ4)
//     and a BLAKE3 integrity digest
//
// # Basic Usage
//
//	// p = 2 + 3*x0 + 1.5*x0*x1
//	p := poly.New(map[poly.Monomial]complex128{
//		poly.M():     2,
//		poly.M(0):    3,
//		poly.M(0, 1): 1.5,
//	})
//
//	t, _ := polytape.Compact(p)
//	res, _ := polytape.Evaluate(t, []float64{2, 5})
//	fmt.Println(res.Real()[0]) // 23
//
// Persisting a tape:
//
//	data, _ := polytape.Marshal(t)
//	restored, _ := polytape.Unmarshal(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the poly, tape,
// eval and blob packages. For fine-grained control use those packages
// directly.
package polytape

import (
	"github.com/arloliu/polytape/blob"
	"github.com/arloliu/polytape/eval"
	"github.com/arloliu/polytape/format"
	"github.com/arloliu/polytape/poly"
	"github.com/arloliu/polytape/tape"
)

var defaultBlobOptions = []blob.TapeEncoderOption{
	blob.WithLittleEndian(),
	blob.WithIndexEncoding(format.IndexVarint),
	blob.WithIndexCompression(format.CompressionZstd),
	blob.WithCoeffCompression(format.CompressionNone),
}

// Compact encodes a single polynomial into a tape.
//
// Options bound the monomial order and variable count; see tape.WithMaxOrder
// and tape.WithMaxNumVars.
func Compact(p *poly.Polynomial, opts ...tape.Option) (*tape.Tape, error) {
	return tape.Compact(p, opts...)
}

// Encode encodes polys into one tape, one record per polynomial.
func Encode(polys []*poly.Polynomial, opts ...tape.Option) (*tape.Tape, error) {
	return tape.Encode(polys, opts...)
}

// Evaluate evaluates every record of t at params.
//
// shape gives the dimensions of the result; without it the result is
// one-dimensional with one value per record.
func Evaluate(t *tape.Tape, params []float64, shape ...int) (*eval.Result, error) {
	return eval.Evaluate(t, params, shape...)
}

// NewTapeEncoder creates a blob encoder with the given options.
func NewTapeEncoder(opts ...blob.TapeEncoderOption) (*blob.TapeEncoder, error) {
	return blob.NewTapeEncoder(opts...)
}

// NewDefaultTapeEncoder creates a blob encoder with the default settings:
// little-endian, varint indices, Zstd variable tape, uncompressed coefficients.
func NewDefaultTapeEncoder() (*blob.TapeEncoder, error) {
	return blob.NewTapeEncoder(defaultBlobOptions...)
}

// Marshal serializes t into a blob. Without options the default settings of
// NewDefaultTapeEncoder apply; given options are applied on top of them.
func Marshal(t *tape.Tape, opts ...blob.TapeEncoderOption) ([]byte, error) {
	enc, err := blob.NewTapeEncoder(append(defaultBlobOptions[:len(defaultBlobOptions):len(defaultBlobOptions)], opts...)...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(t)
}

// Unmarshal restores a tape from a blob produced by Marshal.
func Unmarshal(data []byte) (*tape.Tape, error) {
	dec, err := blob.NewTapeDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.Decode()
}
