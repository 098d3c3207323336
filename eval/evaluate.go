package eval

import (
	"fmt"
	"slices"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
	"github.com/arloliu/polytape/internal/pool"
	"github.com/arloliu/polytape/tape"
)

// Evaluate evaluates every record of t at the real parameter vector params.
//
// The result has the tape's coefficient kind: a real tape yields real values,
// a complex tape yields complex values. shape gives the dimensions of the
// result; without it the result is one-dimensional with one value per record.
// A shape whose size differs from the record count returns an error wrapping
// errs.ErrInternalConsistency.
func Evaluate(t *tape.Tape, params []float64, shape ...int) (*Result, error) {
	shape, size, err := resolveShape(t, shape)
	if err != nil {
		return nil, err
	}

	if !t.IsComplex() {
		out := make([]float64, size)
		if err := Bulk(t.Vars(), t.RealCoeffs(), params, out); err != nil {
			return nil, err
		}

		return &Result{shape: shape, kind: format.CoeffReal, realData: out}, nil
	}

	cparams, cleanup := pool.GetComplex128Slice(len(params))
	defer cleanup()
	promote(cparams, params)

	out := make([]complex128, size)
	if err := Bulk(t.Vars(), t.ComplexCoeffs(), cparams, out); err != nil {
		return nil, err
	}

	return &Result{shape: shape, kind: format.CoeffComplex, complexData: out}, nil
}

// EvaluateComplex evaluates every record of t at the complex parameter vector
// params. The result is always complex.
func EvaluateComplex(t *tape.Tape, params []complex128, shape ...int) (*Result, error) {
	shape, size, err := resolveShape(t, shape)
	if err != nil {
		return nil, err
	}

	coeffs := t.ComplexCoeffs()
	if !t.IsComplex() {
		coeffs = t.ComplexCopy()
	}

	out := make([]complex128, size)
	if err := Bulk(t.Vars(), coeffs, params, out); err != nil {
		return nil, err
	}

	return &Result{shape: shape, kind: format.CoeffComplex, complexData: out}, nil
}

// resolveShape returns a private copy of shape and its size. An empty shape
// becomes the one-dimensional shape holding the record count of t.
func resolveShape(t *tape.Tape, shape []int) ([]int, int, error) {
	if len(shape) == 0 {
		n, err := t.Records()
		if err != nil {
			return nil, 0, err
		}

		return []int{n}, n, nil
	}

	size, err := shapeSize(shape)
	if err != nil {
		return nil, 0, err
	}

	return slices.Clone(shape), size, nil
}

func promote(dst []complex128, src []float64) {
	for i, v := range src {
		dst[i] = complex(v, 0)
	}
}

// checkRecords verifies that t encodes exactly size records.
func checkRecords(t *tape.Tape, size int) error {
	n, err := t.Records()
	if err != nil {
		return err
	}
	if n != size {
		return fmt.Errorf("%w: tape holds %d records, shape holds %d", errs.ErrInternalConsistency, n, size)
	}

	return nil
}
