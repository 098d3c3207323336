package eval

import (
	"fmt"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
)

// Result holds evaluated values in row-major order together with their shape.
type Result struct {
	shape       []int
	kind        format.CoefficientKind
	realData    []float64
	complexData []complex128
}

// Shape returns the dimensions of the result.
func (r *Result) Shape() []int {
	return r.shape
}

// Len returns the number of values.
func (r *Result) Len() int {
	if r.IsComplex() {
		return len(r.complexData)
	}

	return len(r.realData)
}

// Kind returns the scalar kind of the values, inherited from the tape.
func (r *Result) Kind() format.CoefficientKind {
	return r.kind
}

// IsComplex reports whether the values are complex.
func (r *Result) IsComplex() bool {
	return r.kind == format.CoeffComplex
}

// Real returns the flat real values, or nil for a complex result.
func (r *Result) Real() []float64 {
	return r.realData
}

// Complex returns the flat values as complex numbers. A real result is
// converted into a new slice.
func (r *Result) Complex() []complex128 {
	if r.IsComplex() {
		return r.complexData
	}

	out := make([]complex128, len(r.realData))
	for i, v := range r.realData {
		out[i] = complex(v, 0)
	}

	return out
}

// At returns the value at the multi-index idx. It panics if idx is out of
// range, like indexing a slice.
func (r *Result) At(idx ...int) complex128 {
	flat := r.offset(idx)
	if r.IsComplex() {
		return r.complexData[flat]
	}

	return complex(r.realData[flat], 0)
}

func (r *Result) offset(idx []int) int {
	if len(idx) != len(r.shape) {
		panic(fmt.Sprintf("eval: %d indices for a %d-dimensional result", len(idx), len(r.shape)))
	}

	flat := 0
	for d, i := range idx {
		if i < 0 || i >= r.shape[d] {
			panic(fmt.Sprintf("eval: index %d out of range for dimension %d of size %d", i, d, r.shape[d]))
		}
		flat = flat*r.shape[d] + i
	}

	return flat
}

// shapeSize returns the number of elements of shape.
func shapeSize(shape []int) (int, error) {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in %v", errs.ErrShapeMismatch, shape)
		}
		size *= d
	}

	return size, nil
}
