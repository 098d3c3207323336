// Package tape implements the compact tape encoding of polynomials.
//
// A Tape is a pair of flat arrays. The variable tape holds, for each encoded
// polynomial, its term count T followed by T term blocks; a term block is the
// monomial order L followed by the L variable indices in ascending order. The
// coefficient tape holds the T coefficients of each polynomial in the same
// term order. Several polynomials are concatenated back to back, so a reader
// must walk both tapes in step to find record boundaries:
//
//	p = 2 + 3*x0 + 1.5*x0*x1
//	vars:   [3, 0, 1, 0, 2, 0, 1]
//	coeffs: [2, 3, 1.5]
//
// Terms are written in ascending monomial order, so encoding an unchanged
// polynomial always yields identical tapes. The coefficient tape is real
// unless some coefficient of the encode call has a non-negligible imaginary
// part, in which case every coefficient of that call is stored as complex.
//
// The layout carries no version or length header. Persisted tapes should go
// through the blob package, which adds one.
package tape

import (
	"slices"

	"github.com/arloliu/polytape/format"
	"github.com/arloliu/polytape/internal/hash"
)

// Tape is an immutable compact tape pair.
//
// Exactly one of the coefficient slices is in use, selected by Kind. The
// accessors return the underlying slices; callers must not modify them.
type Tape struct {
	vars          []int32
	realCoeffs    []float64
	complexCoeffs []complex128
	kind          format.CoefficientKind
}

// NewReal wraps an existing variable tape and real coefficient tape.
//
// The slices are not copied or validated; use Records to validate them.
func NewReal(vars []int32, coeffs []float64) *Tape {
	return &Tape{vars: vars, realCoeffs: coeffs, kind: format.CoeffReal}
}

// NewComplex wraps an existing variable tape and complex coefficient tape.
//
// The slices are not copied or validated; use Records to validate them.
func NewComplex(vars []int32, coeffs []complex128) *Tape {
	return &Tape{vars: vars, complexCoeffs: coeffs, kind: format.CoeffComplex}
}

// Kind returns the coefficient kind of the tape.
func (t *Tape) Kind() format.CoefficientKind {
	return t.kind
}

// IsComplex reports whether the coefficient tape is complex valued.
func (t *Tape) IsComplex() bool {
	return t.kind == format.CoeffComplex
}

// Vars returns the variable tape.
func (t *Tape) Vars() []int32 {
	return t.vars
}

// RealCoeffs returns the real coefficient tape, or nil for a complex tape.
func (t *Tape) RealCoeffs() []float64 {
	return t.realCoeffs
}

// ComplexCoeffs returns the complex coefficient tape, or nil for a real tape.
func (t *Tape) ComplexCoeffs() []complex128 {
	return t.complexCoeffs
}

// NumCoeffs returns the length of the coefficient tape.
func (t *Tape) NumCoeffs() int {
	if t.IsComplex() {
		return len(t.complexCoeffs)
	}

	return len(t.realCoeffs)
}

// Fingerprint returns a 64-bit hash of the tape contents, suitable as a cache
// key. Tapes that are Equal have the same fingerprint; 0 and -0 coefficients
// hash alike.
func (t *Tape) Fingerprint() uint64 {
	return hash.Tape(uint8(t.kind), t.vars, t.realCoeffs, t.complexCoeffs)
}

// Equal reports whether t and other have the same kind and identical contents.
// Coefficients compare with ==, so 0 equals -0 and a tape holding a NaN
// coefficient is not Equal to any tape, itself included.
func (t *Tape) Equal(other *Tape) bool {
	return t.kind == other.kind &&
		slices.Equal(t.vars, other.vars) &&
		slices.Equal(t.realCoeffs, other.realCoeffs) &&
		slices.Equal(t.complexCoeffs, other.complexCoeffs)
}

// ComplexCopy returns the coefficient tape as complex values. A complex tape
// returns a copy of its own coefficients.
func (t *Tape) ComplexCopy() []complex128 {
	if t.IsComplex() {
		return slices.Clone(t.complexCoeffs)
	}

	out := make([]complex128, len(t.realCoeffs))
	for i, c := range t.realCoeffs {
		out[i] = complex(c, 0)
	}

	return out
}

// Concat joins tapes into one whose records are the records of each tape in
// order. If any tape is complex, the result is complex.
func Concat(tapes ...*Tape) *Tape {
	numVars, numCoeffs := 0, 0
	kind := format.CoeffReal
	for _, t := range tapes {
		numVars += len(t.vars)
		numCoeffs += t.NumCoeffs()
		if t.IsComplex() {
			kind = format.CoeffComplex
		}
	}

	out := &Tape{vars: make([]int32, 0, numVars), kind: kind}
	if kind == format.CoeffComplex {
		out.complexCoeffs = make([]complex128, 0, numCoeffs)
	} else {
		out.realCoeffs = make([]float64, 0, numCoeffs)
	}

	for _, t := range tapes {
		out.vars = append(out.vars, t.vars...)
		if kind == format.CoeffComplex {
			out.complexCoeffs = append(out.complexCoeffs, t.ComplexCopy()...)
		} else {
			out.realCoeffs = append(out.realCoeffs, t.realCoeffs...)
		}
	}

	return out
}
