// Package eval evaluates compact tapes at parameter vectors.
//
// Bulk is the core loop: it walks a variable tape and a coefficient tape in
// step and writes one value per encoded polynomial. Evaluate and
// EvaluateComplex wrap it for tape.Tape values and shaped outputs; Batch
// evaluates one tape at many parameter vectors in parallel.
//
// Tapes and parameter vectors are only read, so any number of evaluations may
// share them concurrently. Each call writes only to its own output.
package eval

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/arloliu/polytape/errs"
)

// Scalar is the set of coefficient and parameter types Bulk accepts.
type Scalar interface {
	constraints.Float | constraints.Complex
}

// Bulk evaluates every record of the tape pair (vars, coeffs) at params and
// stores the value of record r in out[r].
//
// The walk must consume both tapes exactly and fill out exactly. A record
// count or coefficient count that disagrees with len(out) or len(coeffs)
// returns an error wrapping errs.ErrInternalConsistency; out is then only
// partially written and must be discarded. A variable index beyond params
// returns errs.ErrParamIndexOutOfRange.
func Bulk[T Scalar](vars []int32, coeffs []T, params []T, out []T) error {
	i, c, r := 0, 0, 0
	for i < len(vars) {
		numTerms := int(vars[i])
		i++
		if numTerms < 0 {
			return fmt.Errorf("%w: negative term count %d at variable tape position %d", errs.ErrInternalConsistency, numTerms, i-1)
		}

		var sum T
		for range numTerms {
			if i >= len(vars) {
				return fmt.Errorf("%w: variable tape truncated at position %d", errs.ErrInternalConsistency, i)
			}
			order := int(vars[i])
			i++
			if order < 0 || i+order > len(vars) {
				return fmt.Errorf("%w: term of order %d at position %d overruns the variable tape", errs.ErrInternalConsistency, order, i-1)
			}
			if c >= len(coeffs) {
				return fmt.Errorf("%w: coefficient tape exhausted after %d entries", errs.ErrInternalConsistency, c)
			}

			a := coeffs[c]
			c++
			for _, v := range vars[i : i+order] {
				if v < 0 || int(v) >= len(params) {
					return fmt.Errorf("%w: variable %d with %d parameters", errs.ErrParamIndexOutOfRange, v, len(params))
				}
				a *= params[v]
			}
			i += order
			sum += a
		}

		if r >= len(out) {
			return fmt.Errorf("%w: tape holds more records than the %d output entries", errs.ErrInternalConsistency, len(out))
		}
		out[r] = sum
		r++
	}

	if c != len(coeffs) {
		return fmt.Errorf("%w: coefficient tape length %d, consumed %d", errs.ErrInternalConsistency, len(coeffs), c)
	}
	if r != len(out) {
		return fmt.Errorf("%w: only %d of %d output entries filled", errs.ErrInternalConsistency, r, len(out))
	}

	return nil
}
