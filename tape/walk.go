package tape

import (
	"fmt"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/poly"
)

// Records walks the tape and returns the number of encoded polynomials.
//
// It returns an error wrapping errs.ErrInternalConsistency if the variable
// tape is truncated or malformed, or if the coefficient tape length does not
// match the number of terms.
func (t *Tape) Records() (int, error) {
	records := 0
	err := t.walk(func([]termRef) error {
		records++
		return nil
	})

	return records, err
}

// NumVars returns one more than the largest variable index referenced by the
// tape, i.e. the shortest parameter vector it can be evaluated against.
//
// It returns errs.ErrRange for a negative variable index and the errors of
// Records for a malformed tape.
func (t *Tape) NumVars() (int, error) {
	n := 0
	err := t.walk(func(refs []termRef) error {
		for _, ref := range refs {
			for _, v := range t.vars[ref.start:ref.end] {
				if v < 0 {
					return fmt.Errorf("%w: variable index %d", errs.ErrRange, v)
				}
				n = max(n, int(v)+1)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

// Polynomials decodes the tape back into polynomials, one per record.
func (t *Tape) Polynomials() ([]*poly.Polynomial, error) {
	var out []*poly.Polynomial
	vars := make([]int, 0, 8)
	err := t.walk(func(refs []termRef) error {
		terms := make([]poly.Term, len(refs))
		for k, ref := range refs {
			vars = vars[:0]
			for _, v := range t.vars[ref.start:ref.end] {
				vars = append(vars, int(v))
			}
			m, err := poly.NewMonomial(vars...)
			if err != nil {
				return err
			}
			terms[k] = poly.Term{Monomial: m, Coeff: t.coeffAt(ref.coeff)}
		}
		out = append(out, poly.FromTerms(terms...))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// termRef locates one term: its variable indices are vars[start:end] and its
// coefficient is at position coeff of the coefficient tape.
type termRef struct {
	start, end, coeff int
}

// walk calls fn once per record with the terms of that record.
func (t *Tape) walk(fn func([]termRef) error) error {
	numCoeffs := t.NumCoeffs()
	refs := make([]termRef, 0, 16)
	i, c := 0, 0
	for i < len(t.vars) {
		numTerms := int(t.vars[i])
		i++
		if numTerms < 0 {
			return fmt.Errorf("%w: negative term count %d at variable tape position %d", errs.ErrInternalConsistency, numTerms, i-1)
		}

		refs = refs[:0]
		for range numTerms {
			if i >= len(t.vars) {
				return fmt.Errorf("%w: variable tape truncated at position %d", errs.ErrInternalConsistency, i)
			}
			order := int(t.vars[i])
			i++
			if order < 0 || i+order > len(t.vars) {
				return fmt.Errorf("%w: term of order %d at position %d overruns the variable tape", errs.ErrInternalConsistency, order, i-1)
			}
			if c >= numCoeffs {
				return fmt.Errorf("%w: coefficient tape exhausted after %d entries", errs.ErrInternalConsistency, c)
			}
			refs = append(refs, termRef{start: i, end: i + order, coeff: c})
			i += order
			c++
		}

		if err := fn(refs); err != nil {
			return err
		}
	}

	if c != numCoeffs {
		return fmt.Errorf("%w: coefficient tape length %d, consumed %d", errs.ErrInternalConsistency, numCoeffs, c)
	}

	return nil
}

func (t *Tape) coeffAt(c int) complex128 {
	if t.IsComplex() {
		return t.complexCoeffs[c]
	}

	return complex(t.realCoeffs[c], 0)
}
