package poly

import (
	"fmt"
	"maps"
	"math/cmplx"
	"slices"

	"github.com/arloliu/polytape/errs"
)

// Term is a monomial with its coefficient.
type Term struct {
	Monomial Monomial
	Coeff    complex128
}

// Polynomial is a sparse polynomial: a map from Monomial to coefficient.
//
// The zero value is the zero polynomial and is ready to use. Entries with a
// zero coefficient may be present; every operation treats them as absent
// terms. Use DropZeros to remove them.
type Polynomial struct {
	coeffs map[Monomial]complex128
}

// New returns a polynomial holding a copy of coeffs. A nil map yields the zero polynomial.
func New(coeffs map[Monomial]complex128) *Polynomial {
	p := &Polynomial{coeffs: make(map[Monomial]complex128, len(coeffs))}
	maps.Copy(p.coeffs, coeffs)

	return p
}

// FromTerms builds a polynomial from terms, summing coefficients of repeated monomials.
func FromTerms(terms ...Term) *Polynomial {
	p := &Polynomial{coeffs: make(map[Monomial]complex128, len(terms))}
	for _, t := range terms {
		p.coeffs[t.Monomial] += t.Coeff
	}

	return p
}

// Constant returns the polynomial c holding only the constant monomial.
func Constant(c complex128) *Polynomial {
	return &Polynomial{coeffs: map[Monomial]complex128{{}: c}}
}

// One returns the multiplicative identity, the constant polynomial 1.
func One() *Polynomial {
	return Constant(1)
}

// Var returns the polynomial x_v.
func Var(v int) (*Polynomial, error) {
	m, err := NewMonomial(v)
	if err != nil {
		return nil, err
	}

	return &Polynomial{coeffs: map[Monomial]complex128{m: 1}}, nil
}

// Len returns the number of stored terms, zero coefficients included.
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Coeff returns the coefficient of m and whether m is stored.
func (p *Polynomial) Coeff(m Monomial) (complex128, bool) {
	c, ok := p.coeffs[m]
	return c, ok
}

// Set stores c as the coefficient of m, replacing any previous value.
func (p *Polynomial) Set(m Monomial, c complex128) {
	p.init(0)
	p.coeffs[m] = c
}

// Monomials returns the stored monomials in ascending order.
func (p *Polynomial) Monomials() []Monomial {
	return slices.SortedFunc(maps.Keys(p.coeffs), Compare)
}

// Terms returns the stored terms in ascending monomial order.
//
// The order is deterministic, so two equal polynomials always produce the
// same term sequence.
func (p *Polynomial) Terms() []Term {
	terms := make([]Term, 0, len(p.coeffs))
	for m, c := range p.coeffs {
		terms = append(terms, Term{Monomial: m, Coeff: c})
	}
	slices.SortFunc(terms, func(a, b Term) int {
		return Compare(a.Monomial, b.Monomial)
	})

	return terms
}

// Copy returns a deep copy of p.
func (p *Polynomial) Copy() *Polynomial {
	return New(p.coeffs)
}

// Degree returns the largest monomial order stored in p.
//
// It returns errs.ErrEmptyPolynomial when p has no terms, since the degree of
// the zero polynomial is undefined.
func (p *Polynomial) Degree() (int, error) {
	if len(p.coeffs) == 0 {
		return 0, errs.ErrEmptyPolynomial
	}

	degree := 0
	for m := range p.coeffs {
		degree = max(degree, m.Len())
	}

	return degree, nil
}

// NumVars returns one more than the largest variable index in p, i.e. the
// smallest parameter vector length p can be evaluated against.
func (p *Polynomial) NumVars() int {
	n := 0
	for m := range p.coeffs {
		n = max(n, m.Max()+1)
	}

	return n
}

// DropZeros removes terms whose coefficient magnitude is <= tol.
func (p *Polynomial) DropZeros(tol float64) {
	maps.DeleteFunc(p.coeffs, func(_ Monomial, c complex128) bool {
		return cmplx.Abs(c) <= tol
	})
}

// Equal reports whether p and q agree on every monomial within tol.
// A monomial missing from one side counts as a zero coefficient, and a nil
// polynomial counts as the zero polynomial.
func (p *Polynomial) Equal(q *Polynomial, tol float64) bool {
	pc, qc := p.terms(), q.terms()
	for m, c := range pc {
		if cmplx.Abs(c-qc[m]) > tol {
			return false
		}
	}
	for m, c := range qc {
		if _, ok := pc[m]; !ok && cmplx.Abs(c) > tol {
			return false
		}
	}

	return true
}

// MapIndices rewrites every monomial of p through fn, in place.
//
// When fn maps two monomials to the same result their coefficients are summed.
func (p *Polynomial) MapIndices(fn func(Monomial) Monomial) {
	mapped := make(map[Monomial]complex128, len(p.coeffs))
	for m, c := range p.coeffs {
		mapped[fn(m)] += c
	}
	p.coeffs = mapped
}

// MapVars renames every variable index of p through fn, in place.
//
// It returns errs.ErrRange, leaving p untouched, if fn yields an invalid index.
func (p *Polynomial) MapVars(fn func(int) int) error {
	mapped := make(map[Monomial]complex128, len(p.coeffs))
	for m, c := range p.coeffs {
		vars := m.Vars()
		for i, v := range vars {
			vars[i] = fn(v)
		}
		nm, err := NewMonomial(vars...)
		if err != nil {
			return fmt.Errorf("map %s: %w", m, err)
		}
		mapped[nm] += c
	}
	p.coeffs = mapped

	return nil
}

// Evaluate returns the value of p at the real parameter vector values.
//
// It returns errs.ErrParamIndexOutOfRange if p references a variable beyond
// the end of values.
func (p *Polynomial) Evaluate(values []float64) (complex128, error) {
	return p.evaluate(len(values), func(i int) complex128 {
		return complex(values[i], 0)
	})
}

// EvaluateComplex returns the value of p at the complex parameter vector values.
func (p *Polynomial) EvaluateComplex(values []complex128) (complex128, error) {
	return p.evaluate(len(values), func(i int) complex128 {
		return values[i]
	})
}

// evaluate sums the terms in ascending monomial order, the same order the
// tape encoder uses.
func (p *Polynomial) evaluate(n int, value func(int) complex128) (complex128, error) {
	var sum complex128
	for _, t := range p.Terms() {
		m, c := t.Monomial, t.Coeff
		if last := m.Max(); last >= n {
			return 0, fmt.Errorf("%w: monomial %s needs %d parameters, got %d", errs.ErrParamIndexOutOfRange, m, last+1, n)
		}
		for i := range m.Len() {
			c *= value(m.At(i))
		}
		sum += c
	}

	return sum, nil
}

// terms returns the coefficient map, nil for a nil polynomial.
func (p *Polynomial) terms() map[Monomial]complex128 {
	if p == nil {
		return nil
	}

	return p.coeffs
}

func (p *Polynomial) init(size int) {
	if p.coeffs == nil {
		p.coeffs = make(map[Monomial]complex128, size)
	}
}
