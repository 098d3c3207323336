package poly

import (
	"fmt"

	"github.com/arloliu/polytape/errs"
)

// ScalarAddMode selects how a scalar is added to a polynomial.
type ScalarAddMode uint8

const (
	// ScalarAddEach adds the scalar to every stored coefficient and leaves the
	// constant term alone unless it is stored. This is the legacy behavior that
	// existing tape producers rely on.
	ScalarAddEach ScalarAddMode = iota
	// ScalarAddConstant adds the scalar to the constant term only, which is
	// ordinary polynomial-plus-constant arithmetic.
	ScalarAddConstant
)

func (m ScalarAddMode) String() string {
	switch m {
	case ScalarAddEach:
		return "Each"
	case ScalarAddConstant:
		return "Constant"
	default:
		return "Unknown"
	}
}

// Add returns p + q. Coefficients of shared monomials are summed.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	return p.Copy().AddInPlace(q)
}

// AddInPlace adds q to p and returns p. Terms of p that q does not touch are
// left as they are.
func (p *Polynomial) AddInPlace(q *Polynomial) *Polynomial {
	p.init(len(q.coeffs))
	for m, c := range q.coeffs {
		p.coeffs[m] += c
	}

	return p
}

// AddScalar returns p + x under the given mode.
func (p *Polynomial) AddScalar(x complex128, mode ScalarAddMode) *Polynomial {
	return p.Copy().AddScalarInPlace(x, mode)
}

// AddScalarInPlace adds x to p under the given mode and returns p.
func (p *Polynomial) AddScalarInPlace(x complex128, mode ScalarAddMode) *Polynomial {
	p.init(1)
	if mode == ScalarAddConstant {
		p.coeffs[Monomial{}] += x
		return p
	}

	for m := range p.coeffs {
		p.coeffs[m] += x
	}

	return p
}

// Mul returns p * q.
//
// Each pair of terms contributes the merged monomial with the product of the
// two coefficients; contributions to the same monomial are summed.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	out := &Polynomial{coeffs: make(map[Monomial]complex128, len(p.coeffs)*len(q.coeffs))}
	for m1, c1 := range p.coeffs {
		for m2, c2 := range q.coeffs {
			out.coeffs[m1.Mul(m2)] += c1 * c2
		}
	}

	return out
}

// Scaled returns a copy of p with every coefficient multiplied by x. p is not modified.
func (p *Polynomial) Scaled(x complex128) *Polynomial {
	return p.Copy().ScaleInPlace(x)
}

// ScaleInPlace multiplies every coefficient of p by x and returns p.
func (p *Polynomial) ScaleInPlace(x complex128) *Polynomial {
	for m := range p.coeffs {
		p.coeffs[m] *= x
	}

	return p
}

// Pow returns p raised to the n-th power by repeated squaring.
//
// Pow(0) is the constant 1 for every p, including the zero polynomial.
// It returns errs.ErrNegativeExponent when n < 0.
func (p *Polynomial) Pow(n int) (*Polynomial, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrNegativeExponent, n)
	}

	result := One()
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}

// Deriv returns the partial derivative of p with respect to variable v.
//
// A term holding v k times becomes a term holding it k-1 times with its
// coefficient multiplied by k. Terms without v vanish.
func (p *Polynomial) Deriv(v int) *Polynomial {
	out := &Polynomial{coeffs: make(map[Monomial]complex128)}
	for m, c := range p.coeffs {
		i := m.indexOf(v)
		if i < 0 {
			continue
		}
		k := m.Count(v)
		out.coeffs[m.without(i)] += complex(float64(k), 0) * c
	}

	return out
}
