package poly

import (
	"fmt"

	"github.com/arloliu/polytape/errs"
)

// Plus returns p + x where x is a polynomial or a numeric scalar.
//
// Scalars are added with ScalarAddEach, matching the legacy operator. Use
// AddScalar to pick the mode explicitly. It returns errs.ErrUnsupportedOperand
// for any other operand type.
func (p *Polynomial) Plus(x any) (*Polynomial, error) {
	if q, ok := asPolynomial(x); ok {
		return p.Add(q), nil
	}

	s, err := asScalar(x)
	if err != nil {
		return nil, err
	}

	return p.AddScalar(s, ScalarAddEach), nil
}

// Times returns p * x where x is a polynomial or a numeric scalar. p is never modified.
//
// It returns errs.ErrUnsupportedOperand for any other operand type.
func (p *Polynomial) Times(x any) (*Polynomial, error) {
	if q, ok := asPolynomial(x); ok {
		return p.Mul(q), nil
	}

	s, err := asScalar(x)
	if err != nil {
		return nil, err
	}

	return p.Scaled(s), nil
}

func asPolynomial(x any) (*Polynomial, bool) {
	switch v := x.(type) {
	case *Polynomial:
		return v, v != nil
	case Polynomial:
		return &v, true
	default:
		return nil, false
	}
}

func asScalar(x any) (complex128, error) {
	switch v := x.(type) {
	case int:
		return complex(float64(v), 0), nil
	case int32:
		return complex(float64(v), 0), nil
	case int64:
		return complex(float64(v), 0), nil
	case float32:
		return complex(float64(v), 0), nil
	case float64:
		return complex(v, 0), nil
	case complex64:
		return complex128(v), nil
	case complex128:
		return v, nil
	default:
		return 0, fmt.Errorf("%w: %T", errs.ErrUnsupportedOperand, x)
	}
}
