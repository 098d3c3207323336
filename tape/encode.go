package tape

import (
	"fmt"
	"math"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
	"github.com/arloliu/polytape/internal/options"
	"github.com/arloliu/polytape/poly"
)

// DefaultImagThreshold is the imaginary magnitude above which a coefficient
// forces a complex coefficient tape.
const DefaultImagThreshold = 1e-12

type encodeConfig struct {
	maxOrder      int // negative: infer
	maxNumVars    int // negative: infer
	imagThreshold float64
	forceComplex  bool
}

// Option configures Encode and Compact.
type Option = options.Option[*encodeConfig]

// WithMaxOrder declares the maximum monomial order. Encoding fails with
// errs.ErrRange if a monomial is longer. Without it the bound is inferred.
func WithMaxOrder(n int) Option {
	return options.New(func(c *encodeConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: max order %d is negative", errs.ErrRange, n)
		}
		c.maxOrder = n

		return nil
	})
}

// WithMaxNumVars declares the number of variables. Encoding fails with
// errs.ErrRange if a variable index is >= n. Without it the bound is inferred.
func WithMaxNumVars(n int) Option {
	return options.New(func(c *encodeConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: max num vars %d is negative", errs.ErrRange, n)
		}
		c.maxNumVars = n

		return nil
	})
}

// WithImagThreshold overrides DefaultImagThreshold.
func WithImagThreshold(eps float64) Option {
	return options.New(func(c *encodeConfig) error {
		if eps < 0 || math.IsNaN(eps) {
			return fmt.Errorf("%w: imaginary threshold %v", errs.ErrRange, eps)
		}
		c.imagThreshold = eps

		return nil
	})
}

// WithComplex always produces a complex coefficient tape.
func WithComplex() Option {
	return options.NoError(func(c *encodeConfig) {
		c.forceComplex = true
	})
}

// Compact encodes a single polynomial. See Encode.
func Compact(p *poly.Polynomial, opts ...Option) (*Tape, error) {
	return Encode([]*poly.Polynomial{p}, opts...)
}

// Encode encodes polys, in order, into one tape pair.
//
// Every monomial is checked against the declared bounds, or against the
// bounds inferred from polys when none are declared. Any violation returns an
// error wrapping errs.ErrRange and no tape. A nil polynomial returns
// errs.ErrUnsupportedOperand.
func Encode(polys []*poly.Polynomial, opts ...Option) (*Tape, error) {
	cfg := &encodeConfig{maxOrder: -1, maxNumVars: -1, imagThreshold: DefaultImagThreshold}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	records := make([][]poly.Term, len(polys))
	numVars, numCoeffs := 0, 0
	isComplex := cfg.forceComplex
	for r, p := range polys {
		if p == nil {
			return nil, fmt.Errorf("%w: polynomial %d is nil", errs.ErrUnsupportedOperand, r)
		}
		terms := p.Terms()
		if len(terms) > math.MaxInt32 {
			return nil, fmt.Errorf("%w: polynomial %d has %d terms", errs.ErrRange, r, len(terms))
		}
		for _, t := range terms {
			if err := cfg.checkBounds(t.Monomial); err != nil {
				return nil, fmt.Errorf("polynomial %d: %w", r, err)
			}
			numVars += 1 + t.Monomial.Len()
			if math.Abs(imag(t.Coeff)) > cfg.imagThreshold {
				isComplex = true
			}
		}
		numVars++
		numCoeffs += len(terms)
		records[r] = terms
	}

	out := &Tape{vars: make([]int32, 0, numVars), kind: format.CoeffReal}
	if isComplex {
		out.kind = format.CoeffComplex
		out.complexCoeffs = make([]complex128, 0, numCoeffs)
	} else {
		out.realCoeffs = make([]float64, 0, numCoeffs)
	}

	for _, terms := range records {
		out.vars = append(out.vars, int32(len(terms))) //nolint:gosec
		for _, t := range terms {
			m := t.Monomial
			out.vars = append(out.vars, int32(m.Len())) //nolint:gosec
			for i := range m.Len() {
				out.vars = append(out.vars, int32(m.At(i))) //nolint:gosec
			}
			if isComplex {
				out.complexCoeffs = append(out.complexCoeffs, t.Coeff)
			} else {
				out.realCoeffs = append(out.realCoeffs, real(t.Coeff))
			}
		}
	}

	if len(out.vars) != numVars {
		return nil, fmt.Errorf("%w: wrote %d variable tape entries, expected %d", errs.ErrInternalConsistency, len(out.vars), numVars)
	}

	return out, nil
}

func (c *encodeConfig) checkBounds(m poly.Monomial) error {
	if c.maxOrder >= 0 && m.Len() > c.maxOrder {
		return fmt.Errorf("%w: monomial %s has order %d, max order is %d", errs.ErrRange, m, m.Len(), c.maxOrder)
	}
	if c.maxNumVars >= 0 && m.Max() >= c.maxNumVars {
		return fmt.Errorf("%w: monomial %s uses variable %d, max num vars is %d", errs.ErrRange, m, m.Max(), c.maxNumVars)
	}

	return nil
}
