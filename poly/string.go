package poly

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

const (
	// displayThreshold hides terms whose coefficient magnitude is not above it.
	displayThreshold = 1e-4
	// imagThreshold is the imaginary magnitude above which a coefficient is shown as complex.
	imagThreshold = 1e-6
)

// String renders p in ascending monomial order, e.g. "2.000x0^2 + -1.000x1".
//
// Coefficients are printed with three decimals and terms with a magnitude of
// at most 1e-4 are omitted. A polynomial with no visible term renders as "0".
// Complex coefficients carry a single sign before the imaginary part,
// "(1.000-2.000j)", not the legacy "(1.000+-2.000j)".
func (p *Polynomial) String() string {
	parts := make([]string, 0, len(p.coeffs))
	for _, t := range p.Terms() {
		if cmplx.Abs(t.Coeff) <= displayThreshold {
			continue
		}
		parts = append(parts, formatCoeff(t.Coeff)+t.Monomial.varString())
	}

	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " + ")
}

// GoString renders p wrapped as "Poly[ ... ]" for %#v.
func (p *Polynomial) GoString() string {
	return "Poly[ " + p.String() + " ]"
}

func formatCoeff(c complex128) string {
	re, im := real(c), imag(c)
	if math.Abs(im) <= imagThreshold {
		return fmt.Sprintf("%.3f", re)
	}
	if math.Abs(re) > imagThreshold {
		return fmt.Sprintf("(%.3f%+.3fj)", re, im)
	}

	return fmt.Sprintf("(%.3fj)", im)
}
