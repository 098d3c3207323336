package poly

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const tol = 1e-9

var approxComplex = cmp.Comparer(func(a, b complex128) bool {
	return cmplx.Abs(a-b) <= tol
})

// coeffMap flattens p into a map keyed by the monomial tuple, with zero
// coefficients removed.
func coeffMap(p *Polynomial) map[string]complex128 {
	out := make(map[string]complex128, p.Len())
	for _, t := range p.Terms() {
		if cmplx.Abs(t.Coeff) > tol {
			out[t.Monomial.String()] = t.Coeff
		}
	}

	return out
}

func requirePolyEqual(t *testing.T, want, got *Polynomial) {
	t.Helper()
	if diff := cmp.Diff(coeffMap(want), coeffMap(got), approxComplex); diff != "" {
		t.Fatalf("polynomial mismatch (-want +got):\n%s", diff)
	}
}

// randomPoly returns a polynomial with up to maxTerms terms over numVars
// variables, each of order at most maxOrder.
func randomPoly(rng *rand.Rand, maxTerms, numVars, maxOrder int) *Polynomial {
	p := &Polynomial{}
	n := 1 + rng.IntN(maxTerms)
	for range n {
		vars := make([]int, rng.IntN(maxOrder+1))
		for i := range vars {
			vars[i] = rng.IntN(numVars)
		}
		c := complex(rng.Float64()*4-2, 0)
		if rng.IntN(3) == 0 {
			c += complex(0, rng.Float64()*2-1)
		}
		p.AddInPlace(FromTerms(Term{Monomial: M(vars...), Coeff: c}))
	}

	return p
}
