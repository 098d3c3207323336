// Package poly implements sparse multivariate polynomials over indexed scalar
// variables.
//
// A Polynomial maps monomials to complex coefficients. A Monomial is a sorted
// multiset of variable indices, so M(1, 1) stands for x1² and the zero Monomial
// is the constant term:
//
//	p := poly.New(map[poly.Monomial]complex128{
//	    poly.M():     2,
//	    poly.M(0):    3,
//	    poly.M(0, 1): 1.5,
//	})
//	v, _ := p.Evaluate([]float64{2, 5}) // 2 + 3*2 + 1.5*2*5 = 23
//
// Every operation allocates a new Polynomial unless its name says otherwise:
// AddInPlace, AddScalarInPlace, ScaleInPlace and MapIndices mutate the receiver.
//
// Polynomials are not safe for concurrent mutation. Concurrent reads of the
// same instance are safe.
//
// The compact tape form used for fast repeated evaluation lives in the tape
// package; the packed integer-key form lives in the packing package.
package poly
