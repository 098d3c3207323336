package packing

import (
	"fmt"
	"maps"
	"slices"

	"github.com/arloliu/polytape/poly"
)

// Rep is a polynomial keyed by packed monomials, together with the bounds
// used to pack them. It is the form handed to consumers that index
// coefficients by a single integer.
type Rep struct {
	Coeffs     map[uint64]complex128
	MaxOrder   int
	MaxNumVars int
}

// Bounds returns the smallest max order and max num vars that can hold every
// monomial of p. Both are 0 for the zero polynomial.
func Bounds(p *poly.Polynomial) (maxOrder, maxNumVars int) {
	for _, m := range p.Monomials() {
		maxOrder = max(maxOrder, m.Len())
	}

	return maxOrder, p.NumVars()
}

// ToRep packs p. A negative bound is replaced by the smallest bound p needs.
//
// It returns errs.ErrRange if an explicit bound is smaller than p requires.
func ToRep(p *poly.Polynomial, maxOrder, maxNumVars int) (*Rep, error) {
	needOrder, needVars := Bounds(p)
	if maxOrder < 0 {
		maxOrder = needOrder
	}
	if maxNumVars < 0 {
		maxNumVars = needVars
	}

	pk, err := NewPacker(maxOrder, maxNumVars)
	if err != nil {
		return nil, err
	}

	rep := &Rep{
		Coeffs:     make(map[uint64]complex128, p.Len()),
		MaxOrder:   maxOrder,
		MaxNumVars: maxNumVars,
	}
	for _, t := range p.Terms() {
		key, err := pk.Pack(t.Monomial)
		if err != nil {
			return nil, err
		}
		rep.Coeffs[key] = t.Coeff
	}

	return rep, nil
}

// Polynomial unpacks r.
func (r *Rep) Polynomial() (*poly.Polynomial, error) {
	pk, err := NewPacker(r.MaxOrder, r.MaxNumVars)
	if err != nil {
		return nil, err
	}

	terms := make([]poly.Term, 0, len(r.Coeffs))
	for _, key := range slices.Sorted(maps.Keys(r.Coeffs)) {
		m, err := pk.Unpack(key)
		if err != nil {
			return nil, fmt.Errorf("unpack rep: %w", err)
		}
		terms = append(terms, poly.Term{Monomial: m, Coeff: r.Coeffs[key]})
	}

	return poly.FromTerms(terms...), nil
}
