// Package packing converts monomials to single integers and back.
//
// A monomial of order at most MaxOrder over MaxNumVars variables is packed as
// a mixed-radix number in base MaxNumVars+1: the i-th variable index v
// contributes (v+1)*(MaxNumVars+1)^i, so the last index is the most
// significant digit and zero digits mark unused positions. The packing is a
// bijection between such monomials and the integers it produces.
package packing

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/poly"
)

// Packer packs monomials within fixed bounds.
//
// A Packer is immutable and safe for concurrent use.
type Packer struct {
	maxOrder   int
	maxNumVars int
	radix      uint64
}

// NewPacker returns a Packer for monomials of order <= maxOrder with variable
// indices < maxNumVars.
//
// It returns errs.ErrRange when a bound is negative or when the largest packed
// value would not fit in a uint64.
func NewPacker(maxOrder, maxNumVars int) (*Packer, error) {
	if maxOrder < 0 || maxNumVars < 0 {
		return nil, fmt.Errorf("%w: negative bounds (max order %d, max num vars %d)", errs.ErrRange, maxOrder, maxNumVars)
	}

	radix := uint64(maxNumVars) + 1
	// the largest key is radix^maxOrder - 1
	limit := uint64(1)
	for range maxOrder {
		hi, lo := bits.Mul64(limit, radix)
		if hi != 0 {
			return nil, fmt.Errorf("%w: %d variables to order %d does not fit in 64 bits", errs.ErrRange, maxNumVars, maxOrder)
		}
		limit = lo
	}

	return &Packer{maxOrder: maxOrder, maxNumVars: maxNumVars, radix: radix}, nil
}

// MaxOrder returns the largest monomial order the packer accepts.
func (pk *Packer) MaxOrder() int {
	return pk.maxOrder
}

// MaxNumVars returns the exclusive upper bound on variable indices.
func (pk *Packer) MaxNumVars() int {
	return pk.maxNumVars
}

// Pack returns the integer standing for m.
//
// It returns errs.ErrRange if m is longer than MaxOrder or holds an index
// >= MaxNumVars.
func (pk *Packer) Pack(m poly.Monomial) (uint64, error) {
	if m.Len() > pk.maxOrder {
		return 0, fmt.Errorf("%w: monomial %s has order %d, max order is %d", errs.ErrRange, m, m.Len(), pk.maxOrder)
	}

	var key uint64
	weight := uint64(1)
	for i := range m.Len() {
		v := m.At(i)
		if v >= pk.maxNumVars {
			return 0, fmt.Errorf("%w: monomial %s uses variable %d, max num vars is %d", errs.ErrRange, m, v, pk.maxNumVars)
		}
		key += uint64(v+1) * weight //nolint:gosec
		weight *= pk.radix
	}

	return key, nil
}

// Unpack returns the monomial packed as key.
//
// It returns errs.ErrRange if key was not produced by a packer with the same
// bounds.
func (pk *Packer) Unpack(key uint64) (poly.Monomial, error) {
	vars := make([]int, 0, pk.maxOrder)
	for k := key; k != 0; k /= pk.radix {
		digit := k % pk.radix
		if digit == 0 {
			return poly.Monomial{}, fmt.Errorf("%w: key %d has an empty digit", errs.ErrRange, key)
		}
		if len(vars) == pk.maxOrder {
			return poly.Monomial{}, fmt.Errorf("%w: key %d exceeds max order %d", errs.ErrRange, key, pk.maxOrder)
		}
		vars = append(vars, int(digit)-1) //nolint:gosec
	}

	return poly.NewMonomial(vars...)
}
