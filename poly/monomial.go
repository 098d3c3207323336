package poly

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/polytape/errs"
)

// MaxVarIndex is the largest variable index a monomial can hold. It matches the
// int32 entries of the variable tape.
const MaxVarIndex = math.MaxInt32

// varWidth is the number of key bytes per variable index.
const varWidth = 4

// Monomial is a sorted multiset of variable indices. Repeated indices denote
// powers. The zero value is the constant monomial.
//
// Monomial is comparable and can be used as a map key. Indices are stored as
// fixed-width big-endian integers, so the byte order of two keys is the same
// as the lexicographic order of their index tuples.
type Monomial struct {
	key string
}

// NewMonomial builds the monomial holding vars in ascending order.
//
// It returns errs.ErrRange if an index is negative or larger than MaxVarIndex.
func NewMonomial(vars ...int) (Monomial, error) {
	if len(vars) == 0 {
		return Monomial{}, nil
	}

	sorted := slices.Clone(vars)
	slices.Sort(sorted)
	if sorted[0] < 0 || sorted[len(sorted)-1] > MaxVarIndex {
		return Monomial{}, fmt.Errorf("%w: variable indices %v must be within [0, %d]", errs.ErrRange, vars, MaxVarIndex)
	}

	b := make([]byte, varWidth*len(sorted))
	for i, v := range sorted {
		binary.BigEndian.PutUint32(b[varWidth*i:], uint32(v)) //nolint:gosec
	}

	return Monomial{key: string(b)}, nil
}

// M is like NewMonomial but panics on invalid indices. It is meant for
// literals in code and tests.
func M(vars ...int) Monomial {
	m, err := NewMonomial(vars...)
	if err != nil {
		panic(err)
	}

	return m
}

// Len returns the order of the monomial, counting repeats.
func (m Monomial) Len() int {
	return len(m.key) / varWidth
}

// IsConstant reports whether m is the constant monomial.
func (m Monomial) IsConstant() bool {
	return m.key == ""
}

// At returns the i-th variable index in ascending order.
func (m Monomial) At(i int) int {
	k := m.key[varWidth*i:]

	return int(uint32(k[0])<<24 | uint32(k[1])<<16 | uint32(k[2])<<8 | uint32(k[3]))
}

// Vars returns the variable indices in ascending order.
func (m Monomial) Vars() []int {
	vars := make([]int, m.Len())
	for i := range vars {
		vars[i] = m.At(i)
	}

	return vars
}

// Max returns the largest variable index, or -1 for the constant monomial.
func (m Monomial) Max() int {
	if m.IsConstant() {
		return -1
	}

	return m.At(m.Len() - 1)
}

// Count returns how many times v occurs in m.
func (m Monomial) Count(v int) int {
	n := 0
	for i := range m.Len() {
		if m.At(i) == v {
			n++
		}
	}

	return n
}

// Compare orders monomials the way sorted index tuples are ordered:
// element-wise, with a proper prefix first.
func Compare(a, b Monomial) int {
	return strings.Compare(a.key, b.key)
}

// Mul returns the monomial holding the indices of both m and other.
func (m Monomial) Mul(other Monomial) Monomial {
	switch {
	case m.IsConstant():
		return other
	case other.IsConstant():
		return m
	}

	a, b := m.key, other.key
	var sb strings.Builder
	sb.Grow(len(a) + len(b))
	for len(a) > 0 && len(b) > 0 {
		if a[:varWidth] <= b[:varWidth] {
			sb.WriteString(a[:varWidth])
			a = a[varWidth:]
		} else {
			sb.WriteString(b[:varWidth])
			b = b[varWidth:]
		}
	}
	sb.WriteString(a)
	sb.WriteString(b)

	return Monomial{key: sb.String()}
}

// without returns m with its i-th index removed.
func (m Monomial) without(i int) Monomial {
	return Monomial{key: m.key[:varWidth*i] + m.key[varWidth*i+varWidth:]}
}

// indexOf returns the position of the first occurrence of v, or -1.
func (m Monomial) indexOf(v int) int {
	for i := range m.Len() {
		if m.At(i) == v {
			return i
		}
	}

	return -1
}

// String renders m as the index tuple, e.g. "(0,1,1)".
func (m Monomial) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range m.Len() {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", m.At(i))
	}
	sb.WriteByte(')')

	return sb.String()
}

// varString renders m as a product of powers, e.g. "x0x1^2".
func (m Monomial) varString() string {
	var sb strings.Builder
	n := m.Len()
	for i := 0; i < n; {
		v := m.At(i)
		j := i + 1
		for j < n && m.At(j) == v {
			j++
		}
		if j-i > 1 {
			fmt.Fprintf(&sb, "x%d^%d", v, j-i)
		} else {
			fmt.Fprintf(&sb, "x%d", v)
		}
		i = j
	}

	return sb.String()
}
