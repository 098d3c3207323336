package packing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/poly"
)

func TestNewPacker(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		pk, err := NewPacker(3, 10)
		require.NoError(t, err)
		require.Equal(t, 3, pk.MaxOrder())
		require.Equal(t, 10, pk.MaxNumVars())
	})

	t.Run("negative bounds", func(t *testing.T) {
		_, err := NewPacker(-1, 2)
		require.ErrorIs(t, err, errs.ErrRange)
		_, err = NewPacker(2, -1)
		require.ErrorIs(t, err, errs.ErrRange)
	})

	t.Run("overflow", func(t *testing.T) {
		// 2^64 does not fit
		_, err := NewPacker(64, 1)
		require.ErrorIs(t, err, errs.ErrRange)

		_, err = NewPacker(63, 1)
		require.NoError(t, err)

		_, err = NewPacker(2, math.MaxInt32)
		require.NoError(t, err)
	})
}

func TestPack_KnownValues(t *testing.T) {
	pk, err := NewPacker(3, 4) // radix 5
	require.NoError(t, err)

	tests := []struct {
		m    poly.Monomial
		want uint64
	}{
		{poly.M(), 0},
		{poly.M(0), 1},
		{poly.M(3), 4},
		{poly.M(0, 0), 1 + 1*5},
		{poly.M(1, 2), 2 + 3*5},
		{poly.M(0, 1, 3), 1 + 2*5 + 4*25},
	}
	for _, tt := range tests {
		t.Run(tt.m.String(), func(t *testing.T) {
			got, err := pk.Pack(tt.m)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			back, err := pk.Unpack(got)
			require.NoError(t, err)
			require.Equal(t, tt.m, back)
		})
	}
}

func TestPack_Bijective(t *testing.T) {
	const maxOrder, maxNumVars = 3, 4
	pk, err := NewPacker(maxOrder, maxNumVars)
	require.NoError(t, err)

	seen := make(map[uint64]poly.Monomial)
	var walk func(prefix []int, start int)
	walk = func(prefix []int, start int) {
		m := poly.M(prefix...)
		key, err := pk.Pack(m)
		require.NoError(t, err)
		if other, dup := seen[key]; dup {
			t.Fatalf("monomials %s and %s share key %d", other, m, key)
		}
		seen[key] = m

		back, err := pk.Unpack(key)
		require.NoError(t, err)
		require.Equal(t, m, back)

		if len(prefix) == maxOrder {
			return
		}
		for v := start; v < maxNumVars; v++ {
			walk(append(append([]int{}, prefix...), v), v)
		}
	}
	walk(nil, 0)

	// 1 + 4 + 10 + 20 sorted tuples of length 0..3 over 4 variables
	require.Len(t, seen, 35)
}

func TestPack_RangeErrors(t *testing.T) {
	pk, err := NewPacker(2, 3)
	require.NoError(t, err)

	_, err = pk.Pack(poly.M(0, 1, 2))
	require.ErrorIs(t, err, errs.ErrRange, "order above max")

	_, err = pk.Pack(poly.M(3))
	require.ErrorIs(t, err, errs.ErrRange, "index equal to max num vars")

	_, err = pk.Pack(poly.M(5))
	require.ErrorIs(t, err, errs.ErrRange)
}

func TestUnpack_InvalidKeys(t *testing.T) {
	pk, err := NewPacker(2, 3) // radix 4
	require.NoError(t, err)

	_, err = pk.Unpack(4) // digits 0,1: empty low digit
	require.ErrorIs(t, err, errs.ErrRange)

	_, err = pk.Unpack(1 + 1*4 + 1*16) // three digits
	require.ErrorIs(t, err, errs.ErrRange)
}
