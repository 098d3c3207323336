package packing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/poly"
)

func TestBounds(t *testing.T) {
	order, vars := Bounds(&poly.Polynomial{})
	require.Zero(t, order)
	require.Zero(t, vars)

	p := poly.New(map[poly.Monomial]complex128{poly.M(): 1, poly.M(4): 1, poly.M(0, 1, 1): 1})
	order, vars = Bounds(p)
	require.Equal(t, 3, order)
	require.Equal(t, 5, vars)
}

func TestToRep_RoundTrip(t *testing.T) {
	p := poly.New(map[poly.Monomial]complex128{
		poly.M():        2,
		poly.M(0):       3,
		poly.M(0, 1):    1.5,
		poly.M(2, 2, 2): complex(0, -1),
	})

	t.Run("inferred bounds", func(t *testing.T) {
		rep, err := ToRep(p, -1, -1)
		require.NoError(t, err)
		require.Equal(t, 3, rep.MaxOrder)
		require.Equal(t, 3, rep.MaxNumVars)
		require.Len(t, rep.Coeffs, 4)
		require.Equal(t, complex(2, 0), rep.Coeffs[0])

		back, err := rep.Polynomial()
		require.NoError(t, err)
		require.True(t, p.Equal(back, 0))
	})

	t.Run("explicit larger bounds", func(t *testing.T) {
		rep, err := ToRep(p, 5, 10)
		require.NoError(t, err)
		require.Equal(t, 5, rep.MaxOrder)
		require.Equal(t, 10, rep.MaxNumVars)

		back, err := rep.Polynomial()
		require.NoError(t, err)
		require.True(t, p.Equal(back, 0))
	})

	t.Run("bounds too small", func(t *testing.T) {
		_, err := ToRep(p, 2, -1)
		require.ErrorIs(t, err, errs.ErrRange)
		_, err = ToRep(p, -1, 2)
		require.ErrorIs(t, err, errs.ErrRange)
	})

	t.Run("zero polynomial", func(t *testing.T) {
		rep, err := ToRep(&poly.Polynomial{}, -1, -1)
		require.NoError(t, err)
		require.Empty(t, rep.Coeffs)

		back, err := rep.Polynomial()
		require.NoError(t, err)
		require.Zero(t, back.Len())
	})
}

func TestRep_CorruptKey(t *testing.T) {
	rep := &Rep{Coeffs: map[uint64]complex128{4: 1}, MaxOrder: 2, MaxNumVars: 3}
	_, err := rep.Polynomial()
	require.ErrorIs(t, err, errs.ErrRange)
}
