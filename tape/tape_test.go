package tape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
	"github.com/arloliu/polytape/poly"
)

func samplePoly() *poly.Polynomial {
	return poly.New(map[poly.Monomial]complex128{
		poly.M():     2,
		poly.M(0):    3,
		poly.M(0, 1): 1.5,
	})
}

func TestCompact_Layout(t *testing.T) {
	tp, err := Compact(samplePoly())
	require.NoError(t, err)

	require.Equal(t, format.CoeffReal, tp.Kind())
	require.False(t, tp.IsComplex())
	require.Equal(t, []int32{3, 0, 1, 0, 2, 0, 1}, tp.Vars())
	require.Equal(t, []float64{2, 3, 1.5}, tp.RealCoeffs())
	require.Nil(t, tp.ComplexCoeffs())
	require.Equal(t, 3, tp.NumCoeffs())
}

func TestCompact_Powers(t *testing.T) {
	p := poly.New(map[poly.Monomial]complex128{poly.M(2, 1, 2): -1, poly.M(1): 4})
	tp, err := Compact(p)
	require.NoError(t, err)
	require.Equal(t, []int32{2, 1, 1, 3, 1, 2, 2}, tp.Vars())
	require.Equal(t, []float64{4, -1}, tp.RealCoeffs())
}

func TestCompact_EmptyPolynomial(t *testing.T) {
	tp, err := Compact(&poly.Polynomial{})
	require.NoError(t, err)
	require.Equal(t, []int32{0}, tp.Vars())
	require.Empty(t, tp.RealCoeffs())

	n, err := tp.Records()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCompact_Deterministic(t *testing.T) {
	a := poly.New(nil)
	b := poly.New(nil)
	monos := []poly.Monomial{poly.M(3), poly.M(), poly.M(0, 2), poly.M(1, 1), poly.M(0)}
	for i, m := range monos {
		a.Set(m, complex(float64(i), 0))
	}
	for i := len(monos) - 1; i >= 0; i-- {
		b.Set(monos[i], complex(float64(i), 0))
	}

	ta, err := Compact(a)
	require.NoError(t, err)
	tb, err := Compact(b)
	require.NoError(t, err)
	require.True(t, ta.Equal(tb))
	require.Equal(t, ta.Fingerprint(), tb.Fingerprint())

	again, err := Compact(a)
	require.NoError(t, err)
	require.Equal(t, ta.Vars(), again.Vars())
	require.Equal(t, ta.RealCoeffs(), again.RealCoeffs())
}

func TestEncode_CoefficientKind(t *testing.T) {
	real1 := samplePoly()
	tiny := poly.New(map[poly.Monomial]complex128{poly.M(1): complex(1, 1e-13)})
	cplx := poly.New(map[poly.Monomial]complex128{poly.M(1): complex(1, 1e-3)})

	t.Run("negligible imaginary part stays real", func(t *testing.T) {
		tp, err := Encode([]*poly.Polynomial{real1, tiny})
		require.NoError(t, err)
		require.Equal(t, format.CoeffReal, tp.Kind())
		require.Equal(t, []float64{2, 3, 1.5, 1}, tp.RealCoeffs())
	})

	t.Run("one complex coefficient makes the whole call complex", func(t *testing.T) {
		tp, err := Encode([]*poly.Polynomial{real1, cplx})
		require.NoError(t, err)
		require.Equal(t, format.CoeffComplex, tp.Kind())
		require.Equal(t, []complex128{2, 3, 1.5, complex(1, 1e-3)}, tp.ComplexCoeffs())
		require.Nil(t, tp.RealCoeffs())
	})

	t.Run("threshold override", func(t *testing.T) {
		tp, err := Encode([]*poly.Polynomial{cplx}, WithImagThreshold(1e-2))
		require.NoError(t, err)
		require.False(t, tp.IsComplex())
	})

	t.Run("forced complex", func(t *testing.T) {
		tp, err := Compact(real1, WithComplex())
		require.NoError(t, err)
		require.True(t, tp.IsComplex())
		require.Equal(t, []complex128{2, 3, 1.5}, tp.ComplexCoeffs())
	})
}

func TestEncode_MultipleRecords(t *testing.T) {
	p := samplePoly()
	q := poly.New(map[poly.Monomial]complex128{poly.M(1, 1): 4})

	tp, err := Encode([]*poly.Polynomial{p, q, &poly.Polynomial{}, p})
	require.NoError(t, err)
	require.Equal(t, []int32{
		3, 0, 1, 0, 2, 0, 1,
		1, 2, 1, 1,
		0,
		3, 0, 1, 0, 2, 0, 1,
	}, tp.Vars())
	require.Equal(t, []float64{2, 3, 1.5, 4, 2, 3, 1.5}, tp.RealCoeffs())

	n, err := tp.Records()
	require.NoError(t, err)
	require.Equal(t, 4, n)

	empty, err := Encode(nil)
	require.NoError(t, err)
	require.Empty(t, empty.Vars())
	n, err = empty.Records()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestEncode_Bounds(t *testing.T) {
	p := poly.New(map[poly.Monomial]complex128{poly.M(5): 1, poly.M(0, 0): 2})

	t.Run("variable index beyond max num vars", func(t *testing.T) {
		tp, err := Compact(p, WithMaxNumVars(3))
		require.ErrorIs(t, err, errs.ErrRange)
		require.Nil(t, tp)
	})

	t.Run("order beyond max order", func(t *testing.T) {
		tp, err := Compact(p, WithMaxOrder(1))
		require.ErrorIs(t, err, errs.ErrRange)
		require.Nil(t, tp)
	})

	t.Run("exact bounds", func(t *testing.T) {
		_, err := Compact(p, WithMaxOrder(2), WithMaxNumVars(6))
		require.NoError(t, err)
	})

	t.Run("negative bounds rejected", func(t *testing.T) {
		_, err := Compact(p, WithMaxOrder(-1))
		require.ErrorIs(t, err, errs.ErrRange)
		_, err = Compact(p, WithMaxNumVars(-2))
		require.ErrorIs(t, err, errs.ErrRange)
		_, err = Compact(p, WithImagThreshold(-1))
		require.ErrorIs(t, err, errs.ErrRange)
	})
}

func TestEncode_NilPolynomial(t *testing.T) {
	_, err := Encode([]*poly.Polynomial{samplePoly(), nil})
	require.ErrorIs(t, err, errs.ErrUnsupportedOperand)

	_, err = Compact(nil)
	require.ErrorIs(t, err, errs.ErrUnsupportedOperand)
}

func TestPolynomials_RoundTrip(t *testing.T) {
	p := samplePoly()
	q := poly.New(map[poly.Monomial]complex128{poly.M(2, 2, 0): complex(0.5, -2), poly.M(): 1i})

	tp, err := Encode([]*poly.Polynomial{p, q, &poly.Polynomial{}})
	require.NoError(t, err)
	require.True(t, tp.IsComplex())

	got, err := tp.Polynomials()
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.True(t, p.Equal(got[0], 0))
	require.True(t, q.Equal(got[1], 0))
	require.Zero(t, got[2].Len())
}

func TestRecords_CorruptTapes(t *testing.T) {
	good, err := Compact(samplePoly())
	require.NoError(t, err)
	vars, coeffs := good.Vars(), good.RealCoeffs()

	tests := []struct {
		name string
		tape *Tape
	}{
		{"coefficient tape one short", NewReal(vars, coeffs[:len(coeffs)-1])},
		{"coefficient tape one long", NewReal(vars, append(append([]float64{}, coeffs...), 9))},
		{"variable tape truncated mid term", NewReal(vars[:len(vars)-1], coeffs)},
		{"variable tape truncated before term", NewReal(vars[:4], coeffs)},
		{"negative term count", NewReal([]int32{-1}, nil)},
		{"negative order", NewReal([]int32{1, -1}, []float64{1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tape.Records()
			require.ErrorIs(t, err, errs.ErrInternalConsistency)

			_, err = tt.tape.Polynomials()
			require.ErrorIs(t, err, errs.ErrInternalConsistency)
		})
	}
}

func TestConcat(t *testing.T) {
	p := samplePoly()
	q := poly.New(map[poly.Monomial]complex128{poly.M(1): 2i})

	tp, err := Compact(p)
	require.NoError(t, err)
	tq, err := Compact(q)
	require.NoError(t, err)

	t.Run("real only", func(t *testing.T) {
		joined := Concat(tp, tp)
		want, err := Encode([]*poly.Polynomial{p, p})
		require.NoError(t, err)
		require.True(t, want.Equal(joined))
	})

	t.Run("promotes to complex", func(t *testing.T) {
		joined := Concat(tp, tq)
		want, err := Encode([]*poly.Polynomial{p, q})
		require.NoError(t, err)
		require.True(t, joined.IsComplex())
		require.True(t, want.Equal(joined))

		n, err := joined.Records()
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("nothing", func(t *testing.T) {
		joined := Concat()
		require.Empty(t, joined.Vars())
		require.False(t, joined.IsComplex())
	})
}

func TestNumVars(t *testing.T) {
	tp, err := Compact(samplePoly())
	require.NoError(t, err)
	n, err := tp.NumVars()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	empty, err := Encode([]*poly.Polynomial{poly.Constant(4), {}})
	require.NoError(t, err)
	n, err = empty.NumVars()
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = NewReal([]int32{1, 1, -3}, []float64{1}).NumVars()
	require.ErrorIs(t, err, errs.ErrRange)

	_, err = NewReal([]int32{1, 1}, []float64{1}).NumVars()
	require.ErrorIs(t, err, errs.ErrInternalConsistency)
}

func TestFingerprint(t *testing.T) {
	tp, err := Compact(samplePoly())
	require.NoError(t, err)

	same := NewReal(append([]int32{}, tp.Vars()...), append([]float64{}, tp.RealCoeffs()...))
	require.Equal(t, tp.Fingerprint(), same.Fingerprint())

	asComplex := NewComplex(tp.Vars(), tp.ComplexCopy())
	require.NotEqual(t, tp.Fingerprint(), asComplex.Fingerprint())
	require.False(t, tp.Equal(asComplex))

	changed := NewReal(tp.Vars(), []float64{2, 3, 1.25})
	require.NotEqual(t, tp.Fingerprint(), changed.Fingerprint())
}

func TestFingerprint_SignedZeroCoefficients(t *testing.T) {
	negZero := math.Copysign(0, -1)

	pos, err := Compact(poly.New(map[poly.Monomial]complex128{poly.M(0): 0}))
	require.NoError(t, err)
	neg, err := Compact(poly.New(map[poly.Monomial]complex128{poly.M(0): complex(negZero, 0)}))
	require.NoError(t, err)
	require.True(t, math.Signbit(neg.RealCoeffs()[0]))

	require.True(t, pos.Equal(neg))
	require.Equal(t, pos.Fingerprint(), neg.Fingerprint())

	posC := NewComplex(pos.Vars(), []complex128{complex(1, 0)})
	negC := NewComplex(pos.Vars(), []complex128{complex(1, negZero)})
	require.True(t, posC.Equal(negC))
	require.Equal(t, posC.Fingerprint(), negC.Fingerprint())
}

func BenchmarkEncode(b *testing.B) {
	polys := make([]*poly.Polynomial, 64)
	for i := range polys {
		p := poly.New(nil)
		for j := range 16 {
			p.Set(poly.M(j%5, (i+j)%7), complex(float64(i+j), 0))
		}
		polys[i] = p
	}

	for b.Loop() {
		_, _ = Encode(polys)
	}
}
