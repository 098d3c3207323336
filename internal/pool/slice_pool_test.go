package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetComplex128Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetComplex128Slice(100)
		defer cleanup()

		require.Len(t, slice, 100)
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetComplex128Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})

	t.Run("grows after a smaller slice was returned", func(t *testing.T) {
		_, cleanup1 := GetComplex128Slice(10)
		cleanup1()

		slice, cleanup2 := GetComplex128Slice(1000)
		defer cleanup2()

		require.Len(t, slice, 1000)
		for i := range slice {
			slice[i] = complex(float64(i), 1)
		}
		require.Equal(t, complex(999, 1), slice[999])
	})
}

func BenchmarkGetComplex128Slice(b *testing.B) {
	for b.Loop() {
		slice, cleanup := GetComplex128Slice(256)
		slice[0] = 1
		cleanup()
	}
}
