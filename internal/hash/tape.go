// Package hash computes fingerprints of compact tapes.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// chunk is the number of 8-byte words staged per Write call.
const chunk = 256

// Tape computes the xxHash64 of a tape pair.
//
// The kind byte is hashed first, then every variable tape entry as 4
// little-endian bytes, then the coefficient bits as 8 little-endian bytes per
// float64 (real part before imaginary part for complex tapes). Negative zero
// is hashed as positive zero, so tapes whose coefficients compare equal hash
// equal, whatever the host byte order.
func Tape(kind uint8, vars []int32, realCoeffs []float64, complexCoeffs []complex128) uint64 {
	d := xxhash.New()
	var buf [chunk * 8]byte

	buf[0] = kind
	_, _ = d.Write(buf[:1])

	for len(vars) > 0 {
		n := min(len(vars), chunk*2)
		for i, v := range vars[:n] {
			binary.LittleEndian.PutUint32(buf[i*4:], uint32(v)) //nolint:gosec
		}
		_, _ = d.Write(buf[:n*4])
		vars = vars[n:]
	}

	for len(realCoeffs) > 0 {
		n := min(len(realCoeffs), chunk)
		for i, v := range realCoeffs[:n] {
			binary.LittleEndian.PutUint64(buf[i*8:], floatBits(v))
		}
		_, _ = d.Write(buf[:n*8])
		realCoeffs = realCoeffs[n:]
	}

	for len(complexCoeffs) > 0 {
		n := min(len(complexCoeffs), chunk/2)
		for i, v := range complexCoeffs[:n] {
			binary.LittleEndian.PutUint64(buf[i*16:], floatBits(real(v)))
			binary.LittleEndian.PutUint64(buf[i*16+8:], floatBits(imag(v)))
		}
		_, _ = d.Write(buf[:n*16])
		complexCoeffs = complexCoeffs[n:]
	}

	return d.Sum64()
}

func floatBits(v float64) uint64 {
	if v == 0 {
		v = 0
	}

	return math.Float64bits(v)
}
