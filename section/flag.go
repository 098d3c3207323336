package section

import (
	"fmt"

	"github.com/arloliu/polytape/endian"
	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
)

// TapeFlag holds the packed options and codec selection of a tape header.
type TapeFlag struct {
	// Options packs the coefficient kind bit, the byte order bit and the
	// magic number. See the package documentation for the bit layout.
	Options uint16

	// Encoding holds the variable tape encoding in bits 0-3.
	Encoding uint8

	// Compression holds the variable tape codec in bits 0-3 and the
	// coefficient codec in bits 4-7.
	Compression uint8
}

// NewTapeFlag returns the default flag: real coefficients, little-endian,
// varint indices, Zstd variable tape, uncompressed coefficients.
func NewTapeFlag() TapeFlag {
	flag := TapeFlag{Options: MagicTapeOpt}
	flag.SetIndexEncoding(format.IndexVarint)
	flag.SetIndexCompression(format.CompressionZstd)
	flag.SetCoeffCompression(format.CompressionNone)

	return flag
}

// IsComplex reports whether the coefficient payload holds complex values.
func (f TapeFlag) IsComplex() bool {
	return (f.Options & ComplexMask) != 0
}

// CoefficientKind returns the coefficient kind recorded in the flag.
func (f TapeFlag) CoefficientKind() format.CoefficientKind {
	if f.IsComplex() {
		return format.CoeffComplex
	}

	return format.CoeffReal
}

// SetCoefficientKind records kind.
func (f *TapeFlag) SetCoefficientKind(kind format.CoefficientKind) {
	if kind == format.CoeffComplex {
		f.Options |= ComplexMask
	} else {
		f.Options &^= ComplexMask
	}
}

// IsLittleEndian returns whether the fixed-width fields are little-endian.
func (f TapeFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the fixed-width fields are big-endian.
func (f TapeFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *TapeFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *TapeFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number bits of Options.
func (f TapeFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IndexEncoding returns the variable tape encoding.
func (f TapeFlag) IndexEncoding() format.IndexEncoding {
	return format.IndexEncoding(f.Encoding & 0x0F)
}

// SetIndexEncoding sets the variable tape encoding.
func (f *TapeFlag) SetIndexEncoding(enc format.IndexEncoding) {
	f.Encoding &^= 0x0F
	f.Encoding |= uint8(enc) & 0x0F
}

// IndexCompression returns the variable tape codec.
func (f TapeFlag) IndexCompression() format.CompressionType {
	return format.CompressionType(f.Compression & compressionNibbleMask)
}

// SetIndexCompression sets the variable tape codec.
func (f *TapeFlag) SetIndexCompression(c format.CompressionType) {
	f.Compression &^= compressionNibbleMask
	f.Compression |= uint8(c) & compressionNibbleMask
}

// CoeffCompression returns the coefficient codec.
func (f TapeFlag) CoeffCompression() format.CompressionType {
	return format.CompressionType((f.Compression >> compressionNibbleShift) & compressionNibbleMask)
}

// SetCoeffCompression sets the coefficient codec.
func (f *TapeFlag) SetCoeffCompression(c format.CompressionType) {
	f.Compression &^= compressionNibbleMask << compressionNibbleShift
	f.Compression |= (uint8(c) & compressionNibbleMask) << compressionNibbleShift
}

// Validate checks the magic number, reserved bits and codec selections.
func (f TapeFlag) Validate() error {
	if f.GetMagicNumber() != MagicTapeOpt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 || f.Encoding&0xF0 != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}

	switch f.IndexEncoding() {
	case format.IndexRaw, format.IndexVarint:
	default:
		return fmt.Errorf("%w: index encoding %d", errs.ErrInvalidEncodingType, f.IndexEncoding())
	}

	for _, c := range []format.CompressionType{f.IndexCompression(), f.CoeffCompression()} {
		if !validCompression(c) {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, c)
		}
	}

	return nil
}

func validCompression(c format.CompressionType) bool {
	switch c {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return true
	default:
		return false
	}
}

// GetEndianEngine returns the engine matching the byte order bit.
func (f TapeFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
