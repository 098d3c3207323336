// Package errs defines the sentinel errors returned by polytape packages.
//
// Callers match them with errors.Is; packages wrap them with fmt.Errorf("%w: ...")
// to attach the offending values.
package errs

import "errors"

// Algebra and encoding errors.
var (
	// ErrRange is returned when a monomial does not fit the declared bounds: its
	// order exceeds max order, or one of its variable indices is >= max num vars.
	ErrRange = errors.New("value out of range")
	// ErrInternalConsistency is returned when a tape walk ends with a cursor that
	// does not match the tape or output length. The tapes are corrupt or the
	// output shape does not match the number of encoded records.
	ErrInternalConsistency = errors.New("internal consistency error")
	// ErrUnsupportedOperand is returned by the dynamic operators when the operand
	// is neither a polynomial nor a numeric scalar.
	ErrUnsupportedOperand = errors.New("unsupported operand")
	// ErrEmptyPolynomial is returned when the degree of an empty polynomial is requested.
	ErrEmptyPolynomial = errors.New("empty polynomial")
	// ErrNegativeExponent is returned when raising a polynomial to a negative power.
	ErrNegativeExponent = errors.New("negative exponent")
	// ErrParamIndexOutOfRange is returned when a tape references a parameter
	// beyond the end of the supplied parameter vector.
	ErrParamIndexOutOfRange = errors.New("parameter index out of range")
	// ErrShapeMismatch is returned for output shapes with a negative dimension.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Blob format errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidHeaderFlags  = errors.New("invalid header flags")
	ErrInvalidMagicNumber  = errors.New("invalid magic number")
	ErrUnsupportedVersion  = errors.New("unsupported tape blob version")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrInvalidPayloadSize  = errors.New("invalid payload size")
	ErrChecksumMismatch    = errors.New("checksum mismatch")
	ErrTooManyTapeEntries  = errors.New("too many tape entries")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidEncodingType = errors.New("invalid encoding type")
)
