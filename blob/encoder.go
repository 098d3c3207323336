package blob

import (
	"fmt"
	"math"

	"github.com/zeebo/blake3"

	"github.com/arloliu/polytape/compress"
	"github.com/arloliu/polytape/encoding"
	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/internal/options"
	"github.com/arloliu/polytape/section"
	"github.com/arloliu/polytape/tape"
)

// TapeEncoder serializes tapes into blobs.
type TapeEncoder struct {
	*TapeEncoderConfig
}

// NewTapeEncoder creates an encoder with the given options.
func NewTapeEncoder(opts ...TapeEncoderOption) (*TapeEncoder, error) {
	config := NewTapeEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}
	if err := config.setCodecs(); err != nil {
		return nil, err
	}

	return &TapeEncoder{TapeEncoderConfig: config}, nil
}

// Header returns a copy of the header template the encoder starts from.
func (e *TapeEncoder) Header() section.TapeHeader {
	return *e.header
}

// Encode serializes t.
//
// The tape is validated first; a malformed tape returns the errors of
// tape.Tape.Records. A tape or payload too large for the 32-bit header fields
// returns errs.ErrTooManyTapeEntries.
func (e *TapeEncoder) Encode(t *tape.Tape) ([]byte, error) {
	records, err := t.Records()
	if err != nil {
		return nil, err
	}
	numVars, err := t.NumVars()
	if err != nil {
		return nil, err
	}
	if uint64(len(t.Vars())) > math.MaxUint32 || uint64(t.NumCoeffs()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d variable entries, %d coefficients", errs.ErrTooManyTapeEntries, len(t.Vars()), t.NumCoeffs())
	}

	header := *e.header
	header.Flag.SetCoefficientKind(t.Kind())

	varPayload, err := e.encodeVars(header, t.Vars())
	if err != nil {
		return nil, err
	}
	coeffPayload, err := e.encodeCoeffs(t)
	if err != nil {
		return nil, err
	}

	coeffOffset := section.VarPayloadOffset + len(varPayload)
	digestOffset := coeffOffset + len(coeffPayload)
	if uint64(digestOffset)+section.DigestSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payloads of %d bytes", errs.ErrTooManyTapeEntries, digestOffset)
	}

	header.RecordCount = uint32(records)            //nolint:gosec
	header.VarCount = uint32(len(t.Vars()))         //nolint:gosec
	header.CoeffCount = uint32(t.NumCoeffs())       //nolint:gosec
	header.NumVars = uint32(numVars)                //nolint:gosec
	header.CoeffPayloadOffset = uint32(coeffOffset) //nolint:gosec
	header.DigestOffset = uint32(digestOffset)      //nolint:gosec

	out := make([]byte, 0, digestOffset+section.DigestSize)
	out = append(out, header.Bytes()...)
	out = append(out, varPayload...)
	out = append(out, coeffPayload...)
	digest := blake3.Sum256(out)
	out = append(out, digest[:]...)

	return out, nil
}

func (e *TapeEncoder) encodeVars(header section.TapeHeader, vars []int32) ([]byte, error) {
	enc, err := encoding.NewIndexEncoder(header.Flag.IndexEncoding(), e.engine)
	if err != nil {
		return nil, err
	}
	defer enc.Finish()

	enc.WriteSlice(vars)

	return e.compress(e.indexCodec, enc.Bytes())
}

func (e *TapeEncoder) encodeCoeffs(t *tape.Tape) ([]byte, error) {
	if t.IsComplex() {
		enc := encoding.NewComplexRawEncoder(e.engine)
		defer enc.Finish()
		enc.WriteSlice(t.ComplexCoeffs())

		return e.compress(e.coeffCodec, enc.Bytes())
	}

	enc := encoding.NewRealRawEncoder(e.engine)
	defer enc.Finish()
	enc.WriteSlice(t.RealCoeffs())

	return e.compress(e.coeffCodec, enc.Bytes())
}

// compress returns a payload that does not alias the pooled encoder buffer.
func (e *TapeEncoder) compress(codec compress.Codec, data []byte) ([]byte, error) {
	packed, err := codec.Compress(data)
	if err != nil {
		return nil, err
	}
	if len(packed) > 0 && len(data) > 0 && &packed[0] == &data[0] {
		return append([]byte(nil), packed...), nil
	}

	return packed, nil
}
