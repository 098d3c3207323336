package blob

import (
	"bytes"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/arloliu/polytape/compress"
	"github.com/arloliu/polytape/encoding"
	"github.com/arloliu/polytape/endian"
	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
	"github.com/arloliu/polytape/section"
	"github.com/arloliu/polytape/tape"
)

// TapeDecoder reads a tape back from a blob.
//
// Note: The TapeDecoder is NOT thread-safe.
type TapeDecoder struct {
	data   []byte
	header section.TapeHeader
	engine endian.EndianEngine
}

// NewTapeDecoder parses the header of data and verifies the blob digest.
//
// Payloads are not decompressed until Decode is called. data must stay
// unmodified while the decoder is in use.
func NewTapeDecoder(data []byte) (*TapeDecoder, error) {
	header, err := section.ParseTapeHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) < section.MinBlobSize {
		return nil, fmt.Errorf("%w: blob is %d bytes, minimum is %d", errs.ErrInvalidPayloadSize, len(data), section.MinBlobSize)
	}

	if len(data) != header.BlobSize() {
		return nil, fmt.Errorf("%w: blob is %d bytes, header describes %d", errs.ErrInvalidPayloadSize, len(data), header.BlobSize())
	}

	digest := blake3.Sum256(data[:header.DigestOffset])
	if !bytes.Equal(digest[:], data[header.DigestOffset:]) {
		return nil, errs.ErrChecksumMismatch
	}

	return &TapeDecoder{
		data:   data,
		header: header,
		engine: header.Flag.GetEndianEngine(),
	}, nil
}

// Header returns the parsed blob header.
func (d *TapeDecoder) Header() section.TapeHeader {
	return d.header
}

// Decode decompresses and decodes both payloads and rebuilds the tape.
//
// The rebuilt tape is checked against the counts recorded in the header;
// any disagreement returns an error wrapping errs.ErrInvalidPayload.
func (d *TapeDecoder) Decode() (*tape.Tape, error) {
	h := d.header

	varPayload, err := d.decompress(h.Flag.IndexCompression(), d.data[section.VarPayloadOffset:h.CoeffPayloadOffset])
	if err != nil {
		return nil, err
	}
	vars, err := encoding.DecodeIndices(h.Flag.IndexEncoding(), d.engine, varPayload, int(h.VarCount))
	if err != nil {
		return nil, err
	}

	coeffPayload, err := d.decompress(h.Flag.CoeffCompression(), d.data[h.CoeffPayloadOffset:h.DigestOffset])
	if err != nil {
		return nil, err
	}

	var t *tape.Tape
	if h.Flag.IsComplex() {
		coeffs, err := encoding.DecodeComplex(d.engine, coeffPayload, int(h.CoeffCount))
		if err != nil {
			return nil, err
		}
		t = tape.NewComplex(vars, coeffs)
	} else {
		coeffs, err := encoding.DecodeReal(d.engine, coeffPayload, int(h.CoeffCount))
		if err != nil {
			return nil, err
		}
		t = tape.NewReal(vars, coeffs)
	}

	if err := d.verify(t); err != nil {
		return nil, err
	}

	return t, nil
}

func (d *TapeDecoder) decompress(comp format.CompressionType, payload []byte) ([]byte, error) {
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s payload: %w", errs.ErrInvalidPayload, comp, err)
	}

	return out, nil
}

// verify checks the decoded tape against the header counts.
func (d *TapeDecoder) verify(t *tape.Tape) error {
	records, err := t.Records()
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if records != int(d.header.RecordCount) {
		return fmt.Errorf("%w: %d records decoded, header records %d", errs.ErrInvalidPayload, records, d.header.RecordCount)
	}

	numVars, err := t.NumVars()
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if numVars != int(d.header.NumVars) {
		return fmt.Errorf("%w: tape needs %d variables, header records %d", errs.ErrInvalidPayload, numVars, d.header.NumVars)
	}

	return nil
}
