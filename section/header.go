package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/polytape/errs"
)

// TapeHeader is the fixed-size header at the start of a tape blob.
type TapeHeader struct {
	// Flag packs the options, encoding and compression bytes.
	Flag TapeFlag // byte offset 0-1, 3-4
	// Version is the blob format version.
	Version uint8 // byte offset 2
	// RecordCount is the number of polynomials encoded in the tape.
	RecordCount uint32 // byte offset 8-11
	// VarCount is the number of variable tape entries.
	VarCount uint32 // byte offset 12-15
	// CoeffCount is the number of coefficient tape entries.
	CoeffCount uint32 // byte offset 16-19
	// NumVars is the minimum parameter vector length the tape needs.
	NumVars uint32 // byte offset 20-23
	// CoeffPayloadOffset is the byte offset of the coefficient payload. It
	// also marks the end of the variable tape payload.
	CoeffPayloadOffset uint32 // byte offset 24-27
	// DigestOffset is the byte offset of the digest. It also marks the end of
	// the coefficient payload.
	DigestOffset uint32 // byte offset 28-31
}

// NewTapeHeader creates a header with the default flag and current version.
// Counts and offsets are filled in by the encoder.
func NewTapeHeader() *TapeHeader {
	return &TapeHeader{
		Flag:               NewTapeFlag(),
		Version:            CurrentVersion,
		CoeffPayloadOffset: VarPayloadOffset,
		DigestOffset:       VarPayloadOffset,
	}
}

// Parse parses the header from exactly HeaderSize bytes.
//
// It returns errs.ErrInvalidHeaderSize for a wrong length, errs.ErrUnsupportedVersion
// for an unknown version, and flag or offset validation errors.
func (h *TapeHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Version = data[2]
	h.Flag.Encoding = data[3]
	h.Flag.Compression = data[4]

	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if h.Version != Version1 {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	for _, b := range data[headerReservedStart:headerReservedEnd] {
		if b != 0 {
			return fmt.Errorf("%w: reserved header bytes set", errs.ErrInvalidHeaderFlags)
		}
	}

	engine := h.Flag.GetEndianEngine()
	h.RecordCount = engine.Uint32(data[8:12])
	h.VarCount = engine.Uint32(data[12:16])
	h.CoeffCount = engine.Uint32(data[16:20])
	h.NumVars = engine.Uint32(data[20:24])
	h.CoeffPayloadOffset = engine.Uint32(data[24:28])
	h.DigestOffset = engine.Uint32(data[28:32])

	if h.CoeffPayloadOffset < VarPayloadOffset || h.DigestOffset < h.CoeffPayloadOffset {
		return fmt.Errorf("%w: offsets %d, %d out of order", errs.ErrInvalidHeaderFlags, h.CoeffPayloadOffset, h.DigestOffset)
	}

	return nil
}

// Bytes serializes the header into HeaderSize bytes.
func (h *TapeHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	binary.LittleEndian.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Version
	b[3] = h.Flag.Encoding
	b[4] = h.Flag.Compression

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[8:12], h.RecordCount)
	engine.PutUint32(b[12:16], h.VarCount)
	engine.PutUint32(b[16:20], h.CoeffCount)
	engine.PutUint32(b[20:24], h.NumVars)
	engine.PutUint32(b[24:28], h.CoeffPayloadOffset)
	engine.PutUint32(b[28:32], h.DigestOffset)

	return b
}

// VarPayloadSize returns the size of the variable tape payload.
func (h *TapeHeader) VarPayloadSize() int {
	return int(h.CoeffPayloadOffset) - VarPayloadOffset
}

// CoeffPayloadSize returns the size of the coefficient payload.
func (h *TapeHeader) CoeffPayloadSize() int {
	return int(h.DigestOffset - h.CoeffPayloadOffset)
}

// BlobSize returns the total blob size the header describes.
func (h *TapeHeader) BlobSize() int {
	return int(h.DigestOffset) + DigestSize
}

// ParseTapeHeader parses the header at the start of data.
func ParseTapeHeader(data []byte) (TapeHeader, error) {
	if len(data) < HeaderSize {
		return TapeHeader{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h := TapeHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return TapeHeader{}, err
	}

	return h, nil
}
