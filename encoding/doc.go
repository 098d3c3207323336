// Package encoding implements the columnar encoders and decoders for the two
// streams of a serialized tape: the variable tape of int32 entries and the
// coefficient tape of float64 or complex128 values.
//
// # Variable tape
//
// Two encodings are available, selected by format.IndexEncoding:
//
//   - IndexRaw: 4 bytes per entry in the engine's byte order. Supports
//     random access.
//   - IndexVarint: zigzag + varint, 1 byte per entry for the small counts,
//     orders and variable indices that dominate real tapes. Sequential
//     access only.
//
// # Coefficient tape
//
// Coefficients are stored raw: 8 bytes per real value, 16 bytes per complex
// value with the real part first.
//
// # Usage
//
//	enc := encoding.NewIndexVarintEncoder()
//	defer enc.Finish()
//
//	enc.WriteSlice(t.Vars())
//	payload := enc.Bytes()
//
//	vars, err := encoding.DecodeIndices(format.IndexVarint, engine, payload, len(t.Vars()))
//
// Encoders take their buffers from an internal pool; always call Finish once
// the bytes have been copied out.
package encoding
