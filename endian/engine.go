// Package endian selects the byte order used by the fixed-width sections of a
// serialized tape.
//
// Blobs default to little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//	encoder := encoding.NewIndexRawEncoder(engine)
//
// The engine is recorded in the blob header flags, so a decoder always picks
// the engine the blob was written with.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0100)

	return b[0] == 0x01
}
