// Package section defines the fixed-size header of a persisted tape blob.
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                    │
//	├─────────────────────────────────────────────┤
//	│ Variable tape payload (encoded, compressed) │
//	├─────────────────────────────────────────────┤
//	│ Coefficient payload (encoded, compressed)   │
//	├─────────────────────────────────────────────┤
//	│ Digest (32 bytes, BLAKE3 of all the above)  │
//	└─────────────────────────────────────────────┘
//
// The variable tape payload always starts right after the header. The
// header records where the coefficient payload and the digest start.
//
// # Header Format
//
//	Bytes  | Field              | Type   | Description
//	-------|--------------------|--------|-----------------------------------------
//	0-1    | Options            | uint16 | flags + magic, always little-endian
//	2      | Version            | uint8  | format version, currently 1
//	3      | Encoding           | uint8  | bits 0-3 index encoding, 4-7 reserved
//	4      | Compression        | uint8  | bits 0-3 variable tape, 4-7 coefficients
//	5-7    | Reserved           |        | must be zero
//	8-11   | RecordCount        | uint32 | polynomials in the tape
//	12-15  | VarCount           | uint32 | entries of the variable tape
//	16-19  | CoeffCount         | uint32 | entries of the coefficient tape
//	20-23  | NumVars            | uint32 | largest variable index + 1
//	24-27  | CoeffPayloadOffset | uint32 | start of the coefficient payload
//	28-31  | DigestOffset       | uint32 | start of the digest
//
// Fields after byte 4 use the byte order named by the endianness flag.
//
// # Options Bits
//
//	Bit   | Meaning
//	------|--------------------------------------------
//	0     | coefficient kind: 0 = real, 1 = complex
//	1     | byte order: 0 = little-endian, 1 = big-endian
//	2-3   | reserved, must be zero
//	4-15  | magic number
package section
