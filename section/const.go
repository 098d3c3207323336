package section

const (
	// Bit masks of the Options field.
	ComplexMask      = 0x0001 // coefficient kind bit (bit 0)
	EndiannessMask   = 0x0002 // byte order bit (bit 1)
	ReservedBitsMask = 0x000C // reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // magic number (bits 4-15)

	// MagicTapeOpt identifies a tape blob.
	MagicTapeOpt = 0x7A90
)

const (
	// Version1 is the only blob version this package reads and writes.
	Version1 uint8 = 1
	// CurrentVersion is the version written by NewTapeHeader.
	CurrentVersion = Version1
)

// offset and section sizes in the blob
const (
	HeaderSize             = 32         // fixed header size in bytes
	DigestSize             = 32         // BLAKE3-256 digest size in bytes
	VarPayloadOffset       = HeaderSize // the variable tape payload follows the header
	MinBlobSize            = HeaderSize + DigestSize
	headerReservedStart    = 5
	headerReservedEnd      = 8
	compressionNibbleMask  = 0x0F
	compressionNibbleShift = 4
)
