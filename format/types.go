package format

type (
	CoefficientKind uint8
	IndexEncoding   uint8
	CompressionType uint8
)

const (
	CoeffReal    CoefficientKind = 0x1 // CoeffReal stores coefficients as float64.
	CoeffComplex CoefficientKind = 0x2 // CoeffComplex stores coefficients as complex128.

	IndexRaw    IndexEncoding = 0x1 // IndexRaw stores each variable tape entry as a fixed 4-byte integer.
	IndexVarint IndexEncoding = 0x2 // IndexVarint stores each variable tape entry as an unsigned varint.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k CoefficientKind) String() string {
	switch k {
	case CoeffReal:
		return "Real"
	case CoeffComplex:
		return "Complex"
	default:
		return "Unknown"
	}
}

func (e IndexEncoding) String() string {
	switch e {
	case IndexRaw:
		return "Raw"
	case IndexVarint:
		return "Varint"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
