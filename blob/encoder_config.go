package blob

import (
	"fmt"

	"github.com/arloliu/polytape/compress"
	"github.com/arloliu/polytape/endian"
	"github.com/arloliu/polytape/errs"
	"github.com/arloliu/polytape/format"
	"github.com/arloliu/polytape/internal/options"
	"github.com/arloliu/polytape/section"
)

// TapeEncoderConfig holds the header template and codecs of a TapeEncoder.
type TapeEncoderConfig struct {
	header     *section.TapeHeader
	engine     endian.EndianEngine
	indexCodec compress.Codec
	coeffCodec compress.Codec
}

// NewTapeEncoderConfig creates the default configuration: little-endian,
// varint indices, Zstd variable tape, uncompressed coefficients.
func NewTapeEncoderConfig() *TapeEncoderConfig {
	header := section.NewTapeHeader()

	return &TapeEncoderConfig{
		header: header,
		engine: header.Flag.GetEndianEngine(),
	}
}

func (c *TapeEncoderConfig) setIndexEncoding(enc format.IndexEncoding) error {
	switch enc {
	case format.IndexRaw, format.IndexVarint:
		c.header.Flag.SetIndexEncoding(enc)
		return nil
	default:
		return fmt.Errorf("%w: index encoding %d", errs.ErrInvalidEncodingType, enc)
	}
}

func (c *TapeEncoderConfig) setIndexCompression(comp format.CompressionType) error {
	if _, err := compress.GetCodec(comp); err != nil {
		return err
	}
	c.header.Flag.SetIndexCompression(comp)

	return nil
}

func (c *TapeEncoderConfig) setCoeffCompression(comp format.CompressionType) error {
	if _, err := compress.GetCodec(comp); err != nil {
		return err
	}
	c.header.Flag.SetCoeffCompression(comp)

	return nil
}

func (c *TapeEncoderConfig) setBigEndian(big bool) {
	if big {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
	c.engine = c.header.Flag.GetEndianEngine()
}

// setCodecs resolves the codecs named by the header.
func (c *TapeEncoderConfig) setCodecs() error {
	var err error
	if c.indexCodec, err = compress.GetCodec(c.header.Flag.IndexCompression()); err != nil {
		return err
	}
	if c.coeffCodec, err = compress.GetCodec(c.header.Flag.CoeffCompression()); err != nil {
		return err
	}

	return nil
}

// TapeEncoderOption configures a TapeEncoder.
type TapeEncoderOption = options.Option[*TapeEncoderConfig]

// WithLittleEndian writes fixed-width fields little-endian. It is the default.
func WithLittleEndian() TapeEncoderOption {
	return options.NoError(func(c *TapeEncoderConfig) {
		c.setBigEndian(false)
	})
}

// WithBigEndian writes fixed-width fields big-endian.
func WithBigEndian() TapeEncoderOption {
	return options.NoError(func(c *TapeEncoderConfig) {
		c.setBigEndian(true)
	})
}

// WithIndexEncoding sets the variable tape encoding. The default is format.IndexVarint.
func WithIndexEncoding(enc format.IndexEncoding) TapeEncoderOption {
	return options.New(func(c *TapeEncoderConfig) error {
		return c.setIndexEncoding(enc)
	})
}

// WithIndexCompression sets the variable tape codec. The default is format.CompressionZstd.
func WithIndexCompression(comp format.CompressionType) TapeEncoderOption {
	return options.New(func(c *TapeEncoderConfig) error {
		return c.setIndexCompression(comp)
	})
}

// WithCoeffCompression sets the coefficient codec. The default is format.CompressionNone.
func WithCoeffCompression(comp format.CompressionType) TapeEncoderOption {
	return options.New(func(c *TapeEncoderConfig) error {
		return c.setCoeffCompression(comp)
	})
}
