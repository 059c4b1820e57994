package v1

import (
	"fmt"

	"github.com/4thel00z/vectors/internal"
)

// Codec encodes and renders vectors with a fixed set of settings.
type Codec struct {
	typecode  Typecode
	preview   int
	precision int
}

// NewCodec starts from the config given with WithConfig, else the file
// named by WithConfigFile, else DefaultConfig. WithTypecode, WithPreview and
// WithPrecision then override single settings.
func NewCodec(opts ...Option) (*Codec, error) {
	cc := &codecConfig{}
	for _, opt := range opts {
		opt(cc)
	}

	base := cc.config
	if base == nil && cc.configPath != "" {
		loaded, err := internal.LoadConfig(cc.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		base = loaded
	}
	if base == nil {
		base = internal.DefaultConfig()
	}

	cfg := *base
	if cc.typecode != nil {
		cfg.Format.Typecode = string(rune(*cc.typecode))
	}
	if cc.preview != nil {
		cfg.Format.ReprPreview = *cc.preview
	}
	if cc.precision != nil {
		cfg.Format.DisplayPrecision = *cc.precision
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tc, err := internal.ParseTypecode(cfg.Format.Typecode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Codec{
		typecode:  tc,
		preview:   cfg.Format.ReprPreview,
		precision: cfg.Format.DisplayPrecision,
	}, nil
}

// Typecode reports the typecode Encode writes.
func (c *Codec) Typecode() Typecode {
	return c.typecode
}

// Encode writes v using the codec's typecode. Encoding as Float32 rounds
// each component to float32 precision.
func (c *Codec) Encode(v Vector) ([]byte, error) {
	tagged, err := v.WithTypecode(c.typecode)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return tagged.Bytes(), nil
}

// Decode reads any supported typecode regardless of the codec's own.
func (c *Codec) Decode(data []byte) (Vector, error) {
	return internal.FromBytes(data)
}

// Repr renders v in constructor form, eliding components past the
// configured preview.
func (c *Codec) Repr(v Vector) string {
	return v.Repr(c.preview)
}

// Display renders v as a tuple with the configured precision.
func (c *Codec) Display(v Vector) string {
	if c.precision < 0 {
		return v.String()
	}
	return fmt.Sprintf("%.*f", c.precision, v)
}
