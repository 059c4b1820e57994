// Package v1 is the public API for immutable n-dimensional vectors and
// their binary encoding.
package v1

import "github.com/4thel00z/vectors/internal"

// Vector is an immutable point in n-dimensional real space.
type Vector = internal.Vector

// Range selects components for Vector.Slice.
type Range = internal.Range

// Typecode is the leading byte of the binary encoding.
type Typecode = internal.Typecode

// Comparison is the result of Vector.Compare.
type Comparison = internal.Comparison

// Config holds the formatting and encoding settings read from YAML.
type Config = internal.Config

const (
	Float64 = internal.Float64
	Float32 = internal.Float32
)

const (
	Incomparable = internal.Incomparable
	Equal        = internal.Equal
	NotEqual     = internal.NotEqual
)

var (
	ErrDimensionMismatch   = internal.ErrDimensionMismatch
	ErrIndexOutOfRange     = internal.ErrIndexOutOfRange
	ErrNoAttribute         = internal.ErrNoAttribute
	ErrReadOnlyAttribute   = internal.ErrReadOnlyAttribute
	ErrDecode              = internal.ErrDecode
	ErrUnsupportedTypecode = internal.ErrUnsupportedTypecode
	ErrInvalidConfig       = internal.ErrInvalidConfig
)

// New copies components into a new Vector.
func New(components ...float64) Vector {
	return internal.New(components...)
}

// FromBytes decodes a vector produced by Vector.Bytes.
func FromBytes(data []byte) (Vector, error) {
	return internal.FromBytes(data)
}

// Full selects every component.
func Full() Range { return internal.Full() }

// From selects components from start to the end.
func From(start int) Range { return internal.From(start) }

// To selects components before stop.
func To(stop int) Range { return internal.To(stop) }

// Span selects components in [start, stop).
func Span(start, stop int) Range { return internal.Span(start, stop) }

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return internal.DefaultConfig()
}

// LoadConfig reads a YAML config file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	return internal.LoadConfig(path)
}

// SaveConfig writes cfg to path as YAML.
func SaveConfig(path string, cfg *Config) error {
	return internal.SaveConfig(path, cfg)
}
