package internal

import "errors"

var (
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrNoAttribute         = errors.New("no such attribute")
	ErrReadOnlyAttribute   = errors.New("read-only attribute")
	ErrDecode              = errors.New("decode vector")
	ErrUnsupportedTypecode = errors.New("unsupported typecode")
	ErrInvalidConfig       = errors.New("invalid config")
)
