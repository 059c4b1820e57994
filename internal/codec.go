package internal

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Typecode is the leading byte of the binary encoding. It names the width
// and format of every component that follows.
type Typecode byte

const (
	Float64 Typecode = 'd'
	Float32 Typecode = 'f'
)

// ParseTypecode maps the single-character form used in config files to a
// Typecode.
func ParseTypecode(s string) (Typecode, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTypecode, s)
	}
	tc := Typecode(s[0])
	if tc.Size() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTypecode, s)
	}
	return tc, nil
}

// Size is the encoded width of one component in bytes, or 0 when tc is not
// a known typecode.
func (tc Typecode) Size() int {
	switch tc {
	case Float64:
		return 8
	case Float32:
		return 4
	default:
		return 0
	}
}

func (tc Typecode) String() string {
	if tc >= 0x20 && tc < 0x7f {
		return fmt.Sprintf("%q", rune(tc))
	}
	return fmt.Sprintf("0x%02x", byte(tc))
}

// Bytes encodes v as its typecode followed by every component in order,
// little-endian. There is no length prefix.
func (v Vector) Bytes() []byte {
	tc := v.Typecode()
	size := tc.Size()

	buf := make([]byte, 1+len(v.components)*size)
	buf[0] = byte(tc)
	for i, c := range v.components {
		off := 1 + i*size
		switch tc {
		case Float32:
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(c)))
		default:
			binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(c))
		}
	}
	return buf
}

// FromBytes decodes the output of Bytes. The decoded vector keeps the
// typecode it was encoded with.
func FromBytes(data []byte) (Vector, error) {
	if len(data) == 0 {
		return Vector{}, fmt.Errorf("%w: missing typecode", ErrDecode)
	}

	tc := Typecode(data[0])
	size := tc.Size()
	if size == 0 {
		return Vector{}, fmt.Errorf("%w: %w %s", ErrDecode, ErrUnsupportedTypecode, tc)
	}

	payload := data[1:]
	if len(payload)%size != 0 {
		return Vector{}, fmt.Errorf("%w: payload of %d bytes is not a multiple of %d", ErrDecode, len(payload), size)
	}

	buf := make([]float64, len(payload)/size)
	for i := range buf {
		off := i * size
		switch tc {
		case Float32:
			buf[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off:])))
		default:
			buf[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[off:]))
		}
	}

	return Vector{components: buf, typecode: tc}, nil
}

func (v Vector) MarshalBinary() ([]byte, error) {
	return v.Bytes(), nil
}

// UnmarshalBinary replaces the receiver with the decoded vector; the
// previous buffer is left untouched.
func (v *Vector) UnmarshalBinary(data []byte) error {
	decoded, err := FromBytes(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// WriteTo writes the binary encoding of v to w.
func (v Vector) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("write vector: %w", err)
	}
	return int64(n), nil
}

// ReadFrom consumes r until EOF and decodes everything read as a single
// vector, since the encoding carries no length prefix.
func (v *Vector) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	n := int64(len(data))
	if err != nil {
		return n, fmt.Errorf("read vector: %w", err)
	}
	if err := v.UnmarshalBinary(data); err != nil {
		return n, err
	}
	return n, nil
}
