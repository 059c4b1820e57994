package internal

import (
	"fmt"
	"iter"
)

// Vector is an immutable point in n-dimensional real space.
//
// The zero value is a valid zero-dimensional vector. Every operation that
// produces a vector returns a new one backed by its own buffer, so a Vector
// may be shared between goroutines without synchronization.
type Vector struct {
	components []float64
	typecode   Typecode
}

// New copies components into a new Vector tagged Float64.
func New(components ...float64) Vector {
	buf := make([]float64, len(components))
	copy(buf, components)
	return Vector{components: buf}
}

// newVector takes ownership of buf without copying.
func newVector(buf []float64) Vector {
	return Vector{components: buf}
}

func (v Vector) Len() int {
	return len(v.components)
}

// At returns the component at index i.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.components) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(v.components))
	}
	return v.components[i], nil
}

// Components returns a copy of the component buffer.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.components))
	copy(out, v.components)
	return out
}

// Values yields each component from first to last. The sequence can be
// ranged over any number of times.
func (v Vector) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, c := range v.components {
			if !yield(c) {
				return
			}
		}
	}
}

// All yields index/component pairs in order.
func (v Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, c := range v.components {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Typecode reports the wire encoding used by Bytes.
func (v Vector) Typecode() Typecode {
	if v.typecode == 0 {
		return Float64
	}
	return v.typecode
}

// WithTypecode returns a copy of v encoded as tc. Converting to Float32
// rounds every component to float32 precision so that decoding the result
// of Bytes gives back an equal vector.
func (v Vector) WithTypecode(tc Typecode) (Vector, error) {
	if tc.Size() == 0 {
		return Vector{}, fmt.Errorf("%w: %s", ErrUnsupportedTypecode, tc)
	}

	buf := make([]float64, len(v.components))
	for i, c := range v.components {
		if tc == Float32 {
			c = float64(float32(c))
		}
		buf[i] = c
	}

	return Vector{components: buf, typecode: tc}, nil
}
