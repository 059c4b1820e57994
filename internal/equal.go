package internal

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Comparison is the outcome of Compare.
type Comparison int

const (
	// Incomparable means the other operand is not a vector; callers
	// should fall back to their own notion of equality.
	Incomparable Comparison = iota
	Equal
	NotEqual
)

func (c Comparison) String() string {
	switch c {
	case Equal:
		return "equal"
	case NotEqual:
		return "not equal"
	default:
		return "incomparable"
	}
}

// Equal reports whether v and other have the same length and equal
// components in the same order. The typecode is not compared.
func (v Vector) Equal(other Vector) bool {
	if len(v.components) != len(other.components) {
		return false
	}
	for i, c := range v.components {
		if c != other.components[i] {
			return false
		}
	}
	return true
}

// Compare is Equal extended to arbitrary operands.
func (v Vector) Compare(other any) Comparison {
	var o Vector
	switch t := other.(type) {
	case Vector:
		o = t
	case *Vector:
		if t == nil {
			return Incomparable
		}
		o = *t
	default:
		return Incomparable
	}

	if v.Equal(o) {
		return Equal
	}
	return NotEqual
}

// Hash XORs together the hash of every component, starting from zero.
// Equal vectors always hash alike. The fold ignores order, so any
// permutation of the same components collides.
func (v Vector) Hash() uint64 {
	var h uint64
	for _, c := range v.components {
		h ^= hashComponent(c)
	}
	return h
}

func hashComponent(c float64) uint64 {
	// -0 == +0, so both must hash the same
	if c == 0 {
		c = 0
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
	return xxhash.Sum64(buf[:])
}
