package internal

import (
	"fmt"
	"math"
)

// Add returns the componentwise sum of v and other.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v.components) != len(other.components) {
		return Vector{}, fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, len(v.components), len(other.components))
	}

	out := make([]float64, len(v.components))
	for i, c := range v.components {
		out[i] = c + other.components[i]
	}
	return newVector(out), nil
}

// Scale multiplies every component by k.
func (v Vector) Scale(k float64) Vector {
	out := make([]float64, len(v.components))
	for i, c := range v.components {
		out[i] = c * k
	}
	return newVector(out)
}

// Magnitude is the Euclidean norm. It is 0 for the zero-dimensional vector.
// Components are scaled by the largest absolute value before squaring, as
// math.Hypot does for two values, so very large or very small components
// neither overflow to +Inf nor vanish to 0.
func (v Vector) Magnitude() float64 {
	var scale float64
	for _, c := range v.components {
		switch a := math.Abs(c); {
		case math.IsInf(a, 1):
			return math.Inf(1)
		case math.IsNaN(a):
			return math.NaN()
		case a > scale:
			scale = a
		}
	}
	if scale == 0 {
		return 0
	}

	var sum float64
	for _, c := range v.components {
		r := c / scale
		sum += r * r
	}
	return scale * math.Sqrt(sum)
}

func (v Vector) IsNonzero() bool {
	return v.Magnitude() != 0
}

// Angle returns the n-th angular coordinate of v in hyperspherical
// coordinates, for n in [1, Len()). For a 2-D vector Angle(1) is the polar
// angle measured in [0, 2π).
func (v Vector) Angle(n int) (float64, error) {
	if n < 1 || n >= len(v.components) {
		return 0, fmt.Errorf("%w: angle %d of %d-dimensional vector", ErrIndexOutOfRange, n, len(v.components))
	}

	r := newVector(v.components[n:]).Magnitude()
	a := math.Atan2(r, v.components[n-1])

	last := len(v.components) - 1
	if n == last && v.components[last] < 0 {
		return 2*math.Pi - a, nil
	}
	return a, nil
}

// Angles returns every angular coordinate, Angle(1) through Angle(Len()-1).
func (v Vector) Angles() []float64 {
	if len(v.components) < 2 {
		return nil
	}

	out := make([]float64, 0, len(v.components)-1)
	for n := 1; n < len(v.components); n++ {
		a, _ := v.Angle(n)
		out = append(out, a)
	}
	return out
}

// Spherical returns (magnitude, angle 1, ..., angle n-1).
func (v Vector) Spherical() Vector {
	out := make([]float64, 0, max(len(v.components), 1))
	out = append(out, v.Magnitude())
	out = append(out, v.Angles()...)
	return newVector(out)
}
