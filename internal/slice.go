package internal

import "fmt"

// Range selects components for Slice. Bounds left unset default to the
// start or end of the vector depending on the direction of the step, and
// negative bounds count from the end. Build one with Full, From, To or
// Span; the zero Range has a step of 0 and is rejected by Slice.
type Range struct {
	start, stop       int
	hasStart, hasStop bool
	step              int
}

// Full selects every component.
func Full() Range {
	return Range{step: 1}
}

// From selects components from start to the end.
func From(start int) Range {
	return Range{start: start, hasStart: true, step: 1}
}

// To selects components before stop.
func To(stop int) Range {
	return Range{stop: stop, hasStop: true, step: 1}
}

// Span selects components in [start, stop).
func Span(start, stop int) Range {
	return Range{start: start, stop: stop, hasStart: true, hasStop: true, step: 1}
}

// Step returns a copy of r taking every step-th component. A negative step
// walks backwards.
func (r Range) Step(step int) Range {
	r.step = step
	return r
}

// indices resolves r against a vector of the given length. Out-of-range
// bounds are clamped rather than rejected; for a negative step the clamp
// window is [-1, length-1] instead of [0, length].
func (r Range) indices(length int) (start, stop, step int, err error) {
	step = r.step
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("%w: slice step cannot be zero", ErrIndexOutOfRange)
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	start = upper
	if step > 0 {
		start = lower
	}
	if r.hasStart {
		start = clampIndex(r.start, length, lower, upper)
	}

	stop = lower
	if step > 0 {
		stop = upper
	}
	if r.hasStop {
		stop = clampIndex(r.stop, length, lower, upper)
	}

	return start, stop, step, nil
}

func clampIndex(i, length, lower, upper int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return lower
		}
		return i
	}
	if i > upper {
		return upper
	}
	return i
}

// Slice returns a new vector holding the components selected by r, in the
// order r visits them.
func (v Vector) Slice(r Range) (Vector, error) {
	start, stop, step, err := r.indices(len(v.components))
	if err != nil {
		return Vector{}, err
	}

	// start+k*step stays inside [0, length) for every k < n, so huge steps
	// cannot overflow.
	n := 0
	switch {
	case step > 0 && stop > start:
		n = (stop-start-1)/step + 1
	case step < 0 && start > stop:
		n = 1 - (start-stop-1)/step
	}

	out := make([]float64, n)
	for k := range out {
		out[k] = v.components[start+k*step]
	}
	return newVector(out), nil
}
