package internal

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultReprPreview is how many components GoString shows before eliding
// the rest.
const DefaultReprPreview = 5

// String renders v as a tuple, e.g. "(1.0, 2.0)". A single component keeps
// its trailing comma and the empty vector is "()".
func (v Vector) String() string {
	return tuple(v.components, formatComponent)
}

// GoString renders v as a constructor call with at most DefaultReprPreview
// components.
func (v Vector) GoString() string {
	return v.Repr(DefaultReprPreview)
}

// Repr renders v as "Vector([c0, c1, ...])" showing at most preview
// components. A negative preview shows them all.
func (v Vector) Repr(preview int) string {
	shown := v.components
	elided := false
	if preview >= 0 && len(shown) > preview {
		shown = shown[:preview]
		elided = true
	}

	var b strings.Builder
	b.WriteString("Vector([")
	b.WriteString(joinComponents(shown, formatComponent))
	if elided {
		if len(shown) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteString("])")
	return b.String()
}

// Format implements fmt.Formatter.
//
//	%v %s  tuple form, as String
//	%#v    constructor form, as GoString
//	%f %e %g (and upper-case variants) format each component with the
//	       given flags, width and precision: "(3.000, 4.000)", keeping
//	       the tuple punctuation of String
//	%h     hyperspherical coordinates "<r, a1, ...>"; width and precision
//	       apply to each coordinate as for %g
func (v Vector) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			_, _ = io.WriteString(f, v.GoString())
			return
		}
		_, _ = io.WriteString(f, v.String())
	case 's':
		_, _ = io.WriteString(f, v.String())
	case 'f', 'F', 'e', 'E', 'g', 'G':
		spec := fmt.FormatString(f, verb)
		_, _ = io.WriteString(f, tuple(v.components, sprintfComponent(spec)))
	case 'h':
		format := formatComponent
		_, hasWidth := f.Width()
		_, hasPrec := f.Precision()
		if hasWidth || hasPrec {
			format = sprintfComponent(fmt.FormatString(f, 'g'))
		}
		_, _ = io.WriteString(f, "<"+joinComponents(v.Spherical().components, format)+">")
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(Vector=%s)", verb, v.String())
	}
}

func sprintfComponent(spec string) func(float64) string {
	return func(c float64) string {
		return fmt.Sprintf(spec, c)
	}
}

func tuple(cs []float64, format func(float64) string) string {
	switch len(cs) {
	case 0:
		return "()"
	case 1:
		return "(" + format(cs[0]) + ",)"
	}
	return "(" + joinComponents(cs, format) + ")"
}

func joinComponents(cs []float64, format func(float64) string) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = format(c)
	}
	return strings.Join(parts, ", ")
}

// formatComponent writes the shortest string that parses back to c,
// always with a decimal point or exponent so it reads as a float. Values
// below 1e-4 or from 1e16 up use exponent form.
func formatComponent(c float64) string {
	switch {
	case math.IsNaN(c):
		return "nan"
	case math.IsInf(c, 1):
		return "inf"
	case math.IsInf(c, -1):
		return "-inf"
	}

	if abs := math.Abs(c); c != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(c, 'e', -1, 64)
	}

	s := strconv.FormatFloat(c, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
