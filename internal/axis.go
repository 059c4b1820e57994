package internal

import (
	"fmt"
	"strings"
)

// axisNames maps the first four components to single-letter names.
const axisNames = "xyzt"

// Axis reads a component by its axis name. Only "x", "y", "z" and "t" are
// mapped, and only when the vector is long enough to have that component.
func (v Vector) Axis(name string) (float64, error) {
	if len(name) == 1 {
		pos := strings.IndexByte(axisNames, name[0])
		if pos >= 0 && pos < len(v.components) {
			return v.components[pos], nil
		}
	}
	return 0, fmt.Errorf("%w: Vector has no attribute %q", ErrNoAttribute, name)
}

func (v Vector) X() (float64, error) { return v.Axis("x") }
func (v Vector) Y() (float64, error) { return v.Axis("y") }
func (v Vector) Z() (float64, error) { return v.Axis("z") }
func (v Vector) T() (float64, error) { return v.Axis("t") }

// SetAttr always fails: vectors are immutable. Axis names and every other
// single lowercase letter are reported as read-only, anything else as
// missing.
func (v Vector) SetAttr(name string, _ float64) error {
	if len(name) == 1 {
		switch c := name[0]; {
		case strings.IndexByte(axisNames, c) >= 0:
			return fmt.Errorf("%w %q", ErrReadOnlyAttribute, name)
		case c >= 'a' && c <= 'z':
			return fmt.Errorf("%w: can't set attributes 'a' to 'z' in Vector", ErrReadOnlyAttribute)
		}
	}
	return fmt.Errorf("%w: Vector has no attribute %q", ErrNoAttribute, name)
}
