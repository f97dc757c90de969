package indicator

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type curveKind uint8

const (
	curveMedium curveKind = iota // zero value, matches the default
	curveMax
	curveLow
	curveNone
	curveCustom
)

// Curve selects how strongly dot sizes respond to distance from the focused
// page. The same cases drive both the tail-off (shrink rate while idle and
// dragging) and the magnification (extra factor while dragging), each with
// its own lookup table.
type Curve struct {
	kind   curveKind
	custom float64
}

// SizeTailOff controls how fast dot diameters shrink either side of the
// current page.
type SizeTailOff = Curve

// Magnification controls how much the size differences are exaggerated
// while a drag is in progress.
type Magnification = Curve

// Predefined curves. CurveMedium is the zero value.
var (
	CurveMax    = Curve{kind: curveMax}
	CurveMedium = Curve{kind: curveMedium}
	CurveLow    = Curve{kind: curveLow}
	CurveNone   = Curve{kind: curveNone}
)

// CustomCurve returns a curve whose tail-off and magnification values are
// both v.
func CustomCurve(v float64) Curve {
	return Curve{kind: curveCustom, custom: v}
}

// TailOff returns the diameter lost per page of distance.
func (c Curve) TailOff() float64 {
	switch c.kind {
	case curveMax:
		return 7
	case curveLow:
		return 3
	case curveNone:
		return 0
	case curveCustom:
		return c.custom
	default:
		return 5
	}
}

// Magnification returns the factor applied to the tail-off while dragging.
func (c Curve) Magnification() float64 {
	switch c.kind {
	case curveMax:
		return 2
	case curveLow:
		return 1.2
	case curveNone:
		return 1
	case curveCustom:
		return c.custom
	default:
		return 1.5
	}
}

// IsCustom reports whether c carries an explicit value.
func (c Curve) IsCustom() bool { return c.kind == curveCustom }

// String returns the case name, or the custom value formatted as a number.
func (c Curve) String() string {
	switch c.kind {
	case curveMax:
		return "max"
	case curveLow:
		return "low"
	case curveNone:
		return "none"
	case curveCustom:
		return strconv.FormatFloat(c.custom, 'g', -1, 64)
	default:
		return "medium"
	}
}

// ParseCurve accepts a case name (max, medium, low, none) or a number,
// which yields a custom curve.
func ParseCurve(s string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return CurveMax, nil
	case "medium":
		return CurveMedium, nil
	case "low":
		return CurveLow, nil
	case "none":
		return CurveNone, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Curve{}, fmt.Errorf("parse curve %q: want max, medium, low, none or a number", s)
	}
	return CustomCurve(v), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: curve must be a scalar", value.Line)
	}
	parsed, err := ParseCurve(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Curve) MarshalYAML() (any, error) {
	if c.kind == curveCustom {
		return c.custom, nil
	}
	return c.String(), nil
}
