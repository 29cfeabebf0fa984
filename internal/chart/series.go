package chart

import (
	"errors"
	"fmt"
)

// ErrUnknownVariant is returned for variant names other than DualAxis and
// Showcase.
var ErrUnknownVariant = errors.New("unknown variant")

type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// Series is an immutable, ordered list of bar heights bound to an axis.
type Series struct {
	axis   Axis
	values []float64
}

func NewSeries(axis Axis, values ...float64) Series {
	v := make([]float64, len(values))
	copy(v, values)
	return Series{axis: axis, values: v}
}

func (s Series) Axis() Axis       { return s.axis }
func (s Series) Len() int         { return len(s.values) }
func (s Series) At(i int) float64 { return s.values[i] }

// Values returns a copy of the heights.
func (s Series) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

type Variant string

const (
	DualAxis Variant = "dual-axis"
	Showcase Variant = "showcase"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case DualAxis, Showcase:
		return v, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownVariant, s)
}
