package lucid

import (
	"fmt"
	"math"
	"strings"

	"github.com/cloudy-native/lucid/utils"
)

// Axis is one of the three fixed world axes which a segment rotates about.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// ParseAxis returns the axis named by s, which may be upper or lower case.
func ParseAxis(s string) (Axis, error) {
	a := Axis(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown axis %q", s)
	}

	return a, nil
}

func (a Axis) Valid() bool {
	return a == AxisX || a == AxisY || a == AxisZ
}

// Speed is an angular velocity, in radians per unit time, expressed as an
// exact fraction. Keeping it rational is what allows the repetition period
// of a chain to be computed exactly.
type Speed struct {
	Num int64 `json:"num" yaml:"num"`
	Den int64 `json:"den" yaml:"den"`
}

// MakeSpeed returns the speed num/den. It is not validated.
func MakeSpeed(num, den int64) Speed {
	return Speed{Num: num, Den: den}
}

func (s Speed) String() string {
	return fmt.Sprintf("%d/%d", s.Num, s.Den)
}

// Float returns the speed in radians per unit time.
func (s Speed) Float() float64 {
	return float64(s.Num) / float64(s.Den)
}

// Stationary returns true if the segment never rotates.
func (s Speed) Stationary() bool {
	return s.Num == 0
}

// Reduced returns the speed in lowest terms. The sign is carried by the
// numerator. The zero speed reduces to 0/1.
func (s Speed) Reduced() Speed {
	if s.Den == 0 {
		return s
	}

	if s.Num == 0 {
		return Speed{0, 1}
	}

	num, den := s.Num, s.Den
	if den < 0 {
		num, den = -num, -den
	}

	g := utils.GCD(num, den)
	return Speed{num / g, den / g}
}

// Segment is one link of the kinematic chain. It rotates about Axis at Speed,
// then translates by Length along its own local X axis.
type Segment struct {

	// ID is only used to address segments when editing a configuration. The
	// path calculations never look at it.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	Length float64 `json:"length" yaml:"length"`
	Axis   Axis    `json:"axis" yaml:"axis"`
	Speed  Speed   `json:"speed" yaml:"speed"`
}

func (s Segment) String() string {
	return fmt.Sprintf("&Seg{%s: len=%+.2f axis=%s speed=%s}", s.ID, s.Length, s.Axis, s.Speed)
}

// Validate returns an error wrapping ErrInvalidSegment if the segment can't be
// sampled without producing NaN or Inf.
func (s Segment) Validate() error {
	if s.Speed.Den <= 0 {
		return fmt.Errorf("%w: denominator must be positive, got %d", ErrInvalidSegment, s.Speed.Den)
	}

	if !s.Axis.Valid() {
		return fmt.Errorf("%w: unknown axis %q", ErrInvalidSegment, s.Axis)
	}

	if math.IsNaN(s.Length) || math.IsInf(s.Length, 0) {
		return fmt.Errorf("%w: length must be finite, got %v", ErrInvalidSegment, s.Length)
	}

	return nil
}
