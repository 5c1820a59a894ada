package math3d

import (
	"fmt"

	"github.com/cloudy-native/lucid/utils"
)

// EulerAngles are in radians.
type EulerAngles struct {
	Heading float64 // y
	Pitch   float64 // x
	Bank    float64 // z
}

type Rotation int

const (
	RotationHeading Rotation = iota // about Y
	RotationPitch                   // about X
	RotationBank                    // about Z
)

// MakeSingularEulerAngle returns angles which rotate by the given number of
// radians about a single axis.
func MakeSingularEulerAngle(rot Rotation, angle float64) *EulerAngles {
	ea := &EulerAngles{}

	switch rot {
	case RotationHeading:
		ea.Heading = angle

	case RotationPitch:
		ea.Pitch = angle

	case RotationBank:
		ea.Bank = angle

	default:
		panic("invalid rotation")
	}

	return ea
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{h=%+.2f° p=%+.2f° b=%+.2f°}", utils.Deg(ea.Heading), utils.Deg(ea.Pitch), utils.Deg(ea.Bank))
}
