// Package path computes the curve traced by the end of a chain of segments.
//
// It has two halves. ComputePeriod works out, with exact integer arithmetic,
// how long the chain takes to return to its starting configuration. Sample
// then walks that period in uniform steps, composing each segment's rotation
// and translation to find the end of the chain at every step.
package path

import (
	"github.com/sirupsen/logrus"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/math3d"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "path",
})

// Result is a sampled path and the period it covers.
type Result struct {
	Period Period           `json:"period"`
	Step   float64          `json:"step"`
	Points []math3d.Vector3 `json:"points"`
}

// Samples returns the number of steps taken, which is one less than the number
// of points.
func (r *Result) Samples() int {
	return len(r.Points) - 1
}

// Trace computes the period of the configuration, then samples it n times.
func Trace(c lucid.Configuration, n int) (*Result, error) {
	p, err := ComputePeriod(c)
	if err != nil {
		return nil, err
	}

	points, err := Sample(c, p.Time, n)
	if err != nil {
		return nil, err
	}

	log.Debugf("traced %d segments: %s, %d samples", len(c), p, n)

	return &Result{
		Period: p,
		Step:   p.Time / float64(n),
		Points: points,
	}, nil
}
