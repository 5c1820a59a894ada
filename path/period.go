package path

import (
	"fmt"
	"math"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/utils"
)

const (

	// The largest combined cycle count which will be sampled. Beyond this, the
	// sample times are large enough that float64 can no longer represent the
	// angles precisely enough for the curve to close.
	MaxCycles = 1 << 40

	// The period of an empty configuration. This is exactly what the LCM fold
	// (seeded at one) yields for no segments, so an empty chain behaves like a
	// chain of stationary segments.
	FallbackPeriod = 2 * math.Pi
)

// Period is the time after which every segment of a configuration has turned
// through a whole number of revolutions, so the chain is back where it began.
type Period struct {

	// The least common multiple of the reduced denominators of every speed.
	Cycles int64 `json:"cycles"`

	// 2π × Cycles.
	Time float64 `json:"time"`
}

func (p Period) String() string {
	return fmt.Sprintf("&Period{cycles=%d t=%.4f}", p.Cycles, p.Time)
}

// ComputePeriod returns the period of the configuration. Stationary segments
// don't contribute, and neither does the sign of any speed. An empty
// configuration gets FallbackPeriod.
func ComputePeriod(c lucid.Configuration) (Period, error) {
	if err := c.Validate(); err != nil {
		return Period{}, err
	}

	if len(c) == 0 {
		log.Debugf("empty configuration, using fallback period")
		return Period{Cycles: 1, Time: FallbackPeriod}, nil
	}

	cycles := int64(1)
	for i, s := range c {
		d := cycleDenominator(s.Speed)

		var ok bool
		cycles, ok = utils.LCM(cycles, d)
		if !ok || cycles > MaxCycles {
			return Period{}, fmt.Errorf("%w: at segment %d (%s), speed %s", lucid.ErrCycleOverflow, i, s.ID, s.Speed)
		}
	}

	return Period{
		Cycles: cycles,
		Time:   2 * math.Pi * float64(cycles),
	}, nil
}

// cycleDenominator returns the number of 2π units of time which the segment
// needs to complete a whole number of revolutions. That's the denominator of
// its speed in lowest terms, or one if it never moves.
func cycleDenominator(s lucid.Speed) int64 {
	if s.Stationary() {
		return 1
	}

	return s.Reduced().Den
}
