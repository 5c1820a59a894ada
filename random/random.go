// Package random generates configurations for the "surprise me" button.
package random

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/path"
	"github.com/cloudy-native/lucid/share"
)

var axes = []lucid.Axis{lucid.AxisX, lucid.AxisY, lucid.AxisZ}

// Options constrain the generated configurations. The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	MinSegments int
	MaxSegments int

	MinLength float64
	MaxLength float64

	// Numerators are drawn from [-MaxNumerator, MaxNumerator], excluding zero.
	MaxNumerator int64

	// Denominators are drawn from [1, MaxDenominator].
	MaxDenominator int64

	// Configurations whose combined cycle count exceeds this are redrawn, since
	// they can't be sampled smoothly at the default sample count.
	MaxCycles int64
}

func DefaultOptions() Options {
	return Options{
		MinSegments:    2,
		MaxSegments:    5,
		MinLength:      0.5,
		MaxLength:      3,
		MaxNumerator:   5,
		MaxDenominator: 8,
		MaxCycles:      420,
	}
}

// Generate returns a random configuration. The same rng state always produces
// the same segments, but the ids are always fresh.
func Generate(rng *rand.Rand, o Options) lucid.Configuration {
	if o.MaxSegments < o.MinSegments {
		o.MaxSegments = o.MinSegments
	}

	// Redrawing is bounded, in case the options make the cycle limit
	// unreachable. The last draw is returned regardless.
	var c lucid.Configuration
	for attempt := 0; attempt < 100; attempt++ {
		c = draw(rng, o)

		p, err := path.ComputePeriod(c)
		if err == nil && (o.MaxCycles <= 0 || p.Cycles <= o.MaxCycles) {
			break
		}
	}

	return c
}

// State returns a random configuration with a random environment and material.
func State(rng *rand.Rand, o Options) share.State {
	return share.State{
		Segments:    Generate(rng, o),
		Environment: share.Environments[rng.IntN(len(share.Environments))].Name,
		Material:    share.Materials[rng.IntN(len(share.Materials))].Name,
	}
}

func draw(rng *rand.Rand, o Options) lucid.Configuration {
	n := o.MinSegments + rng.IntN(o.MaxSegments-o.MinSegments+1)
	c := make(lucid.Configuration, n)

	for i := range c {
		c[i] = lucid.Segment{
			ID:     uuid.NewString(),
			Length: length(rng, o),
			Axis:   axes[rng.IntN(len(axes))],
			Speed:  lucid.MakeSpeed(numerator(rng, o), 1+rng.Int64N(max(o.MaxDenominator, 1))),
		}
	}

	return c
}

// length returns a length in [MinLength, MaxLength], rounded to one decimal so
// that it's easy to edit by hand.
func length(rng *rand.Rand, o Options) float64 {
	l := o.MinLength + rng.Float64()*(o.MaxLength-o.MinLength)
	return math.Round(l*10) / 10
}

func numerator(rng *rand.Rand, o Options) int64 {
	m := max(o.MaxNumerator, 1)
	n := 1 + rng.Int64N(m)
	if rng.IntN(2) == 0 {
		n = -n
	}
	return n
}
