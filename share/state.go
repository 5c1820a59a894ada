package share

import (
	"github.com/cloudy-native/lucid"
)

// State is everything which a share link carries: the chain, and how to
// render it.
type State struct {
	Segments    lucid.Configuration `json:"segments" yaml:"segments"`
	Environment string              `json:"environment" yaml:"environment"`
	Material    string              `json:"material" yaml:"material"`
}

// DefaultState returns the configuration shown when there's nothing (valid) to
// share. Each call returns a fresh copy.
func DefaultState() State {
	return State{
		Segments: lucid.Configuration{
			{ID: "1", Length: 1, Axis: lucid.AxisX, Speed: lucid.MakeSpeed(1, 10)},
			{ID: "2", Length: 2, Axis: lucid.AxisY, Speed: lucid.MakeSpeed(1, 7)},
			{ID: "3", Length: 0.5, Axis: lucid.AxisZ, Speed: lucid.MakeSpeed(2, 5)},
			{ID: "4", Length: 1, Axis: lucid.AxisX, Speed: lucid.MakeSpeed(3, 4)},
		},
		Environment: DefaultEnvironment,
		Material:    DefaultMaterial,
	}
}

// Normalize replaces unknown environment and material names with the defaults.
// Segments are left alone.
func (s State) Normalize() State {
	if !ValidEnvironment(s.Environment) {
		s.Environment = DefaultEnvironment
	}

	if _, ok := LookupMaterial(s.Material); !ok {
		s.Material = DefaultMaterial
	}

	return s
}
