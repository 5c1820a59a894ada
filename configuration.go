package lucid

import (
	"fmt"
)

// Configuration is an ordered chain of segments. Transforms are composed in
// order, so reordering the segments produces a different curve.
//
// Configurations are treated as values: the editing methods below return a new
// configuration rather than mutating the receiver, so a configuration can be
// sampled while another copy is being edited.
type Configuration []Segment

// Validate checks every segment, and returns the first error found.
func (c Configuration) Validate() error {
	for i, s := range c {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("segment %d (%s): %w", i, s.ID, err)
		}
	}

	return nil
}

// Clone returns a copy of the configuration which shares nothing with it.
func (c Configuration) Clone() Configuration {
	if c == nil {
		return nil
	}

	cc := make(Configuration, len(c))
	copy(cc, c)
	return cc
}

// Index returns the position of the segment with the given ID, or -1.
func (c Configuration) Index(id string) int {
	for i, s := range c {
		if s.ID == id {
			return i
		}
	}

	return -1
}

// Append returns a new configuration with s added to the end of the chain.
func (c Configuration) Append(s Segment) Configuration {
	cc := make(Configuration, len(c), len(c)+1)
	copy(cc, c)
	return append(cc, s)
}

// Update returns a new configuration with the segment identified by s.ID
// replaced by s. It's an error if no segment has that ID.
func (c Configuration) Update(s Segment) (Configuration, error) {
	i := c.Index(s.ID)
	if i < 0 {
		return nil, fmt.Errorf("no segment with id %q", s.ID)
	}

	cc := c.Clone()
	cc[i] = s
	return cc, nil
}

// Remove returns a new configuration without the segment with the given ID.
// Removing an unknown ID returns an unchanged copy.
func (c Configuration) Remove(id string) Configuration {
	cc := make(Configuration, 0, len(c))
	for _, s := range c {
		if s.ID != id {
			cc = append(cc, s)
		}
	}

	return cc
}
