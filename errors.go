package lucid

import "errors"

// ErrInvalidSegment is returned when a segment has a malformed speed, axis or
// length.
var ErrInvalidSegment = errors.New("invalid segment")

// ErrInvalidArgument is returned when a non-positive period or sample count is
// passed to the sampler, or when input such as a share code can't be parsed.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrCycleOverflow is returned when the combined cycle count of a configuration
// is too large to be sampled accurately.
var ErrCycleOverflow = errors.New("combined cycle count overflow")
