package train

import (
	"fmt"

	"github.com/cwbudde/algo-stim/internal/nanos"
)

// ExpandOption configures a boundary-expansion operation.
type ExpandOption func(*expandConfig)

type expandConfig struct {
	mask     []bool
	allow    bool
	allowSet bool
}

// WithMask selects the segments whose boundary is moved. The mask must match
// the segment count. Without a mask every nonzero-amplitude segment is
// selected.
func WithMask(mask []bool) ExpandOption {
	return func(cfg *expandConfig) {
		cfg.mask = mask
	}
}

// WithTotalDurationGrowth permits moving the outermost boundary, which
// changes the total signal duration. LeftExpand forbids this by default,
// RightExpand allows it.
func WithTotalDurationGrowth(allow bool) ExpandOption {
	return func(cfg *expandConfig) {
		cfg.allow = allow
		cfg.allowSet = true
	}
}

// LeftExpandInPlace moves the left boundary of every masked segment by shift
// seconds: the masked segment grows by shift while its left neighbor shrinks
// by the same amount (negative shift reverses the direction). All affected
// segments are validated before any boundary moves; a failing call leaves
// the train unchanged. Moving the boundary of the first segment changes the
// total duration and requires WithTotalDurationGrowth(true).
func (t *Train) LeftExpandInPlace(shift float64, opts ...ExpandOption) error {
	return t.expand(shift, true, opts...)
}

// LeftExpand returns a new train with the left boundaries of masked segments
// moved by shift seconds.
func (t *Train) LeftExpand(shift float64, opts ...ExpandOption) (*Train, error) {
	c := t.Clone()
	if err := c.LeftExpandInPlace(shift, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// RightExpandInPlace moves the right boundary of every masked segment by
// shift seconds: the masked segment grows by shift while its right neighbor
// shrinks by the same amount. Moving the boundary of the last segment grows
// the total duration, which is permitted by default.
func (t *Train) RightExpandInPlace(shift float64, opts ...ExpandOption) error {
	return t.expand(shift, false, opts...)
}

// RightExpand returns a new train with the right boundaries of masked
// segments moved by shift seconds.
func (t *Train) RightExpand(shift float64, opts ...ExpandOption) (*Train, error) {
	c := t.Clone()
	if err := c.RightExpandInPlace(shift, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

func (t *Train) expand(shift float64, left bool, opts ...ExpandOption) error {
	cfg := expandConfig{allow: !left}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	mask := cfg.mask
	if mask == nil {
		mask = t.defaultMask()
	} else if len(mask) != len(t.amps) {
		return fmt.Errorf("%w: %d != %d", ErrMaskLength, len(mask), len(t.amps))
	}

	shiftNS := nanos.FromSeconds(shift)
	if shiftNS == 0 {
		return nil
	}

	// Validation over the whole mask precedes any mutation.
	for i, m := range mask {
		if !m {
			continue
		}

		neighbor := i - 1
		boundary := i == 0
		if !left {
			neighbor = i + 1
			boundary = i == len(t.amps)-1
		}

		if boundary {
			if !cfg.allow {
				return fmt.Errorf("%w: segment %d", ErrBoundaryExpansion, i)
			}
			if shiftNS < 0 && nanos.FromSeconds(t.durs[i]) < -shiftNS {
				return fmt.Errorf("%w: segment %d holds %v, shift is %v",
					ErrInsufficientOwnDuration, i, t.durs[i], shift)
			}

			continue
		}

		if shiftNS > 0 && nanos.FromSeconds(t.durs[neighbor]) < shiftNS {
			return fmt.Errorf("%w: segment %d holds %v, shift is %v",
				ErrInsufficientNeighborDuration, neighbor, t.durs[neighbor], shift)
		}
		if shiftNS < 0 && nanos.FromSeconds(t.durs[i]) < -shiftNS {
			return fmt.Errorf("%w: segment %d holds %v, shift is %v",
				ErrInsufficientOwnDuration, i, t.durs[i], shift)
		}
	}

	// Apply the boundary moves in integer nanoseconds so paired
	// additions and subtractions cancel exactly.
	dursNS := make([]int64, len(t.durs))
	for i, d := range t.durs {
		dursNS[i] = nanos.FromSeconds(d)
	}

	for i, m := range mask {
		if !m {
			continue
		}

		dursNS[i] += shiftNS

		neighbor := i - 1
		if !left {
			neighbor = i + 1
		}
		if neighbor >= 0 && neighbor < len(dursNS) {
			dursNS[neighbor] -= shiftNS
		}
	}

	durs := make([]float64, len(dursNS))
	for i, n := range dursNS {
		durs[i] = nanos.ToSeconds(n)
	}

	durs, err := t.policy.Durations(durs, t.amps, t.minDT)
	if err != nil {
		return err
	}

	t.durs = durs
	t.recomputeTiming()

	return nil
}

// defaultMask selects every segment with nonzero amplitude.
func (t *Train) defaultMask() []bool {
	mask := make([]bool, len(t.amps))
	for i, a := range t.amps {
		mask[i] = a != 0
	}

	return mask
}
