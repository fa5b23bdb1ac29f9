// Package export converts a finished pulse train into the integer device
// units consumed by the stimulation hardware: amplitudes as signed 32-bit
// device sub-units (canonical unit × 1000), durations as unsigned 64-bit
// microseconds.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-stim/internal/nanos"
	"github.com/cwbudde/algo-stim/stim/train"
)

const (
	amplitudeScale = 1000
	durationScale  = 1e6
)

// ErrDurationNotQuantized reports a segment duration that is not an exact
// multiple of the train's minimum time step.
var ErrDurationNotQuantized = errors.New("export: duration not aligned to minimum time step")

// StimValues converts the train into device integer arrays. Every duration
// must be an exact multiple of the minimum time step, checked in integer
// nanosecond arithmetic.
func StimValues(t *train.Train) ([]int32, []uint64, error) {
	durs := t.Durations()
	minDT := t.MinTimeDT()

	for i, d := range durs {
		if !nanos.IsMultiple(d, minDT) {
			return nil, nil, fmt.Errorf("%w: durations[%d] = %v at step %v",
				ErrDurationNotQuantized, i, d, minDT)
		}
	}

	amps := t.Amplitudes()

	outAmps := make([]int32, len(amps))
	for i, a := range amps {
		outAmps[i] = int32(math.Round(a * amplitudeScale))
	}

	outDurs := make([]uint64, len(durs))
	for i, d := range durs {
		outDurs[i] = uint64(math.Round(d * durationScale))
	}

	return outAmps, outDurs, nil
}
