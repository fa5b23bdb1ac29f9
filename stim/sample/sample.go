// Package sample materializes a pulse train into a fixed-step sample array
// via sample-and-hold expansion. When no step is given, the coarsest step
// compatible with every segment duration is inferred through a greatest
// common divisor over integer-nanosecond durations.
package sample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stim/internal/nanos"
	"github.com/cwbudde/algo-stim/stim/train"
	"github.com/cwbudde/algo-stim/stim/units"
)

// AutoDT requests automatic inference of the sampling step.
const AutoDT = 0.0

// ErrDTNotCompatible reports a sampling step that is not a multiple of the
// train's minimum time step, or that does not exactly divide every segment
// duration.
var ErrDTNotCompatible = errors.New("sample: dt not compatible with train durations")

// Result holds the materialized sample data.
type Result struct {
	// Samples holds one amplitude value per dt step, sample-and-hold.
	Samples []float64
	// DT is the step actually used, after inference.
	DT float64
	// Times holds i*DT per sample when requested, nil otherwise.
	Times []float64
}

// Option configures sampling.
type Option func(*config)

type config struct {
	unit      string
	withTimes bool
}

// WithCurrentUnit rescales the output amplitudes into the given current
// unit. The train must be a current stimulus.
func WithCurrentUnit(unit string) Option {
	return func(cfg *config) {
		cfg.unit = unit
	}
}

// WithVoltageUnit rescales the output amplitudes into the given voltage
// unit. The train must be a voltage stimulus.
func WithVoltageUnit(unit string) Option {
	return func(cfg *config) {
		cfg.unit = unit
	}
}

// WithTimes adds the parallel i*dt time vector to the result.
func WithTimes() Option {
	return func(cfg *config) {
		cfg.withTimes = true
	}
}

// Values materializes the train at the given step in seconds. Pass AutoDT to
// infer the coarsest compatible step. The step must be an exact multiple of
// the train's minimum time step and must exactly divide every segment
// duration; both checks run on integer nanoseconds.
func Values(t *train.Train, dt float64, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	amps := t.Amplitudes()
	if cfg.unit != "" {
		var err error

		amps, err = units.FromCanonical(amps, cfg.unit, t.Kind())
		if err != nil {
			return nil, err
		}
	}

	durs := t.Durations()

	if dt <= 0 {
		dt = DTForDurations(durs)
		if dt == 0 {
			return nil, fmt.Errorf("%w: no positive durations to infer dt from", ErrDTNotCompatible)
		}
	}

	if !nanos.IsMultiple(dt, t.MinTimeDT()) {
		return nil, fmt.Errorf("%w: dt %v is not a multiple of the minimum step %v",
			ErrDTNotCompatible, dt, t.MinTimeDT())
	}

	dtNS := nanos.FromSeconds(dt)
	total := 0

	counts := make([]int, len(durs))
	for i, d := range durs {
		if !nanos.IsMultiple(d, dt) {
			return nil, fmt.Errorf("%w: duration %v is not a multiple of dt %v",
				ErrDTNotCompatible, d, dt)
		}

		counts[i] = int(nanos.FromSeconds(d) / dtNS)
		total += counts[i]
	}

	samples := make([]float64, 0, total)
	for i, n := range counts {
		for range n {
			samples = append(samples, amps[i])
		}
	}

	res := &Result{Samples: samples, DT: dt}
	if cfg.withTimes {
		res.Times = make([]float64, len(samples))
		for i := range res.Times {
			res.Times[i] = float64(i) * dt
		}
	}

	return res, nil
}

// DTForDurations returns the coarsest step in seconds that exactly divides
// every distinct positive duration, computed as a greatest common divisor
// over integer nanoseconds (1 ns floor resolution). The result is 0 when no
// positive duration is present.
func DTForDurations(durations []float64) float64 {
	return nanos.ToSeconds(nanos.GCDAll(durations))
}
