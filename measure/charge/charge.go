// Package charge computes charge-delivery metrics for a stimulus pulse
// train. Net charge is the time integral of the piecewise-constant
// amplitude, so a charge-balanced biphasic train reports a net charge of
// zero within tolerance.
package charge

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stim/stim/train"
)

const defaultBalanceTolerance = 1e-9

// Config holds charge analysis parameters.
type Config struct {
	// BalanceTolerance is the relative net-charge bound below which the
	// train counts as charge balanced. Defaults to 1e-9.
	BalanceTolerance float64
}

// Result holds charge metrics in canonical-unit seconds (µA·s for current
// trains, mV·s for voltage trains).
type Result struct {
	// Net is the signed total delivered charge Σ amplitude·duration.
	Net float64
	// Positive is the charge delivered by positive-amplitude segments.
	Positive float64
	// Negative is the signed charge delivered by negative-amplitude
	// segments (always <= 0).
	Negative float64
	// Peak is the largest absolute amplitude in canonical units.
	Peak float64
	// Duration is the total train duration in seconds.
	Duration float64
	// Balanced reports whether |Net| stays within the tolerance relative
	// to the total unsigned charge.
	Balanced bool
}

// Analyze computes charge metrics for the train.
func Analyze(t *train.Train, cfg Config) Result {
	if cfg.BalanceTolerance <= 0 {
		cfg.BalanceTolerance = defaultBalanceTolerance
	}

	amps := t.Amplitudes()
	durs := t.Durations()

	res := Result{
		Net:      vecmath.DotProduct(amps, durs),
		Peak:     vecmath.MaxAbs(amps),
		Duration: vecmath.Sum(durs),
	}

	for i, a := range amps {
		q := a * durs[i]
		if q > 0 {
			res.Positive += q
		} else {
			res.Negative += q
		}
	}

	unsigned := res.Positive - res.Negative
	if unsigned == 0 {
		res.Balanced = true
	} else {
		res.Balanced = math.Abs(res.Net) <= cfg.BalanceTolerance*unsigned
	}

	return res
}
