// Package waveform defines the small reusable (amplitude, duration) patterns
// that pulse-train builders place at each stimulus onset. Templates are
// values: once created they are never mutated, and builders copy their
// segments into the trains they assemble.
package waveform

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stim/stim/units"
)

// DefaultPhaseDuration is the per-phase duration of the default biphasic
// template.
const DefaultPhaseDuration = 100e-6

var (
	// ErrLengthMismatch reports amplitude/duration arrays of unequal length.
	ErrLengthMismatch = errors.New("waveform: amplitude/duration length mismatch")
	// ErrNegativeDuration reports a negative segment duration.
	ErrNegativeDuration = errors.New("waveform: duration must be >= 0")
	// ErrEmpty reports a template without segments.
	ErrEmpty = errors.New("waveform: template must contain at least one segment")
)

// Template is a short segment pattern with its declared units.
type Template struct {
	Amplitudes    []float64
	Durations     []float64
	AmplitudeUnit string
	DurationUnit  string
}

// Biphasic returns a charge-balanced two-phase template: amp for phaseDur,
// then -amp for phaseDur, in canonical units.
func Biphasic(amp, phaseDur float64) Template {
	return Template{
		Amplitudes:    []float64{amp, -amp},
		Durations:     []float64{phaseDur, phaseDur},
		AmplitudeUnit: units.CanonicalCurrent,
		DurationUnit:  units.CanonicalDuration,
	}
}

// Default returns the standard biphasic template: unit amplitude, 100 µs
// per phase.
func Default() Template {
	return Biphasic(1, DefaultPhaseDuration)
}

// Validate checks the structural invariants of the template.
func (w Template) Validate() error {
	if len(w.Amplitudes) != len(w.Durations) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(w.Amplitudes), len(w.Durations))
	}
	if len(w.Amplitudes) == 0 {
		return ErrEmpty
	}

	for i, d := range w.Durations {
		if d < 0 {
			return fmt.Errorf("%w: durations[%d] = %v", ErrNegativeDuration, i, d)
		}
	}

	return nil
}

// Len returns the number of segments.
func (w Template) Len() int {
	return len(w.Amplitudes)
}

// TotalDuration returns the summed duration in the template's own time unit.
func (w Template) TotalDuration() float64 {
	total := 0.0
	for _, d := range w.Durations {
		total += d
	}

	return total
}

// Clone returns a template with independently owned segment arrays.
func (w Template) Clone() Template {
	c := w
	c.Amplitudes = append([]float64(nil), w.Amplitudes...)
	c.Durations = append([]float64(nil), w.Durations...)

	return c
}
