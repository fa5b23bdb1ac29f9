// Package units converts amplitude and duration values between user-facing
// units and the two canonical internal representations: microampere (current)
// or millivolt (voltage) for amplitude, and seconds for time. All scale
// factors are exact powers of 1000.
package units

import (
	"errors"
	"fmt"
)

// Family identifies the electrical output family of an amplitude unit.
type Family int

const (
	// Current marks microampere-canonical amplitudes.
	Current Family = iota
	// Voltage marks millivolt-canonical amplitudes.
	Voltage
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Current:
		return "current"
	case Voltage:
		return "voltage"
	default:
		return "unknown"
	}
}

// Canonical unit labels and the default time unit.
const (
	CanonicalCurrent  = "uA"
	CanonicalVoltage  = "mV"
	CanonicalDuration = "s"
)

var (
	// ErrUnknownUnit reports an unrecognized unit token.
	ErrUnknownUnit = errors.New("units: unknown unit")
	// ErrFamilyMismatch reports an amplitude unit whose family contradicts
	// the declared output family of the train.
	ErrFamilyMismatch = errors.New("units: amplitude unit family mismatch")
)

// AmplitudeInfo returns the factor converting one unit of the given
// amplitude token into its canonical unit, along with the unit family.
// Both "u" and "µ" micro prefixes are accepted.
func AmplitudeInfo(unit string) (float64, Family, error) {
	switch unit {
	case "V":
		return 1000, Voltage, nil
	case "mV":
		return 1, Voltage, nil
	case "uV", "µV":
		return 0.001, Voltage, nil
	case "mA":
		return 1000, Current, nil
	case "uA", "µA":
		return 1, Current, nil
	case "nA":
		return 0.001, Current, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
}

// AmplitudeFactor returns the canonical conversion factor for unit after
// validating that the unit belongs to the given family.
func AmplitudeFactor(unit string, family Family) (float64, error) {
	factor, fam, err := AmplitudeInfo(unit)
	if err != nil {
		return 0, err
	}
	if fam != family {
		return 0, fmt.Errorf("%w: %q is a %s unit, train outputs %s", ErrFamilyMismatch, unit, fam, family)
	}

	return factor, nil
}

// ConvertAmplitudes returns a new slice with values converted from unit into
// the canonical unit of the given family.
func ConvertAmplitudes(values []float64, unit string, family Family) ([]float64, error) {
	factor, err := AmplitudeFactor(unit, family)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
	}

	return out, nil
}

// FromCanonical returns a new slice with canonical values rescaled into the
// requested output unit of the given family.
func FromCanonical(values []float64, unit string, family Family) ([]float64, error) {
	factor, err := AmplitudeFactor(unit, family)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	inv := 1 / factor
	for i, v := range values {
		out[i] = v * inv
	}

	return out, nil
}

// DurationFactor returns the factor converting one unit of the given time
// token into seconds.
func DurationFactor(unit string) (float64, error) {
	switch unit {
	case "s":
		return 1, nil
	case "ms":
		return 0.001, nil
	case "us", "µs":
		return 1e-6, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
}

// ConvertDurations returns a new slice with values converted from unit into
// seconds.
func ConvertDurations(values []float64, unit string) ([]float64, error) {
	factor, err := DurationFactor(unit)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
	}

	return out, nil
}
