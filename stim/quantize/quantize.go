// Package quantize rounds raw durations onto the integer time grid a
// stimulus device can realize. Every quantized duration is an exact integer
// multiple of the minimum realizable time step, with the rounding direction
// controlled by a cloneable Policy.
package quantize

import (
	"errors"
	"fmt"
	"math"
)

// Rounding selects how a raw duration maps onto grid steps.
type Rounding int

const (
	// Nearest rounds to the closest step, half away from zero.
	Nearest Rounding = iota
	// Down truncates toward zero steps.
	Down
	// Up rounds away from zero steps.
	Up
)

var (
	// ErrNegativeDuration reports a raw duration below zero.
	ErrNegativeDuration = errors.New("quantize: duration must be >= 0")
	// ErrInvalidStep reports a non-positive minimum time step.
	ErrInvalidStep = errors.New("quantize: minimum time step must be > 0")
	// ErrLengthMismatch reports amplitude/duration arrays of unequal length.
	ErrLengthMismatch = errors.New("quantize: amplitude/duration length mismatch")
)

// Policy holds the rounding configuration applied during quantization.
// Zero-amplitude filler segments can round differently from active segments,
// which lets a builder bias timing error into the gaps between pulses.
type Policy struct {
	// Mode applies to segments with nonzero amplitude.
	Mode Rounding
	// ZeroMode applies to zero-amplitude segments.
	ZeroMode Rounding
}

// DefaultPolicy rounds every segment to the nearest grid step.
func DefaultPolicy() *Policy {
	return &Policy{Mode: Nearest, ZeroMode: Nearest}
}

// Clone returns an independent copy of the policy.
func (p *Policy) Clone() *Policy {
	if p == nil {
		return DefaultPolicy()
	}

	c := *p
	return &c
}

// Durations quantizes every raw duration to an exact integer multiple of
// minDT. Amplitudes select the rounding mode per segment and must either be
// empty or match durations in length. The input slices are not modified.
func (p *Policy) Durations(durations, amplitudes []float64, minDT float64) ([]float64, error) {
	if minDT <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, minDT)
	}
	if len(amplitudes) != 0 && len(amplitudes) != len(durations) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(amplitudes), len(durations))
	}

	for i, d := range durations {
		if d < 0 {
			return nil, fmt.Errorf("%w: durations[%d] = %v", ErrNegativeDuration, i, d)
		}
	}

	out := make([]float64, len(durations))
	for i, d := range durations {
		mode := p.mode()
		if len(amplitudes) != 0 && amplitudes[i] == 0 {
			mode = p.zeroMode()
		}

		out[i] = float64(steps(d, minDT, mode)) * minDT
	}

	return out, nil
}

// Period quantizes a single period to an exact multiple of minDT.
// A result of 0 means the period is not representable on the grid at all;
// callers must treat that as a fatal resolution failure, never as a usable
// time step.
func (p *Policy) Period(period, minDT float64) float64 {
	if minDT <= 0 || period <= 0 {
		return 0
	}

	n := steps(period, minDT, p.mode())
	if n <= 0 {
		return 0
	}

	return float64(n) * minDT
}

func (p *Policy) mode() Rounding {
	if p == nil {
		return Nearest
	}
	return p.Mode
}

func (p *Policy) zeroMode() Rounding {
	if p == nil {
		return Nearest
	}
	return p.ZeroMode
}

func steps(d, minDT float64, mode Rounding) int64 {
	ratio := d / minDT

	switch mode {
	case Down:
		return int64(math.Floor(ratio + 1e-9))
	case Up:
		return int64(math.Ceil(ratio - 1e-9))
	default:
		return int64(math.Round(ratio))
	}
}
