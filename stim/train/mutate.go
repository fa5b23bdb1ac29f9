package train

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stim/stim/units"
)

// AppendInPlace concatenates segments at the end of the train. Amplitudes
// are taken in canonical units; durations are quantized before anything is
// appended, so a failing call leaves the train unchanged.
func (t *Train) AppendInPlace(amplitudes, durations []float64) error {
	amps, durs, err := t.prepareSegments(amplitudes, durations)
	if err != nil {
		return err
	}

	t.amps = append(t.amps, amps...)
	t.durs = append(t.durs, durs...)
	t.recomputeTiming()

	return nil
}

// Append returns a new train with segments concatenated at the end.
func (t *Train) Append(amplitudes, durations []float64) (*Train, error) {
	c := t.Clone()
	if err := c.AppendInPlace(amplitudes, durations); err != nil {
		return nil, err
	}

	return c, nil
}

// PrependInPlace concatenates segments at the start of the train.
func (t *Train) PrependInPlace(amplitudes, durations []float64) error {
	amps, durs, err := t.prepareSegments(amplitudes, durations)
	if err != nil {
		return err
	}

	t.amps = append(amps, t.amps...)
	t.durs = append(durs, t.durs...)
	t.recomputeTiming()

	return nil
}

// Prepend returns a new train with segments concatenated at the start.
func (t *Train) Prepend(amplitudes, durations []float64) (*Train, error) {
	c := t.Clone()
	if err := c.PrependInPlace(amplitudes, durations); err != nil {
		return nil, err
	}

	return c, nil
}

// RepeatInPlace tiles the full segment sequence n times.
func (t *Train) RepeatInPlace(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRepeat, n)
	}
	if n == 1 {
		return nil
	}

	t.amps, t.durs = tile(t.amps, t.durs, n)
	t.recomputeTiming()

	return nil
}

// Repeat returns a new train with the full segment sequence tiled n times.
func (t *Train) Repeat(n int) (*Train, error) {
	c := t.Clone()
	if err := c.RepeatInPlace(n); err != nil {
		return nil, err
	}

	return c, nil
}

// SimplifyInPlace merges consecutive segments with identical amplitude and
// drops zero-duration segments in a single left-to-right pass. Amplitude
// equality is exact, so binary signals derived after Abs collapse reliably.
func (t *Train) SimplifyInPlace() {
	amps := t.amps[:0]
	durs := t.durs[:0]

	for i := range t.amps {
		if t.durs[i] == 0 {
			continue
		}

		if len(amps) > 0 && amps[len(amps)-1] == t.amps[i] {
			durs[len(durs)-1] += t.durs[i]
			continue
		}

		amps = append(amps, t.amps[i])
		durs = append(durs, t.durs[i])
	}

	t.amps = amps
	t.durs = durs
	t.recomputeTiming()
}

// Simplify returns a new train with merged and zero-duration segments
// removed.
func (t *Train) Simplify() *Train {
	c := t.Clone()
	c.SimplifyInPlace()

	return c
}

// AddValueInPlace appends a single trailing segment, updating cumulative
// timing incrementally.
func (t *Train) AddValueInPlace(amplitude, duration float64) error {
	durs, err := t.policy.Durations([]float64{duration}, []float64{amplitude}, t.minDT)
	if err != nil {
		return err
	}

	total := t.TotalDuration()
	t.amps = append(t.amps, amplitude)
	t.durs = append(t.durs, durs[0])
	t.starts = append(t.starts, total)
	t.stops = append(t.stops, total+durs[0])

	return nil
}

// AddValue returns a new train with a single trailing segment appended.
func (t *Train) AddValue(amplitude, duration float64) (*Train, error) {
	c := t.Clone()
	if err := c.AddValueInPlace(amplitude, duration); err != nil {
		return nil, err
	}

	return c, nil
}

// DropLastValueInPlace removes the trailing segment, updating cumulative
// timing incrementally.
func (t *Train) DropLastValueInPlace() error {
	n := len(t.amps)
	if n == 0 {
		return ErrEmptyTrain
	}

	t.amps = t.amps[:n-1]
	t.durs = t.durs[:n-1]
	t.starts = t.starts[:n-1]
	t.stops = t.stops[:n-1]

	return nil
}

// DropLastValue returns a new train without the trailing segment.
func (t *Train) DropLastValue() (*Train, error) {
	c := t.Clone()
	if err := c.DropLastValueInPlace(); err != nil {
		return nil, err
	}

	return c, nil
}

// ScaleInPlace multiplies all amplitudes by factor. Durations are untouched.
func (t *Train) ScaleInPlace(factor float64) {
	vecmath.ScaleBlockInPlace(t.amps, factor)
}

// Scale returns a new train with all amplitudes multiplied by factor.
func (t *Train) Scale(factor float64) *Train {
	c := t.Clone()
	c.ScaleInPlace(factor)

	return c
}

// AbsInPlace rectifies all amplitudes to their absolute value.
func (t *Train) AbsInPlace() {
	for i, a := range t.amps {
		t.amps[i] = math.Abs(a)
	}
}

// Abs returns a new train with all amplitudes rectified.
func (t *Train) Abs() *Train {
	c := t.Clone()
	c.AbsInPlace()

	return c
}

// ConcatenateInPlace appends the full segment sequence of other at the end
// of the receiver. The operand is never modified; its durations are
// re-quantized onto the receiver's time grid.
func (t *Train) ConcatenateInPlace(other *Train) error {
	if other.kind != t.kind {
		return fmt.Errorf("%w: cannot concatenate %s onto %s",
			units.ErrFamilyMismatch, other.kind, t.kind)
	}

	durs, err := t.policy.Durations(other.durs, other.amps, t.minDT)
	if err != nil {
		return err
	}

	t.amps = append(t.amps, other.amps...)
	t.durs = append(t.durs, durs...)
	t.recomputeTiming()

	return nil
}

// Concatenate returns a new train with the segments of other appended.
func (t *Train) Concatenate(other *Train) (*Train, error) {
	c := t.Clone()
	if err := c.ConcatenateInPlace(other); err != nil {
		return nil, err
	}

	return c, nil
}

// prepareSegments validates and converts raw segments for Append/Prepend
// without touching the train.
func (t *Train) prepareSegments(amplitudes, durations []float64) ([]float64, []float64, error) {
	if len(amplitudes) != len(durations) {
		return nil, nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(amplitudes), len(durations))
	}

	durs, err := t.policy.Durations(durations, amplitudes, t.minDT)
	if err != nil {
		return nil, nil, err
	}

	return append([]float64(nil), amplitudes...), durs, nil
}
