package train

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-stim/stim/quantize"
	"github.com/cwbudde/algo-stim/stim/units"
)

// Train is an ordered sequence of (amplitude, duration) segments with
// derived cumulative timing. Amplitudes are held in canonical units (µA for
// current, mV for voltage), durations in seconds as exact integer multiples
// of the minimum time step.
type Train struct {
	amps   []float64
	durs   []float64
	starts []float64
	stops  []float64

	kind   units.Family
	minDT  float64
	policy *quantize.Policy

	ampUnit string
	durUnit string
}

// newTrain assembles a train from already-canonical amplitudes and
// grid-quantized durations. The slices are owned by the new train.
func newTrain(cfg config, amps, durs []float64) *Train {
	t := &Train{
		amps:    amps,
		durs:    durs,
		kind:    cfg.kind,
		minDT:   cfg.minDT,
		policy:  cfg.policy.Clone(),
		ampUnit: cfg.ampUnit,
		durUnit: cfg.durUnit,
	}
	t.recomputeTiming()

	return t
}

// Len returns the number of segments.
func (t *Train) Len() int {
	return len(t.amps)
}

// Kind returns the electrical output family fixed at construction.
func (t *Train) Kind() units.Family {
	return t.kind
}

// MinTimeDT returns the minimum realizable time step in seconds.
func (t *Train) MinTimeDT() float64 {
	return t.minDT
}

// AmplitudeUnit returns the display unit label of the supplied amplitudes.
func (t *Train) AmplitudeUnit() string {
	return t.ampUnit
}

// DurationUnit returns the display unit label of the supplied durations.
func (t *Train) DurationUnit() string {
	return t.durUnit
}

// Amplitudes returns a copy of the segment amplitudes in canonical units.
func (t *Train) Amplitudes() []float64 {
	return append([]float64(nil), t.amps...)
}

// Durations returns a copy of the segment durations in seconds.
func (t *Train) Durations() []float64 {
	return append([]float64(nil), t.durs...)
}

// StartTimes returns a copy of the cumulative segment start times.
func (t *Train) StartTimes() []float64 {
	return append([]float64(nil), t.starts...)
}

// StopTimes returns a copy of the cumulative segment stop times.
func (t *Train) StopTimes() []float64 {
	return append([]float64(nil), t.stops...)
}

// TotalDuration returns the summed duration of all segments in seconds.
func (t *Train) TotalDuration() float64 {
	if len(t.stops) == 0 {
		return 0
	}

	return t.stops[len(t.stops)-1]
}

// Policy returns a copy of the rounding policy owned by the train.
func (t *Train) Policy() *quantize.Policy {
	return t.policy.Clone()
}

// Clone returns an independent deep copy of the train: segment arrays,
// timing arrays and the rounding policy share no storage with the receiver.
func (t *Train) Clone() *Train {
	return &Train{
		amps:    append([]float64(nil), t.amps...),
		durs:    append([]float64(nil), t.durs...),
		starts:  append([]float64(nil), t.starts...),
		stops:   append([]float64(nil), t.stops...),
		kind:    t.kind,
		minDT:   t.minDT,
		policy:  t.policy.Clone(),
		ampUnit: t.ampUnit,
		durUnit: t.durUnit,
	}
}

// recomputeTiming rebuilds the cumulative start/stop arrays from the
// durations. stops is the running sum of durations, starts trails it by one
// segment.
func (t *Train) recomputeTiming() {
	n := len(t.durs)

	t.starts = resize(t.starts, n)
	t.stops = resize(t.stops, n)
	if n == 0 {
		return
	}

	floats.CumSum(t.stops, t.durs)
	for i := range t.starts {
		t.starts[i] = t.stops[i] - t.durs[i]
	}
}

func resize(buf []float64, n int) []float64 {
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}
