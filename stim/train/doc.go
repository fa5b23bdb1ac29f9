// Package train models piecewise-constant stimulus pulse trains: ordered
// sequences of (amplitude, duration) segments with derived cumulative timing,
// locked to the integer time grid of the target stimulation hardware.
//
// A train is created by one of three builders and then evolved through
// mutating operations:
//
//   - FromArrays places explicit amplitude/duration arrays on the grid.
//   - FromTimes places a waveform template at each pulse onset time and
//     fills the gaps between pulses with zero-amplitude segments.
//   - FixedRate replicates a waveform at a pulse rate, optionally grouped
//     into bursts repeated at a slower train rate.
//
// Every mutating operation comes in two forms: the plain name returns a new
// independent train, the InPlace suffix mutates the receiver. This mirrors
// the Block/BlockInPlace convention used across the algo family.
//
//	t, err := train.FixedRate(40, train.WithPulseCount(3))
//	if err != nil { ... }
//	sync, err := t.SyncSignal()
//
// All durations stay exact integer multiples of the minimum realizable time
// step after every operation, and a failing operation never leaves a train
// partially mutated.
package train
