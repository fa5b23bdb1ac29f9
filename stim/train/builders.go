package train

import (
	"fmt"

	"github.com/cwbudde/algo-stim/internal/nanos"
	"github.com/cwbudde/algo-stim/stim/units"
)

// FromArrays builds a train from explicit amplitude and duration arrays.
// Values are converted from the configured units into canonical units and
// durations are quantized onto the minimum time-step grid.
func FromArrays(amplitudes, durations []float64, opts ...Option) (*Train, error) {
	if len(amplitudes) != len(durations) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(amplitudes), len(durations))
	}

	cfg := applyOptions(opts...)

	amps, err := units.ConvertAmplitudes(amplitudes, cfg.ampUnit, cfg.kind)
	if err != nil {
		return nil, err
	}

	durs, err := units.ConvertDurations(durations, cfg.durUnit)
	if err != nil {
		return nil, err
	}

	durs, err = cfg.policy.Durations(durs, amps, cfg.minDT)
	if err != nil {
		return nil, err
	}

	return newTrain(cfg, amps, durs), nil
}

// FromTimes places a copy of the waveform template at each pulse onset time.
// Times must be non-negative and strictly ascending. Gaps between pulses are
// filled with zero-amplitude segments; a leading filler covers the span up
// to the first onset unless the train starts at time zero.
func FromTimes(times []float64, opts ...Option) (*Train, error) {
	cfg := applyOptions(opts...)

	for i, tm := range times {
		if tm < 0 || (i > 0 && tm <= times[i-1]) {
			return nil, fmt.Errorf("%w: times[%d] = %v", ErrInvalidTimes, i, tm)
		}
	}

	wAmps, wDurs, err := canonicalWaveform(cfg)
	if err != nil {
		return nil, err
	}

	wTotal := 0.0
	for _, d := range wDurs {
		wTotal += d
	}

	// Validate every inter-pulse gap before assembling anything.
	for i := 1; i < len(times); i++ {
		if nanos.FromSeconds(times[i]-times[i-1]) < nanos.FromSeconds(wTotal) {
			return nil, fmt.Errorf("%w: interval %d is %v, waveform lasts %v",
				ErrInsufficientSpacing, i, times[i]-times[i-1], wTotal)
		}
	}

	amps := make([]float64, 0, len(times)*(len(wAmps)+1))
	durs := make([]float64, 0, len(times)*(len(wDurs)+1))

	wTotalNS := nanos.FromSeconds(wTotal)

	for i, tm := range times {
		if i == 0 {
			if tm > 0 {
				amps = append(amps, 0)
				durs = append(durs, tm)
			}
		} else {
			// Filler sized on integer nanoseconds so an interval that
			// exactly matches the waveform yields a clean zero.
			fillerNS := nanos.FromSeconds(tm-times[i-1]) - wTotalNS
			amps = append(amps, 0)
			durs = append(durs, nanos.ToSeconds(fillerNS))
		}

		amps = append(amps, wAmps...)
		durs = append(durs, wDurs...)
	}

	durs, err = cfg.policy.Durations(durs, amps, cfg.minDT)
	if err != nil {
		return nil, err
	}

	return newTrain(cfg, amps, durs), nil
}

// FixedRate builds a train of waveform pulses repeated at the given rate in
// Hz. The pulse count comes from WithPulseCount, from WithPulsesDuration, or
// defaults to 1. With WithTrainRate the pulses form a group that is itself
// replicated at the slower train rate.
func FixedRate(rate float64, opts ...Option) (*Train, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("train: rate must be > 0: %v", rate)
	}

	cfg := applyOptions(opts...)

	wAmps, wDurs, err := canonicalWaveform(cfg)
	if err != nil {
		return nil, err
	}

	dt := cfg.policy.Period(1/rate, cfg.minDT)
	if dt == 0 {
		return nil, fmt.Errorf("%w: %v Hz at dt %v", ErrRateTooHigh, rate, cfg.minDT)
	}

	wTotal := 0.0
	for _, d := range wDurs {
		wTotal += d
	}

	betweenNS := nanos.FromSeconds(dt) - nanos.FromSeconds(wTotal)
	if betweenNS < 0 {
		return nil, fmt.Errorf("%w: period %v, waveform %v", ErrRateExceedsWaveform, dt, wTotal)
	}

	nPulses, err := resolveCount(cfg.nPulses, cfg.pulsesDuration, dt, "pulses")
	if err != nil {
		return nil, err
	}

	amps := append(append([]float64(nil), wAmps...), 0)
	durs := append(append([]float64(nil), wDurs...), nanos.ToSeconds(betweenNS))

	amps, durs = tile(amps, durs, nPulses)

	if cfg.trainRate > 0 {
		amps, durs, err = groupByTrainRate(cfg, amps, durs)
		if err != nil {
			return nil, err
		}
	}

	durs, err = cfg.policy.Durations(durs, amps, cfg.minDT)
	if err != nil {
		return nil, err
	}

	return newTrain(cfg, amps, durs), nil
}

// groupByTrainRate wraps a pulse group with its train-period filler and
// replicates it by the resolved train count. The trailing pulse filler is
// stripped first so the group filler alone spans the remainder of the train
// period.
func groupByTrainRate(cfg config, amps, durs []float64) ([]float64, []float64, error) {
	amps = amps[:len(amps)-1]
	durs = durs[:len(durs)-1]

	trainDT := cfg.policy.Period(1/cfg.trainRate, cfg.minDT)
	if trainDT == 0 {
		return nil, nil, fmt.Errorf("%w: %v Hz at dt %v", ErrTrainRateTooHigh, cfg.trainRate, cfg.minDT)
	}

	var groupNS int64
	for _, d := range durs {
		groupNS += nanos.FromSeconds(d)
	}

	betweenNS := nanos.FromSeconds(trainDT) - groupNS
	if betweenNS < 0 {
		return nil, nil, fmt.Errorf("%w: period %v, group %v",
			ErrTrainRateTooHigh, trainDT, nanos.ToSeconds(groupNS))
	}

	amps = append(amps, 0)
	durs = append(durs, nanos.ToSeconds(betweenNS))

	nTrains, err := resolveCount(cfg.nTrains, cfg.trainsDuration, trainDT, "trains")
	if err != nil {
		return nil, nil, err
	}

	amps, durs = tile(amps, durs, nTrains)

	return amps, durs, nil
}

// resolveCount picks an explicit count, derives one from a total duration,
// or defaults to 1. The division runs on integer nanoseconds so a period
// carrying float fuzz from quantization cannot undercount.
func resolveCount(explicit int, totalDuration, period float64, what string) (int, error) {
	if explicit > 0 {
		return explicit, nil
	}

	if totalDuration > 0 {
		n := int(nanos.FromSeconds(totalDuration) / nanos.FromSeconds(period))
		if n < 1 {
			return 0, fmt.Errorf("train: %s duration %v shorter than period %v", what, totalDuration, period)
		}

		return n, nil
	}

	return 1, nil
}

// tile replicates the amplitude/duration unit n times.
func tile(amps, durs []float64, n int) ([]float64, []float64) {
	if n <= 1 {
		return amps, durs
	}

	outAmps := make([]float64, 0, len(amps)*n)
	outDurs := make([]float64, 0, len(durs)*n)
	for range n {
		outAmps = append(outAmps, amps...)
		outDurs = append(outDurs, durs...)
	}

	return outAmps, outDurs
}

// canonicalWaveform validates the configured template and converts it into
// canonical amplitude units and grid-quantized second durations.
func canonicalWaveform(cfg config) ([]float64, []float64, error) {
	w := cfg.wave
	if err := w.Validate(); err != nil {
		return nil, nil, err
	}

	amps, err := units.ConvertAmplitudes(w.Amplitudes, w.AmplitudeUnit, cfg.kind)
	if err != nil {
		return nil, nil, err
	}

	durs, err := units.ConvertDurations(w.Durations, w.DurationUnit)
	if err != nil {
		return nil, nil, err
	}

	durs, err = cfg.policy.Durations(durs, amps, cfg.minDT)
	if err != nil {
		return nil, nil, err
	}

	return amps, durs, nil
}
