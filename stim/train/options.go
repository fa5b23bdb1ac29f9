package train

import (
	"github.com/cwbudde/algo-stim/stim/quantize"
	"github.com/cwbudde/algo-stim/stim/units"
	"github.com/cwbudde/algo-stim/stim/waveform"
)

// DefaultMinTimeDT is the minimum realizable time step assumed when none is
// configured: 20 µs.
const DefaultMinTimeDT = 20e-6

// Option configures a train builder.
type Option func(*config)

type config struct {
	policy     *quantize.Policy
	kind       units.Family
	minDT      float64
	wave       waveform.Template
	waveSet    bool
	ampUnit    string
	ampUnitSet bool
	durUnit    string

	nPulses        int
	pulsesDuration float64
	trainRate      float64
	nTrains        int
	trainsDuration float64
}

func defaultConfig() config {
	return config{
		policy:  quantize.DefaultPolicy(),
		kind:    units.Current,
		minDT:   DefaultMinTimeDT,
		wave:    waveform.Default(),
		durUnit: units.CanonicalDuration,
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.ampUnitSet {
		switch cfg.kind {
		case units.Voltage:
			cfg.ampUnit = units.CanonicalVoltage
		default:
			cfg.ampUnit = units.CanonicalCurrent
		}
	}

	// The default template declares current units; for a voltage train it
	// follows the train's family instead.
	if !cfg.waveSet && cfg.kind == units.Voltage {
		cfg.wave.AmplitudeUnit = units.CanonicalVoltage
	}

	return cfg
}

// WithRoundingPolicy sets the quantization policy owned by the train.
func WithRoundingPolicy(p *quantize.Policy) Option {
	return func(cfg *config) {
		if p != nil {
			cfg.policy = p.Clone()
		}
	}
}

// WithCurrentOutput declares the train as a current stimulus (canonical µA).
// This is the default.
func WithCurrentOutput() Option {
	return func(cfg *config) {
		cfg.kind = units.Current
	}
}

// WithVoltageOutput declares the train as a voltage stimulus (canonical mV).
func WithVoltageOutput() Option {
	return func(cfg *config) {
		cfg.kind = units.Voltage
	}
}

// WithMinTimeDT sets the minimum realizable hardware time step in seconds.
// The step is fixed at construction and immutable afterward.
func WithMinTimeDT(dt float64) Option {
	return func(cfg *config) {
		if dt > 0 {
			cfg.minDT = dt
		}
	}
}

// WithAmplitudeUnit sets the unit of the supplied amplitude values.
func WithAmplitudeUnit(unit string) Option {
	return func(cfg *config) {
		if unit != "" {
			cfg.ampUnit = unit
			cfg.ampUnitSet = true
		}
	}
}

// WithDurationUnit sets the unit of the supplied duration values.
func WithDurationUnit(unit string) Option {
	return func(cfg *config) {
		if unit != "" {
			cfg.durUnit = unit
		}
	}
}

// WithWaveform sets the waveform template placed at each pulse onset.
func WithWaveform(w waveform.Template) Option {
	return func(cfg *config) {
		cfg.wave = w.Clone()
		cfg.waveSet = true
	}
}

// WithPulseCount sets an explicit number of pulses for FixedRate.
func WithPulseCount(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.nPulses = n
		}
	}
}

// WithPulsesDuration derives the FixedRate pulse count from a total duration
// when no explicit count is given.
func WithPulsesDuration(d float64) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.pulsesDuration = d
		}
	}
}

// WithTrainRate groups the pulses of FixedRate into bursts repeated at the
// given train rate in Hz.
func WithTrainRate(rate float64) Option {
	return func(cfg *config) {
		if rate > 0 {
			cfg.trainRate = rate
		}
	}
}

// WithTrainCount sets an explicit number of pulse groups for FixedRate.
func WithTrainCount(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.nTrains = n
		}
	}
}

// WithTrainsDuration derives the FixedRate group count from a total duration
// when no explicit count is given.
func WithTrainsDuration(d float64) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.trainsDuration = d
		}
	}
}
