package train

// SyncOption configures SyncSignal derivation.
type SyncOption func(*syncConfig)

type syncConfig struct {
	amplitude float64
	simplify  bool
}

// WithSyncAmplitude sets the amplitude assigned to active spans of the sync
// signal. The default is 1.
func WithSyncAmplitude(amplitude float64) SyncOption {
	return func(cfg *syncConfig) {
		cfg.amplitude = amplitude
	}
}

// WithRawSync keeps the segment structure of the source train instead of
// simplifying the derived signal.
func WithRawSync() SyncOption {
	return func(cfg *syncConfig) {
		cfg.simplify = false
	}
}

// SyncSignal derives a binary-style auxiliary train marking where the source
// train is nonzero: rectify, merge adjacent active spans, then set every
// nonzero amplitude to the sync amplitude. The result inherits the source's
// output family, time step and policy; the source is not modified.
func (t *Train) SyncSignal(opts ...SyncOption) *Train {
	cfg := syncConfig{amplitude: 1, simplify: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	c := t.Clone()
	c.AbsInPlace()

	if cfg.simplify {
		c.SimplifyInPlace()
	}

	for i, a := range c.amps {
		if a != 0 {
			c.amps[i] = cfg.amplitude
		}
	}

	return c
}
