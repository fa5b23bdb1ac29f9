package sample

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-stim/stim/train"
	"github.com/cwbudde/algo-stim/stim/units"
)

func buildTrain(t *testing.T, amps, durs []float64, opts ...train.Option) *train.Train {
	t.Helper()

	tr, err := train.FromArrays(amps, durs, opts...)
	if err != nil {
		t.Fatalf("FromArrays() error = %v", err)
	}

	return tr
}

func TestDTForDurations(t *testing.T) {
	tests := []struct {
		name      string
		durations []float64
		expected  float64
	}{
		{name: "spec_case", durations: []float64{0.0001, 0.0004, 0.00015}, expected: 0.00005},
		{name: "uniform", durations: []float64{0.001, 0.001}, expected: 0.001},
		{name: "with_zero", durations: []float64{0, 0.0002}, expected: 0.0002},
		{name: "empty", durations: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DTForDurations(tt.durations)
			if math.Abs(got-tt.expected) > 1e-15 {
				t.Fatalf("DTForDurations(%v) = %v, want %v", tt.durations, got, tt.expected)
			}
		})
	}
}

func TestValuesExplicitDT(t *testing.T) {
	tr := buildTrain(t, []float64{1, -1, 0}, []float64{100e-6, 100e-6, 200e-6})

	res, err := Values(tr, 100e-6)
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}

	want := []float64{1, -1, 0, 0}
	if !floats.Equal(res.Samples, want) {
		t.Fatalf("Samples = %v, want %v", res.Samples, want)
	}
	if res.DT != 100e-6 {
		t.Fatalf("DT = %v, want 100µs", res.DT)
	}
	if res.Times != nil {
		t.Fatal("Times should be nil without WithTimes")
	}
}

func TestValuesAutoDT(t *testing.T) {
	tr := buildTrain(t, []float64{1, 0}, []float64{100e-6, 400e-6})

	res, err := Values(tr, AutoDT)
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}

	if math.Abs(res.DT-100e-6) > 1e-15 {
		t.Fatalf("inferred DT = %v, want 100µs", res.DT)
	}
	if len(res.Samples) != 5 {
		t.Fatalf("len(Samples) = %d, want 5", len(res.Samples))
	}
}

func TestValuesTimes(t *testing.T) {
	tr := buildTrain(t, []float64{2}, []float64{60e-6})

	res, err := Values(tr, 20e-6, WithTimes())
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}

	wantTimes := []float64{0, 20e-6, 40e-6}
	if !floats.EqualApprox(res.Times, wantTimes, 1e-15) {
		t.Fatalf("Times = %v, want %v", res.Times, wantTimes)
	}
}

func TestValuesOutputUnit(t *testing.T) {
	tr := buildTrain(t, []float64{1500}, []float64{100e-6})

	res, err := Values(tr, 100e-6, WithCurrentUnit("mA"))
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if res.Samples[0] != 1.5 {
		t.Fatalf("Samples[0] = %v, want 1.5 mA", res.Samples[0])
	}
}

func TestValuesOutputUnitFamily(t *testing.T) {
	tr := buildTrain(t, []float64{1}, []float64{100e-6})

	_, err := Values(tr, 100e-6, WithVoltageUnit("mV"))
	if !errors.Is(err, units.ErrFamilyMismatch) {
		t.Fatalf("Values() error = %v, want ErrFamilyMismatch", err)
	}
}

func TestValuesDTNotCompatible(t *testing.T) {
	tr := buildTrain(t, []float64{1, 0}, []float64{100e-6, 400e-6})

	tests := []struct {
		name string
		dt   float64
	}{
		{name: "not_min_step_multiple", dt: 30e-6},
		{name: "does_not_divide_durations", dt: 300e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Values(tr, tt.dt); !errors.Is(err, ErrDTNotCompatible) {
				t.Fatalf("Values(dt=%v) error = %v, want ErrDTNotCompatible", tt.dt, err)
			}
		})
	}
}

func TestValuesEmptyTrainAuto(t *testing.T) {
	tr := buildTrain(t, nil, nil)

	if _, err := Values(tr, AutoDT); !errors.Is(err, ErrDTNotCompatible) {
		t.Fatalf("Values() error = %v, want ErrDTNotCompatible", err)
	}
}

func TestValuesNoPrecisionFalseNegative(t *testing.T) {
	// 0.1 s is not exactly representable in binary; the integer nanosecond
	// check must still accept it as a multiple of 20 µs.
	tr := buildTrain(t, []float64{1}, []float64{0.1})

	res, err := Values(tr, 0.01)
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if len(res.Samples) != 10 {
		t.Fatalf("len(Samples) = %d, want 10", len(res.Samples))
	}
}
