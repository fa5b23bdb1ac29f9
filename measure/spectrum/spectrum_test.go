package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-stim/stim/sample"
	"github.com/cwbudde/algo-stim/stim/train"
)

func TestAnalyzeSamplesDC(t *testing.T) {
	samples := []float64{1, 1, 1, 1}

	res, err := AnalyzeSamples(samples, 20e-6, Config{})
	if err != nil {
		t.Fatalf("AnalyzeSamples() error = %v", err)
	}

	if len(res.Magnitudes) != 3 {
		t.Fatalf("len(Magnitudes) = %d, want 3", len(res.Magnitudes))
	}
	if math.Abs(res.Magnitudes[0]-4) > 1e-9 {
		t.Fatalf("DC magnitude = %v, want 4", res.Magnitudes[0])
	}
	for i := 1; i < len(res.Magnitudes); i++ {
		if res.Magnitudes[i] > 1e-9 {
			t.Fatalf("bin %d magnitude = %v, want ~0 for a constant signal", i, res.Magnitudes[i])
		}
	}

	wantBin := 1 / (20e-6 * 4)
	if math.Abs(res.BinHz-wantBin) > 1e-6 {
		t.Fatalf("BinHz = %v, want %v", res.BinHz, wantBin)
	}
	if res.Frequencies[1] != res.BinHz {
		t.Fatalf("Frequencies[1] = %v, want %v", res.Frequencies[1], res.BinHz)
	}
}

func TestAnalyzeSamplesZeroPadding(t *testing.T) {
	samples := []float64{1, 1, 1}

	res, err := AnalyzeSamples(samples, 20e-6, Config{})
	if err != nil {
		t.Fatalf("AnalyzeSamples() error = %v", err)
	}

	// Padded to the next power of two.
	if len(res.Magnitudes) != 3 {
		t.Fatalf("len(Magnitudes) = %d, want 3 for FFT size 4", len(res.Magnitudes))
	}
	if math.Abs(res.Magnitudes[0]-3) > 1e-9 {
		t.Fatalf("DC magnitude = %v, want 3", res.Magnitudes[0])
	}
}

func TestAnalyzeSamplesErrors(t *testing.T) {
	if _, err := AnalyzeSamples(nil, 20e-6, Config{}); err == nil {
		t.Fatal("empty sample array should fail")
	}
	if _, err := AnalyzeSamples([]float64{1}, 0, Config{}); err == nil {
		t.Fatal("non-positive dt should fail")
	}
	if _, err := AnalyzeSamples([]float64{1, 2, 3}, 20e-6, Config{FFTSize: 2}); err == nil {
		t.Fatal("FFT size below sample count should fail")
	}
}

func TestAnalyzeTrain(t *testing.T) {
	tr, err := train.FromArrays([]float64{1, -1}, []float64{100e-6, 100e-6})
	if err != nil {
		t.Fatalf("FromArrays() error = %v", err)
	}

	res, err := AnalyzeTrain(tr, sample.AutoDT, Config{})
	if err != nil {
		t.Fatalf("AnalyzeTrain() error = %v", err)
	}

	// Two samples of opposite sign: zero DC, energy at Nyquist.
	if math.Abs(res.Magnitudes[0]) > 1e-9 {
		t.Fatalf("DC magnitude = %v, want ~0 for a balanced pulse", res.Magnitudes[0])
	}
	if math.Abs(res.Magnitudes[len(res.Magnitudes)-1]-2) > 1e-9 {
		t.Fatalf("Nyquist magnitude = %v, want 2", res.Magnitudes[len(res.Magnitudes)-1])
	}
}
