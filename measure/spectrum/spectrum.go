// Package spectrum computes the amplitude spectrum of a sampled stimulus
// pulse train for analysis collaborators. The train is materialized through
// sample-and-hold expansion, zero padded to a power-of-two FFT size, and
// transformed with algo-fft.
package spectrum

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-stim/stim/sample"
	"github.com/cwbudde/algo-stim/stim/train"
)

// Config holds spectrum analysis parameters.
type Config struct {
	// FFTSize overrides the transform size. Zero selects the next power of
	// two at or above the sample count.
	FFTSize int
}

// Result holds the one-sided amplitude spectrum.
type Result struct {
	// Magnitudes holds |X[k]| for bins 0..Nyquist.
	Magnitudes []float64
	// Frequencies holds the bin center frequencies in Hz.
	Frequencies []float64
	// BinHz is the frequency spacing between bins.
	BinHz float64
}

// AnalyzeTrain samples the train at dt (sample.AutoDT infers the coarsest
// compatible step) and computes its amplitude spectrum.
func AnalyzeTrain(t *train.Train, dt float64, cfg Config) (Result, error) {
	sampled, err := sample.Values(t, dt)
	if err != nil {
		return Result{}, err
	}

	return AnalyzeSamples(sampled.Samples, sampled.DT, cfg)
}

// AnalyzeSamples computes the one-sided amplitude spectrum of a fixed-step
// sample array with step dt in seconds.
func AnalyzeSamples(samples []float64, dt float64, cfg Config) (Result, error) {
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("spectrum: sample array must not be empty")
	}
	if dt <= 0 {
		return Result{}, fmt.Errorf("spectrum: dt must be > 0: %v", dt)
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(samples))
	}
	if fftSize < len(samples) {
		return Result{}, fmt.Errorf("spectrum: FFT size %d smaller than sample count %d", fftSize, len(samples))
	}

	inData := make([]complex128, fftSize)
	for i, v := range samples {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, err
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	for i := range binCount {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, binCount)
	vecmath.Magnitude(mags, re, im)

	binHz := 1 / (dt * float64(fftSize))
	freqs := make([]float64, binCount)
	for i := range freqs {
		freqs[i] = float64(i) * binHz
	}

	return Result{Magnitudes: mags, Frequencies: freqs, BinHz: binHz}, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
