package ringdown

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-qnm"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by ringdown functions.
var (
	ErrInvalidSampleRate = errors.New("ringdown: sample rate must be positive")
	ErrInvalidDuration   = errors.New("ringdown: duration must be positive")
	ErrNoModes           = errors.New("ringdown: at least one mode is required")
	ErrEmptySignal       = errors.New("ringdown: signal is empty")
)

// Mode selects one quasinormal mode and its excitation.
type Mode struct {
	L, M, N   int
	Amplitude float64
	Phase     float64 // radians
}

// Config holds the remnant parameters and sampling grid.
type Config struct {
	Mass       float64 // solar masses
	Spin       float64 // dimensionless, |spin| <= qnm.MaxSpin
	SampleRate float64 // Hz
	Duration   float64 // seconds
}

// Waveform synthesizes the ringdown signal for the given modes,
// starting at t = 0. Mode frequencies and damping times come from the
// qnm tables; invalid mass, spin or mode indices surface as the qnm
// package's typed errors.
func Waveform(cfg Config, modes []Mode) ([]float64, error) {
	if cfg.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if cfg.Duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if len(modes) == 0 {
		return nil, ErrNoModes
	}

	length := int(cfg.Duration * cfg.SampleRate)
	if length < 1 {
		length = 1
	}
	out := make([]float64, length)
	buf := make([]float64, length)
	scaled := make([]float64, length)

	for _, md := range modes {
		f, err := qnm.Frequency(cfg.Mass, cfg.Spin, md.L, md.M, md.N)
		if err != nil {
			return nil, err
		}
		tau, err := qnm.DampingTime(cfg.Mass, cfg.Spin, md.L, md.M, md.N)
		if err != nil {
			return nil, err
		}

		w := 2 * math.Pi * f
		for i := range buf {
			t := float64(i) / cfg.SampleRate
			buf[i] = math.Exp(-t/tau) * math.Cos(w*t+md.Phase)
		}
		vecmath.ScaleBlock(scaled, buf, md.Amplitude)
		vecmath.AddBlockInPlace(out, scaled)
	}

	return out, nil
}

// Spectrum returns the one-sided complex spectrum of h, zero-padded to
// the next power of two. The returned slice has fftSize/2+1 bins.
func Spectrum(h []float64) ([]complex128, error) {
	if len(h) == 0 {
		return nil, ErrEmptySignal
	}

	fftSize := nextPowerOf2(len(h))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("ringdown: creating FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range h {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("ringdown: forward FFT: %w", err)
	}

	return out[:fftSize/2+1], nil
}

// PeakFrequency returns the frequency of the strongest spectral bin of
// h. Resolution is sampleRate/fftSize; for short or heavily damped
// signals the peak sits slightly below the mode frequency.
func PeakFrequency(h []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}
	spec, err := Spectrum(h)
	if err != nil {
		return 0, err
	}

	re := make([]float64, len(spec))
	im := make([]float64, len(spec))
	for i, c := range spec {
		re[i] = real(c)
		im[i] = imag(c)
	}
	mag := make([]float64, len(spec))
	vecmath.Magnitude(mag, re, im)

	best := 0
	for i, v := range mag {
		if v > mag[best] {
			best = i
		}
	}

	fftSize := (len(spec) - 1) * 2
	return float64(best) * sampleRate / float64(fftSize), nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
