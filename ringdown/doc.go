// Package ringdown synthesizes time-domain ringdown signals from Kerr
// quasinormal-mode frequencies and provides basic spectral analysis of
// the result.
//
// A ringdown is a sum of exponentially damped sinusoids, one per
// excited mode:
//
//	h(t) = sum_k A_k * exp(-t/tau_k) * cos(2*pi*f_k*t + phi_k)
//
// with f_k and tau_k taken from the qnm package for the remnant's mass
// and spin.
//
// # Usage
//
//	cfg := ringdown.Config{Mass: 65, Spin: 0.7, SampleRate: 4096, Duration: 1}
//	h, _ := ringdown.Waveform(cfg, []ringdown.Mode{
//	    {L: 2, M: 2, N: 0, Amplitude: 1},
//	    {L: 3, M: 3, N: 0, Amplitude: 0.3},
//	})
//	spec, _ := ringdown.Spectrum(h)
package ringdown
