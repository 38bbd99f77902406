// Package qnm computes quasinormal-mode (QNM) frequencies and damping
// times of Kerr black holes by interpolating tabulated spin samples.
//
// A perturbed Kerr black hole rings down through a discrete spectrum of
// damped oscillations, indexed by the angular numbers (l, m) and the
// overtone number n (n = 0 is the longest-lived, fundamental mode).
// Each mode has a dimensionless complex angular frequency omega that
// depends only on the dimensionless spin a/M. This package bundles
// per-l tables of omega(spin) samples and evaluates a cubic-spline
// interpolant through them.
//
// # Usage
//
// The package-level functions share one process-wide cache:
//
//	omega, _ := qnm.Omega(0.7, 2, 2, 0)       // dimensionless complex
//	f, _ := qnm.Frequency(65, 0.7, 2, 2, 0)   // Hz, mass in solar masses
//	tau, _ := qnm.DampingTime(65, 0.7, 2, 2, 0) // seconds
//
// Construct a [Cache] directly to keep interpolants isolated, e.g. one
// per test:
//
//	c := qnm.NewCache()
//	omega, err := c.Omega(0.7, 2, 2, 0)
//
// Spins are limited to |spin| <= [MaxSpin], the extent of the bundled
// tables. Requests outside that range return a [SpinRangeError];
// modes with no bundled data return a [ModeError].
//
// Sign conventions follow Berti, Cardoso & Will (arXiv:gr-qc/0512160):
// the imaginary part of omega is negative for a decaying mode, so
// [Cache.DampingTime] negates it to report a positive time constant.
// For m < 0 both parts of omega are negated, and for m == 0 the
// absolute spin is used (the mode cannot distinguish prograde from
// retrograde).
package qnm
