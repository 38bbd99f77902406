package qnm

import "fmt"

// ModeError reports a request for a mode with no tabulated data.
type ModeError struct {
	L, M, N int

	err error
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("qnm: unsupported mode lmn=%d%d%d", e.L, e.M, e.N)
}

func (e *ModeError) Unwrap() error { return e.err }

// SpinRangeError reports a spin outside the tabulated domain.
type SpinRangeError struct {
	Spin float64
}

func (e *SpinRangeError) Error() string {
	return fmt.Sprintf("qnm: |spin| must be <= %v, got %v", MaxSpin, e.Spin)
}

// MassError reports a non-positive mass.
type MassError struct {
	Mass float64
}

func (e *MassError) Error() string {
	return fmt.Sprintf("qnm: mass must be positive, got %v", e.Mass)
}
