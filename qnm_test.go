package qnm

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-qnm/table"
)

func TestOmegaFinite(t *testing.T) {
	c := NewCache()
	modes, err := table.Modes()
	if err != nil {
		t.Fatalf("table.Modes: %v", err)
	}
	for _, id := range modes {
		for _, spin := range []float64{-MaxSpin, -0.9, -0.3, 0, 0.3, 0.9, MaxSpin} {
			omega, err := c.Omega(spin, id.L, id.M, id.N)
			if err != nil {
				t.Fatalf("Omega(%v, %d, %d, %d): %v", spin, id.L, id.M, id.N, err)
			}
			if cmplx.IsNaN(omega) || cmplx.IsInf(omega) {
				t.Fatalf("Omega(%v, %d, %d, %d) = %v", spin, id.L, id.M, id.N, omega)
			}
		}
	}
}

func TestOmegaKnotExactness(t *testing.T) {
	c := NewCache()
	spins, re, err := table.Samples(table.Real, 2, 2, 0)
	if err != nil {
		t.Fatalf("table.Samples: %v", err)
	}
	_, im, err := table.Samples(table.Imaginary, 2, 2, 0)
	if err != nil {
		t.Fatalf("table.Samples: %v", err)
	}
	for i, spin := range spins {
		omega, err := c.Omega(spin, 2, 2, 0)
		if err != nil {
			t.Fatalf("Omega(%v): %v", spin, err)
		}
		if relDiff(real(omega), re[i]) > 1e-9 {
			t.Fatalf("Re Omega(%v) = %v, want knot value %v", spin, real(omega), re[i])
		}
		if relDiff(imag(omega), im[i]) > 1e-9 {
			t.Fatalf("Im Omega(%v) = %v, want knot value %v", spin, imag(omega), im[i])
		}
	}
}

func relDiff(a, b float64) float64 {
	if b == 0 {
		return math.Abs(a)
	}
	return math.Abs(a-b) / math.Abs(b)
}

func TestOmegaSpinBoundary(t *testing.T) {
	c := NewCache()
	if _, err := c.Omega(0.9997, 2, 2, 0); err != nil {
		t.Fatalf("Omega(0.9997) failed: %v", err)
	}
	if _, err := c.Omega(-0.9997, 2, 2, 0); err != nil {
		t.Fatalf("Omega(-0.9997) failed: %v", err)
	}

	var spinErr *SpinRangeError
	_, err := c.Omega(0.9998, 2, 2, 0)
	if !errors.As(err, &spinErr) {
		t.Fatalf("Omega(0.9998) err = %v, want SpinRangeError", err)
	}
	if spinErr.Spin != 0.9998 {
		t.Fatalf("SpinRangeError.Spin = %v, want 0.9998", spinErr.Spin)
	}
	if _, err := c.Omega(-0.9998, 2, 2, 0); !errors.As(err, &spinErr) {
		t.Fatalf("Omega(-0.9998) err = %v, want SpinRangeError", err)
	}
}

func TestOmegaUnsupportedMode(t *testing.T) {
	c := NewCache()
	var modeErr *ModeError
	_, err := c.Omega(0.1, 99, 99, 0)
	if !errors.As(err, &modeErr) {
		t.Fatalf("err = %v, want ModeError", err)
	}
	if modeErr.L != 99 || modeErr.M != 99 || modeErr.N != 0 {
		t.Fatalf("ModeError carries %d,%d,%d, want 99,99,0", modeErr.L, modeErr.M, modeErr.N)
	}
	if !errors.Is(err, table.ErrModeNotFound) {
		t.Fatalf("ModeError does not wrap table.ErrModeNotFound: %v", err)
	}
}

func TestOmegaNegativeMSymmetry(t *testing.T) {
	c := NewCache()
	for _, spin := range []float64{-0.9, -0.3, 0, 0.5, 0.9} {
		pos, err := c.Omega(spin, 2, 2, 0)
		if err != nil {
			t.Fatalf("Omega(m=2): %v", err)
		}
		neg, err := c.Omega(spin, 2, -2, 0)
		if err != nil {
			t.Fatalf("Omega(m=-2): %v", err)
		}
		if real(neg) != -real(pos) || imag(neg) != -imag(pos) {
			t.Fatalf("spin %v: Omega(m=-2) = %v, want %v", spin, neg, -pos)
		}
	}
}

func TestOmegaZeroMSpinSymmetry(t *testing.T) {
	c := NewCache()
	for _, spin := range []float64{0.1, 0.55, 0.9997} {
		plus, err := c.Omega(spin, 2, 0, 0)
		if err != nil {
			t.Fatalf("Omega(+%v): %v", spin, err)
		}
		minus, err := c.Omega(-spin, 2, 0, 0)
		if err != nil {
			t.Fatalf("Omega(-%v): %v", spin, err)
		}
		if plus != minus {
			t.Fatalf("m=0 spin symmetry broken: Omega(%v) = %v, Omega(%v) = %v",
				spin, plus, -spin, minus)
		}
	}
}

func TestCacheIdempotence(t *testing.T) {
	c := NewCache()
	first, err := c.Omega(0.3, 2, 2, 0)
	if err != nil {
		t.Fatalf("first Omega: %v", err)
	}
	c.mu.RLock()
	inserts := c.inserts
	c.mu.RUnlock()
	if inserts != 2 {
		t.Fatalf("inserts = %d after first call, want 2 (re + im)", inserts)
	}

	second, err := c.Omega(0.3, 2, 2, 0)
	if err != nil {
		t.Fatalf("second Omega: %v", err)
	}
	c.mu.RLock()
	again := c.inserts
	c.mu.RUnlock()
	if again != inserts {
		t.Fatalf("inserts grew from %d to %d on repeat lookup", inserts, again)
	}
	if first != second {
		t.Fatalf("repeat lookup not bitwise identical: %v != %v", first, second)
	}

	// The +-m and frequency/damping paths share the |m| key.
	if _, err := c.Omega(0.3, 2, -2, 0); err != nil {
		t.Fatalf("Omega(m=-2): %v", err)
	}
	if _, err := c.Frequency(1, 0.3, 2, 2, 0); err != nil {
		t.Fatalf("Frequency: %v", err)
	}
	if _, err := c.DampingTime(1, 0.3, 2, 2, 0); err != nil {
		t.Fatalf("DampingTime: %v", err)
	}
	c.mu.RLock()
	final := c.inserts
	c.mu.RUnlock()
	if final != inserts {
		t.Fatalf("inserts grew from %d to %d across shared-key lookups", inserts, final)
	}
}

func TestFrequencySignRule(t *testing.T) {
	c := NewCache()
	pos, err := c.Frequency(1, 0.3, 2, 2, 0)
	if err != nil {
		t.Fatalf("Frequency(m=2): %v", err)
	}
	if pos <= 0 {
		t.Fatalf("Frequency(m=2) = %v, want positive", pos)
	}
	neg, err := c.Frequency(1, 0.3, 2, -2, 0)
	if err != nil {
		t.Fatalf("Frequency(m=-2): %v", err)
	}
	if neg != -pos {
		t.Fatalf("Frequency(m=-2) = %v, want %v", neg, -pos)
	}
}

func TestFrequencyScalesInverselyWithMass(t *testing.T) {
	c := NewCache()
	f1, err := c.Frequency(10, 0.5, 2, 2, 0)
	if err != nil {
		t.Fatalf("Frequency(10): %v", err)
	}
	f2, err := c.Frequency(20, 0.5, 2, 2, 0)
	if err != nil {
		t.Fatalf("Frequency(20): %v", err)
	}
	if relDiff(f1, 2*f2) > 1e-12 {
		t.Fatalf("f(10) = %v, f(20) = %v, want factor 2", f1, f2)
	}
}

func TestDampingTimeFundamental(t *testing.T) {
	c := NewCache()
	tau, err := c.DampingTime(1, 0, 2, 2, 0)
	if err != nil {
		t.Fatalf("DampingTime: %v", err)
	}
	// Schwarzschild 220 for one solar mass: tens of microseconds.
	if tau <= 1e-5 || tau >= 1e-4 {
		t.Fatalf("DampingTime(1, 0, 2, 2, 0) = %v, want within (1e-5, 1e-4)", tau)
	}
}

func TestDampingTimePositiveForNegativeM(t *testing.T) {
	// The m<0 sign rule applies to omega, not to the damping time.
	c := NewCache()
	pos, err := c.DampingTime(1, 0.3, 2, 2, 0)
	if err != nil {
		t.Fatalf("DampingTime(m=2): %v", err)
	}
	neg, err := c.DampingTime(1, 0.3, 2, -2, 0)
	if err != nil {
		t.Fatalf("DampingTime(m=-2): %v", err)
	}
	if neg != pos {
		t.Fatalf("DampingTime(m=-2) = %v, want %v", neg, pos)
	}
	if neg <= 0 {
		t.Fatalf("DampingTime(m=-2) = %v, want positive", neg)
	}
}

func TestMassGuard(t *testing.T) {
	c := NewCache()
	var massErr *MassError
	if _, err := c.Frequency(0, 0.3, 2, 2, 0); !errors.As(err, &massErr) {
		t.Fatalf("Frequency(mass=0) err = %v, want MassError", err)
	}
	if _, err := c.DampingTime(-1, 0.3, 2, 2, 0); !errors.As(err, &massErr) {
		t.Fatalf("DampingTime(mass=-1) err = %v, want MassError", err)
	}
	if massErr.Mass != -1 {
		t.Fatalf("MassError.Mass = %v, want -1", massErr.Mass)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	omega, err := Omega(0.2, 2, 2, 0)
	if err != nil {
		t.Fatalf("Omega: %v", err)
	}
	f, err := Frequency(1, 0.2, 2, 2, 0)
	if err != nil {
		t.Fatalf("Frequency: %v", err)
	}
	want := real(omega) / (2 * math.Pi * MTSun)
	if relDiff(f, want) > 1e-12 {
		t.Fatalf("Frequency = %v, want %v from Omega", f, want)
	}
	tau, err := DampingTime(1, 0.2, 2, 2, 0)
	if err != nil {
		t.Fatalf("DampingTime: %v", err)
	}
	if tau <= 0 {
		t.Fatalf("DampingTime = %v, want positive", tau)
	}
}

func TestCacheConcurrentUse(t *testing.T) {
	c := NewCache()
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for _, spin := range []float64{-0.5, 0, 0.5} {
				if _, err := c.Omega(spin, 3, 3, 0); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent Omega: %v", err)
		}
	}
}
