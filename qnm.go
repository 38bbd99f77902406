package qnm

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-qnm/spline"
	"github.com/cwbudde/algo-qnm/table"
)

const (
	// MaxSpin is the largest dimensionless spin magnitude covered by
	// the bundled mode tables.
	MaxSpin = 0.9997

	// MTSun is one solar mass expressed in seconds (geometric units).
	MTSun = 4.925491025543576e-06
)

// modeKey identifies one cached interpolant family. mAbs always holds
// |m|; the same spline serves both signs of m.
type modeKey struct {
	l, mAbs, n int
}

// newModeKey is the only place the |m| normalization happens.
func newModeKey(l, m, n int) modeKey {
	if m < 0 {
		m = -m
	}
	return modeKey{l: l, mAbs: m, n: n}
}

// Cache memoizes the real-part and imaginary-part spline interpolants
// per mode. Entries are built lazily on first use and never evicted;
// the universe of bundled modes is small. A Cache is safe for
// concurrent use. Interpolants are immutable once stored, so a racing
// duplicate build costs a discarded spline, nothing more.
type Cache struct {
	mu sync.RWMutex
	re map[modeKey]*spline.Spline
	im map[modeKey]*spline.Spline

	// inserts counts cache populations, for tests.
	inserts int
}

// NewCache returns an empty interpolant cache.
func NewCache() *Cache {
	return &Cache{
		re: make(map[modeKey]*spline.Spline),
		im: make(map[modeKey]*spline.Spline),
	}
}

// lookup returns the cached spline for one omega component of mode
// (l, m, n), building and storing it on first use.
func (c *Cache) lookup(comp table.Component, l, m, n int) (*spline.Spline, error) {
	cache := c.re
	if comp == table.Imaginary {
		cache = c.im
	}
	key := newModeKey(l, m, n)

	c.mu.RLock()
	s, ok := cache[key]
	c.mu.RUnlock()
	if ok {
		return s, nil
	}

	spins, omega, err := table.Samples(comp, l, m, n)
	if err != nil {
		return nil, &ModeError{L: l, M: m, N: n, err: err}
	}
	s, err = spline.New(spins, omega)
	if err != nil {
		return nil, fmt.Errorf("qnm: building spline for lmn=%d%d%d: %w", l, m, n, err)
	}

	c.mu.Lock()
	if prev, ok := cache[key]; ok {
		// Lost a racing build; keep the stored one.
		s = prev
	} else {
		cache[key] = s
		c.inserts++
	}
	c.mu.Unlock()

	return s, nil
}

// effectiveSpin applies the m-symmetry rules: m == 0 collapses the
// spin sign, m < 0 negates the evaluated omega.
func effectiveSpin(spin float64, m int) (eff, sign float64) {
	eff, sign = spin, 1.0
	if m == 0 {
		eff = math.Abs(spin)
	}
	if m < 0 {
		sign = -1.0
	}
	return eff, sign
}

func checkSpin(spin float64) error {
	if math.Abs(spin) > MaxSpin {
		return &SpinRangeError{Spin: spin}
	}
	return nil
}

// Omega returns the dimensionless complex angular frequency of the
// (l, m, n) mode at the given spin.
func (c *Cache) Omega(spin float64, l, m, n int) (complex128, error) {
	if err := checkSpin(spin); err != nil {
		return 0, err
	}
	re, err := c.lookup(table.Real, l, m, n)
	if err != nil {
		return 0, err
	}
	im, err := c.lookup(table.Imaginary, l, m, n)
	if err != nil {
		return 0, err
	}
	eff, sign := effectiveSpin(spin, m)
	return complex(sign*re.Eval(eff), sign*im.Eval(eff)), nil
}

// Frequency returns the oscillation frequency in Hz of the (l, m, n)
// mode for a black hole of the given mass (solar masses) and spin.
func (c *Cache) Frequency(mass, spin float64, l, m, n int) (float64, error) {
	if err := checkSpin(spin); err != nil {
		return 0, err
	}
	if mass <= 0 {
		return 0, &MassError{Mass: mass}
	}
	re, err := c.lookup(table.Real, l, m, n)
	if err != nil {
		return 0, err
	}
	eff, sign := effectiveSpin(spin, m)
	return sign * re.Eval(eff) / (2 * math.Pi * mass * MTSun), nil
}

// DampingTime returns the e-folding time in seconds of the (l, m, n)
// mode for a black hole of the given mass (solar masses) and spin.
// The tabulated Im(omega) is negative for a decaying mode, so the
// result is positive. The m < 0 sign rule does not apply here.
func (c *Cache) DampingTime(mass, spin float64, l, m, n int) (float64, error) {
	if err := checkSpin(spin); err != nil {
		return 0, err
	}
	if mass <= 0 {
		return 0, &MassError{Mass: mass}
	}
	im, err := c.lookup(table.Imaginary, l, m, n)
	if err != nil {
		return 0, err
	}
	eff, _ := effectiveSpin(spin, m)
	return -mass * MTSun / im.Eval(eff), nil
}

// defaultCache backs the package-level functions.
var defaultCache = NewCache()

// Omega returns the dimensionless complex angular frequency of the
// (l, m, n) mode at the given spin, using a shared process-wide cache.
func Omega(spin float64, l, m, n int) (complex128, error) {
	return defaultCache.Omega(spin, l, m, n)
}

// Frequency returns the oscillation frequency in Hz of the (l, m, n)
// mode, using a shared process-wide cache.
func Frequency(mass, spin float64, l, m, n int) (float64, error) {
	return defaultCache.Frequency(mass, spin, l, m, n)
}

// DampingTime returns the damping time in seconds of the (l, m, n)
// mode, using a shared process-wide cache.
func DampingTime(mass, spin float64, l, m, n int) (float64, error) {
	return defaultCache.DampingTime(mass, spin, l, m, n)
}
