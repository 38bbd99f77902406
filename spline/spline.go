// Package spline provides natural cubic spline interpolation through
// tabulated sample points.
//
// The spline passes exactly through every knot and is twice
// continuously differentiable between knots. Outside the knot span the
// boundary segment polynomial is continued, so evaluation never fails,
// but extrapolated values degrade quickly with distance from the
// table.
package spline

import (
	"errors"
	"sort"
)

// Errors returned by New.
var (
	ErrLengthMismatch = errors.New("spline: x and y must have the same length")
	ErrTooFewPoints   = errors.New("spline: need at least two points")
	ErrNotIncreasing  = errors.New("spline: x must be strictly increasing")
)

// Spline is a natural cubic spline. It is immutable after construction
// and safe for concurrent use.
//
// Segment i covers [x[i], x[i+1]] with
//
//	s(t) = y[i] + b[i]*dx + c[i]*dx^2 + d[i]*dx^3, dx = t - x[i].
type Spline struct {
	x, y    []float64
	b, c, d []float64
}

// New builds a natural cubic spline through the points (x[i], y[i]).
// x must be strictly increasing with at least two points. The input
// slices are copied.
func New(x, y []float64) (*Spline, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	n := len(x)
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < n; i++ {
		if !(x[i] > x[i-1]) {
			return nil, ErrNotIncreasing
		}
	}

	s := &Spline{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}

	h := make([]float64, n-1)
	for i := range h {
		h[i] = s.x[i+1] - s.x[i]
	}

	// Natural boundary: c[0] = c[n-1] = 0. Interior second-derivative
	// coefficients come from a tridiagonal solve (Thomas algorithm).
	c := make([]float64, n)
	if n > 2 {
		diag := make([]float64, n)
		mu := make([]float64, n)
		z := make([]float64, n)
		diag[0] = 1
		for i := 1; i < n-1; i++ {
			alpha := 3 * ((s.y[i+1]-s.y[i])/h[i] - (s.y[i]-s.y[i-1])/h[i-1])
			diag[i] = 2*(s.x[i+1]-s.x[i-1]) - h[i-1]*mu[i-1]
			mu[i] = h[i] / diag[i]
			z[i] = (alpha - h[i-1]*z[i-1]) / diag[i]
		}
		for i := n - 2; i >= 1; i-- {
			c[i] = z[i] - mu[i]*c[i+1]
		}
	}

	s.b = make([]float64, n-1)
	s.c = c[:n-1]
	s.d = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		s.b[i] = (s.y[i+1]-s.y[i])/h[i] - h[i]*(2*c[i]+c[i+1])/3
		s.d[i] = (c[i+1] - c[i]) / (3 * h[i])
	}

	return s, nil
}

// Eval returns the spline value at t. At a knot the tabulated value is
// returned exactly. Outside [x[0], x[n-1]] the nearest boundary
// segment is extrapolated.
func (s *Spline) Eval(t float64) float64 {
	n := len(s.x)
	i := sort.SearchFloat64s(s.x, t)
	if i < n && s.x[i] == t {
		return s.y[i]
	}
	if i > 0 {
		i--
	}
	if i > n-2 {
		i = n - 2
	}
	dx := t - s.x[i]
	return s.y[i] + dx*(s.b[i]+dx*(s.c[i]+dx*s.d[i]))
}

// Domain returns the knot span [lo, hi].
func (s *Spline) Domain() (lo, hi float64) {
	return s.x[0], s.x[len(s.x)-1]
}
