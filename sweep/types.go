package sweep

import (
	"errors"

	"github.com/katalvlaran/lvquad/legendre"
	"github.com/katalvlaran/lvquad/quadrature"
)

// ErrBadRequest indicates a malformed Request.
var ErrBadRequest = errors.New("sweep: invalid request")

// OddPolicy decides how the harness treats odd Simpson resolutions.
type OddPolicy int

const (
	// OddBump evaluates Simpson at N+1 for odd N and keeps N as the label.
	OddBump OddPolicy = iota

	// OddReject fails the sweep with quadrature.ErrOddSubdivisions.
	OddReject
)

// String returns "bump" or "reject".
func (p OddPolicy) String() string {
	if p == OddReject {
		return "reject"
	}

	return "bump"
}

// Plan is one curve to compute: a method and its resolutions, in order.
type Plan struct {
	Method      quadrature.Method
	Resolutions []int
}

// Request is the full input of a sweep.
type Request struct {
	F        quadrature.Integrand
	Interval quadrature.Interval
	Exact    float64
	Plans    []Plan
}

// Point is one measured resolution.
//
//   - Resolution — the requested value (x-axis label).
//   - Used       — the value actually passed to the rule (differs from
//     Resolution only for odd Simpson requests under OddBump).
//   - Estimate   — the rule's result.
//   - AbsError   — |Estimate - Exact|.
type Point struct {
	Resolution int     `json:"resolution" yaml:"resolution"`
	Used       int     `json:"used" yaml:"used"`
	Estimate   float64 `json:"estimate" yaml:"estimate"`
	AbsError   float64 `json:"abs_error" yaml:"abs_error"`
}

// Curve is the error curve of one method.
type Curve struct {
	Method quadrature.Method `json:"method" yaml:"method"`
	Points []Point           `json:"points" yaml:"points"`
}

// Options tunes a sweep. The zero value is usable.
//
// Fields:
//   - Digits      — Gauss–Legendre decimal precision (0 ⇒ quadrature.DefaultDigits).
//   - OddPolicy   — Simpson odd-N handling (zero ⇒ OddBump).
//   - Provider    — node/weight source shared by the sweep (nil ⇒ new legendre.Cache).
//   - Parallelism — max concurrent integrator calls (≤ 1 ⇒ sequential).
//   - OnPoint     — optional hook called once per point, in request order.
type Options struct {
	Digits      int
	OddPolicy   OddPolicy
	Provider    legendre.Provider
	Parallelism int
	OnPoint     func(m quadrature.Method, p Point)
}

// DefaultOptions returns sequential, 40-digit, OddBump options.
func DefaultOptions() Options {
	return Options{
		Digits:      quadrature.DefaultDigits,
		OddPolicy:   OddBump,
		Parallelism: 1,
	}
}

// DefaultGaussPoints returns the point counts used by the reference sweeps.
func DefaultGaussPoints() []int {
	return []int{2, 4, 6, 8, 10, 12, 16}
}

// Doubling returns start, 2·start, 4·start, ... up to and including stop.
// It returns nil when start < 1 or stop < start. Doubling stops before n
// would exceed stop, so it never overflows.
func Doubling(start, stop int) []int {
	if start < 1 || stop < start {
		return nil
	}
	var out []int
	for n := start; ; n *= 2 {
		out = append(out, n)
		if n > stop/2 {
			break
		}
	}

	return out
}

// ReferencePlans returns one plan per method: Trapezoid and Simpson over
// Doubling(10, maxN), Gauss–Legendre over DefaultGaussPoints.
func ReferencePlans(maxN int) []Plan {
	ns := Doubling(10, maxN)

	return []Plan{
		{Method: quadrature.Trapezoidal, Resolutions: ns},
		{Method: quadrature.SimpsonRule, Resolutions: append([]int(nil), ns...)},
		{Method: quadrature.Gaussian, Resolutions: DefaultGaussPoints()},
	}
}
