// SPDX-License-Identifier: MIT
package integrand

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvquad/quadrature"
)

// Sentinel errors.
var (
	// ErrUnknownProblem indicates a name missing from the catalogue.
	ErrUnknownProblem = errors.New("integrand: unknown problem")

	// ErrBadPulse indicates a pulse whose width or amplitude is not
	// positive and finite.
	ErrBadPulse = errors.New("integrand: pulse width and amplitude must be positive and finite")
)

// DefaultSpikeWidth is the half-width ε used by Lookup("spike").
const DefaultSpikeWidth = 1e-3

// Problem bundles an integrand with its interval and exact integral.
type Problem struct {
	Name     string
	Title    string
	F        quadrature.Integrand
	Interval quadrature.Interval
	Exact    float64
}

// Sine returns ∫_0^π sin(x) dx = 2.
func Sine() Problem {
	return Problem{
		Name:     "sine",
		Title:    "sin(x) on [0, π]",
		F:        math.Sin,
		Interval: quadrature.Interval{A: 0, B: math.Pi},
		Exact:    2,
	}
}

// Spike returns the unit top-hat of half-width eps centred at 0.5 on [0, 1]:
// f(x) = 1 when |x-0.5| < eps, else 0. Exact value 2·eps.
func Spike(eps float64) (Problem, error) {
	if !(eps > 0 && eps < 0.5) {
		return Problem{}, fmt.Errorf("integrand: spike half-width %v not in (0, 0.5): %w", eps, ErrBadPulse)
	}
	p, err := Pulse(quadrature.Interval{A: 0, B: 1}, 0.5, eps, 1)
	if err != nil {
		return Problem{}, err
	}
	p.Name = "spike"
	p.Title = fmt.Sprintf("top-hat spike, ε=%g", eps)

	return p, nil
}

// Pulse returns a rectangular pulse of the given amplitude on
// (center-halfWidth, center+halfWidth), zero elsewhere on iv. The exact
// value is 2·halfWidth·amplitude when the pulse lies inside iv, otherwise
// amplitude times the overlap of the pulse with iv.
func Pulse(iv quadrature.Interval, center, halfWidth, amplitude float64) (Problem, error) {
	if err := iv.Validate(); err != nil {
		return Problem{}, err
	}
	if !(halfWidth > 0) || math.IsInf(halfWidth, 0) || !(amplitude > 0) || math.IsInf(amplitude, 0) ||
		math.IsNaN(center) || math.IsInf(center, 0) {
		return Problem{}, ErrBadPulse
	}

	overlap := 2 * halfWidth
	if lo, hi := center-halfWidth, center+halfWidth; lo < iv.A || hi > iv.B {
		overlap = math.Max(0, math.Min(iv.B, hi)-math.Max(iv.A, lo))
	}

	return Problem{
		Name:  "pulse",
		Title: fmt.Sprintf("pulse at %g, half-width %g", center, halfWidth),
		F: func(x float64) float64 {
			if math.Abs(x-center) < halfWidth {
				return amplitude
			}
			return 0
		},
		Interval: iv,
		Exact:    amplitude * overlap,
	}, nil
}

// Runge returns ∫_{-1}^{1} 1/(1+25x²) dx = (2/5)·atan(5).
func Runge() Problem {
	return Problem{
		Name:     "runge",
		Title:    "1/(1+25x²) on [-1, 1]",
		F:        func(x float64) float64 { return 1 / (1 + 25*x*x) },
		Interval: quadrature.Interval{A: -1, B: 1},
		Exact:    0.4 * math.Atan(5),
	}
}

// Bell returns ∫_{-1}^{1} exp(-x²) dx = √π·erf(1).
func Bell() Problem {
	return Problem{
		Name:     "bell",
		Title:    "exp(-x²) on [-1, 1]",
		F:        func(x float64) float64 { return math.Exp(-x * x) },
		Interval: quadrature.Interval{A: -1, B: 1},
		Exact:    math.Sqrt(math.Pi) * math.Erf(1),
	}
}

// Lookup returns a catalogue problem by name. The spike uses
// DefaultSpikeWidth; call Spike directly for another width.
func Lookup(name string) (Problem, error) {
	switch name {
	case "sine":
		return Sine(), nil
	case "spike":
		return Spike(DefaultSpikeWidth)
	case "runge":
		return Runge(), nil
	case "bell":
		return Bell(), nil
	default:
		return Problem{}, fmt.Errorf("%q: %w", name, ErrUnknownProblem)
	}
}

// Names lists the catalogue in sorted order.
func Names() []string {
	names := []string{"sine", "spike", "runge", "bell"}
	sort.Strings(names)

	return names
}
