package quadrature

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidArgument is the root of every argument error in this package.
var ErrInvalidArgument = errors.New("quadrature: invalid argument")

// Specific argument errors; each wraps ErrInvalidArgument.
var (
	// ErrNilIntegrand indicates a nil Integrand.
	ErrNilIntegrand = fmt.Errorf("%w: nil integrand", ErrInvalidArgument)

	// ErrBadBounds indicates a NaN or infinite interval bound.
	ErrBadBounds = fmt.Errorf("%w: interval bounds must be finite", ErrInvalidArgument)

	// ErrEmptyInterval indicates an interval with A >= B where A < B is required.
	ErrEmptyInterval = fmt.Errorf("%w: interval lower bound must be below upper bound", ErrInvalidArgument)

	// ErrBadSubdivisions indicates a subdivision count below the rule's minimum.
	ErrBadSubdivisions = fmt.Errorf("%w: subdivision count too small", ErrInvalidArgument)

	// ErrOddSubdivisions indicates an odd subdivision count passed to Simpson.
	ErrOddSubdivisions = fmt.Errorf("%w: simpson requires an even subdivision count", ErrInvalidArgument)

	// ErrBadPoints indicates a Gauss–Legendre point count below 1.
	ErrBadPoints = fmt.Errorf("%w: point count must be >= 1", ErrInvalidArgument)

	// ErrBadDigits indicates a Gauss–Legendre precision below 1 digit.
	ErrBadDigits = fmt.Errorf("%w: precision must be >= 1 decimal digit", ErrInvalidArgument)

	// ErrNonFinite indicates an integrand value that is NaN or infinite where
	// the high-precision accumulator needs a finite number.
	ErrNonFinite = fmt.Errorf("%w: integrand returned a non-finite value", ErrInvalidArgument)

	// ErrUnknownMethod indicates an unrecognized Method value or name.
	ErrUnknownMethod = fmt.Errorf("%w: unknown method", ErrInvalidArgument)
)

// Integrand is a deterministic real function, total on the closed interval
// of integration.
type Integrand func(x float64) float64

// Interval is the closed integration range [A, B].
type Interval struct {
	A float64
	B float64
}

// Validate requires finite bounds with A < B.
func (iv Interval) Validate() error {
	if !finite(iv.A) || !finite(iv.B) {
		return ErrBadBounds
	}
	if iv.A >= iv.B {
		return ErrEmptyInterval
	}

	return nil
}

// Width returns B - A.
func (iv Interval) Width() float64 { return iv.B - iv.A }

// Method names one of the quadrature rules.
type Method int

const (
	// Trapezoidal selects Trapezoid; resolution is the subdivision count.
	Trapezoidal Method = iota + 1

	// SimpsonRule selects Simpson; resolution is the (even) subdivision count.
	SimpsonRule

	// Gaussian selects GaussLegendre; resolution is the point count.
	Gaussian
)

// Methods lists every method in canonical order.
func Methods() []Method {
	return []Method{Trapezoidal, SimpsonRule, Gaussian}
}

// String returns the short lower-case name used in configs and reports.
func (m Method) String() string {
	switch m {
	case Trapezoidal:
		return "trapezoid"
	case SimpsonRule:
		return "simpson"
	case Gaussian:
		return "gauss"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Label returns a human-readable name for legends and tables.
func (m Method) Label() string {
	switch m {
	case Trapezoidal:
		return "Trapezoid"
	case SimpsonRule:
		return "Simpson's Rule"
	case Gaussian:
		return "Gauss–Legendre"
	default:
		return m.String()
	}
}

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	return m >= Trapezoidal && m <= Gaussian
}

// ParseMethod accepts a method name (case-insensitive) or a common alias.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trapezoid", "trapezoidal", "trap":
		return Trapezoidal, nil
	case "simpson", "simpsons":
		return SimpsonRule, nil
	case "gauss", "gauss-legendre", "gausslegendre", "legendre":
		return Gaussian, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, ErrUnknownMethod
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// checkCommon validates arguments shared by every rule.
func checkCommon(f Integrand, a, b float64) error {
	if f == nil {
		return ErrNilIntegrand
	}
	if !finite(a) || !finite(b) {
		return ErrBadBounds
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
