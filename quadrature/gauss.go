package quadrature

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvquad/legendre"
)

// DefaultDigits is the decimal precision used for Gauss–Legendre sums when
// the caller does not choose one.
const DefaultDigits = 40

// float64Bits is the mantissa width of a float64; the map and the sum never
// run below it.
const float64Bits = 53

// Gauss binds a node/weight provider so repeated integrations can share it.
// The zero value uses a fresh uncached legendre.Calculator per call.
type Gauss struct {
	Provider legendre.Provider
}

// NewGauss returns a Gauss backed by src (nil ⇒ uncached calculator).
func NewGauss(src legendre.Provider) Gauss {
	return Gauss{Provider: src}
}

// Integrate is GaussLegendre with g's provider.
func (g Gauss) Integrate(f Integrand, a, b float64, points, digits int) (float64, error) {
	return GaussLegendre(f, a, b, points, digits, g.Provider)
}

// GaussLegendre returns the points-point Gauss–Legendre estimate of ∫_a^b f.
//
// Algorithm:
//  1. rule ← src.Rule(points, digits): nodes x_i ∈ (-1,1), weights w_i, Σw = 2.
//  2. c1 = (b-a)/2, c2 = (b+a)/2 in big.Float at max(rule.Prec, 53) bits,
//     so a, b and every f value enter exactly as their float64 values.
//  3. x_i' = c1·x_i + c2 in big.Float; f is called with float64(x_i').
//  4. Σ = Σ w_i·f(x_i') accumulated in big.Float.
//  5. result = float64(c1·Σ).
//
// Only the integrand's argument and value and the final result cross to
// float64. A nil src uses legendre.NewCalculator(legendre.DefaultOptions()).
//
// Errors: ErrNilIntegrand, ErrBadBounds, ErrBadPoints, ErrBadDigits,
// ErrNonFinite, or a wrapped provider error. f is evaluated exactly points times.
func GaussLegendre(f Integrand, a, b float64, points, digits int, src legendre.Provider) (float64, error) {
	// Stage 1: Validate
	if err := checkCommon(f, a, b); err != nil {
		return 0, err
	}
	if points < 1 {
		return 0, ErrBadPoints
	}
	if digits < 1 {
		return 0, ErrBadDigits
	}
	if src == nil {
		src = legendre.NewCalculator(legendre.DefaultOptions())
	}

	// Stage 2: Obtain the rule
	rule, err := src.Rule(points, digits)
	if err != nil {
		return 0, fmt.Errorf("quadrature: gauss rule P=%d digits=%d: %w", points, digits, mapRuleErr(err))
	}
	if len(rule.Nodes) != points || len(rule.Weights) != points {
		return 0, fmt.Errorf("quadrature: provider returned %d nodes, %d weights for P=%d",
			len(rule.Nodes), len(rule.Weights), points)
	}
	prec := rule.Prec
	if prec == 0 {
		prec = legendre.PrecisionBits(digits)
	}
	prec = max(prec, float64Bits)

	// Stage 3: Affine map constants
	var (
		bigA = new(big.Float).SetPrec(prec).SetFloat64(a)
		bigB = new(big.Float).SetPrec(prec).SetFloat64(b)
		two  = new(big.Float).SetPrec(prec).SetInt64(2)
		c1   = new(big.Float).SetPrec(prec).Sub(bigB, bigA)
		c2   = new(big.Float).SetPrec(prec).Add(bigB, bigA)
	)
	c1.Quo(c1, two)
	c2.Quo(c2, two)

	// Stage 4: Map, evaluate, accumulate
	var (
		total = new(big.Float).SetPrec(prec)
		xPhys = new(big.Float).SetPrec(prec)
		fx    = new(big.Float).SetPrec(prec)
		term  = new(big.Float).SetPrec(prec)
	)
	for i, xi := range rule.Nodes {
		xPhys.Mul(c1, xi)
		xPhys.Add(xPhys, c2)
		x, _ := xPhys.Float64()

		y := f(x)
		if !finite(y) {
			return 0, fmt.Errorf("quadrature: f(%v) = %v: %w", x, y, ErrNonFinite)
		}
		fx.SetFloat64(y)
		term.Mul(rule.Weights[i], fx)
		total.Add(total, term)
	}

	// Stage 5: Scale and cross back to float64
	total.Mul(total, c1)
	result, _ := total.Float64()

	return result, nil
}

// mapRuleErr translates provider argument errors into this package's sentinels
// so callers can match either.
func mapRuleErr(err error) error {
	switch {
	case errors.Is(err, legendre.ErrBadPoints):
		return errors.Join(ErrBadPoints, err)
	case errors.Is(err, legendre.ErrBadDigits):
		return errors.Join(ErrBadDigits, err)
	default:
		return err
	}
}
