// Package quadrature estimates ∫_a^b f(x) dx with three fixed-resolution rules:
//
//   - Trapezoid     — composite trapezoidal rule, float64, N subintervals, O(h²).
//   - Simpson       — composite Simpson rule, float64, even N subintervals, O(h⁴).
//   - GaussLegendre — P-point Gauss–Legendre rule whose nodes, weights, affine
//     map and accumulation run in big.Float; exact for degree ≤ 2P-1.
//
// All integrators are pure functions of their inputs: no global state, no
// logging, no retries. Invalid arguments are reported synchronously with
// sentinel errors that all match ErrInvalidArgument under errors.Is.
//
// Precision boundary (GaussLegendre):
//
//	nodes/weights/c1/c2/Σ  ─ big.Float at the rule's precision
//	f(x)                   ─ float64 in, float64 out
//	result                 ─ float64(c1·Σ)
//
// Each rule evaluates the integrand a known number of times:
// Trapezoid and Simpson N+1, GaussLegendre P.
package quadrature
