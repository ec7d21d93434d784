// Package lvquad is a small laboratory for watching quadrature errors shrink
// (or refuse to) as resolution grows.
//
// 🚀 What is inside?
//
//	Three competing rules and a harness that sweeps them:
//		• Composite trapezoidal rule      — float64, O(h²)
//		• Composite Simpson rule          — float64, O(h⁴), even N only
//		• Gauss–Legendre at any precision — big.Float nodes, weights and sums
//		• Error-sweep harness             — one error curve per method
//		• Reports                         — table, CSV, YAML, log–log charts
//
// ✨ Why?
//
//   - Honest numbers – no adaptivity, no hidden coercion; odd Simpson
//     requests are labelled with what was actually evaluated
//   - Reproducible – rules are deterministic for a fixed (points, digits)
//   - Pathologies on display – the spike problem shows every fixed-grid
//     rule missing a narrow feature
//
// Packages:
//
//	legendre/   — Gauss–Legendre nodes & weights at arbitrary decimal precision + cache
//	quadrature/ — Trapezoid, Simpson, GaussLegendre and the Method enum
//	sweep/      — error-sweep harness, curves, convergence slopes
//	integrand/  — catalogue of test problems with known exact values
//	report/     — chart, CSV, YAML and terminal table renderers
//	cmd/quadsweep — the command-line front end
//
// Quick example:
//
//	curves, err := sweep.Run(ctx, sweep.Request{
//		F: math.Sin, Interval: quadrature.Interval{A: 0, B: math.Pi}, Exact: 2,
//		Plans: sweep.ReferencePlans(1280),
//	}, sweep.DefaultOptions())
//
//	go install github.com/katalvlaran/lvquad/cmd/quadsweep@latest
package lvquad
