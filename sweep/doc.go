// Package sweep drives the quadrature rules over increasing resolutions and
// records how far each estimate lands from a caller-supplied exact value.
//
// A Request names one integrand, its interval and exact integral, plus one
// Plan (method + ordered resolutions) per curve. Run returns one Curve per
// Plan, with exactly one Point per requested resolution, in request order.
//
// Policy notes:
//   - Simpson needs an even N. With OddBump (the default) an odd request N
//     is evaluated at N+1 while Point.Resolution keeps N; Point.Used always
//     records the value actually passed to the rule. OddReject fails instead.
//   - Nothing is cached except Gauss–Legendre rules (via Options.Provider);
//     every point is an independent integrator call.
//   - Fail-fast: the first integrator error aborts the sweep and is returned
//     wrapped, so errors.Is still matches the quadrature sentinels.
//   - Parallelism > 1 fans points out over a bounded errgroup. Output is
//     identical to the sequential run; OnPoint is then replayed in order
//     after all points finish.
package sweep
