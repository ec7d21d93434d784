// Package integrand is a small catalogue of test problems for the error
// sweeps: a smooth integrand, a pathological one, and two classics in
// between. Every Problem carries its own closed-form exact value; nothing
// here is computed numerically.
//
//	sine   sin(x) on [0, π]                     exact 2
//	spike  top-hat of half-width ε at 0.5 on [0,1]  exact 2ε
//	runge  1/(1+25x²) on [-1, 1]               exact (2/5)·atan 5
//	bell   exp(-x²) on [-1, 1]                 exact √π·erf 1
//
// The spike is deliberately hostile: any grid or node set that misses the
// interval (0.5-ε, 0.5+ε) returns 0, and one that hits it returns a
// multiple of the step. Sweeps over it are expected to show large errors.
package integrand
