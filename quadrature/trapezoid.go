package quadrature

// Trapezoid returns the composite trapezoidal estimate of ∫_a^b f with n
// equal subintervals:
//
//	h = (b-a)/n
//	T = h·[½f(a) + ½f(b) + Σ_{i=1}^{n-1} f(a+i·h)]
//
// Errors: ErrNilIntegrand, ErrBadBounds, ErrBadSubdivisions (n < 1).
// f is evaluated exactly n+1 times.
func Trapezoid(f Integrand, a, b float64, n int) (float64, error) {
	if err := checkCommon(f, a, b); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, ErrBadSubdivisions
	}

	h := (b - a) / float64(n)
	s := 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		s += f(a + float64(i)*h)
	}

	return h * s, nil
}
