package quadrature

// Simpson returns the composite Simpson estimate of ∫_a^b f with n equal
// subintervals, n even and ≥ 2:
//
//	h = (b-a)/n
//	S = (h/3)·[f(a) + f(b) + 4·Σ_{i odd} f(a+i·h) + 2·Σ_{i even, 0<i<n} f(a+i·h)]
//
// Odd n is rejected, never rounded; adjusting the resolution is the
// caller's decision. All checks run before the first evaluation.
//
// Errors: ErrNilIntegrand, ErrBadBounds, ErrBadSubdivisions (n < 2),
// ErrOddSubdivisions. f is evaluated exactly n+1 times.
func Simpson(f Integrand, a, b float64, n int) (float64, error) {
	if err := checkCommon(f, a, b); err != nil {
		return 0, err
	}
	if n < 2 {
		if n == 1 {
			return 0, ErrOddSubdivisions
		}
		return 0, ErrBadSubdivisions
	}
	if n%2 != 0 {
		return 0, ErrOddSubdivisions
	}

	h := (b - a) / float64(n)
	s := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 0 {
			s += 2 * f(x)
		} else {
			s += 4 * f(x)
		}
	}

	return s * h / 3, nil
}
