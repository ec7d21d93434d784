package sweep

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Resolutions returns the x-axis values; effective selects Used over Resolution.
func (c Curve) Resolutions(effective bool) []float64 {
	xs := make([]float64, len(c.Points))
	for i, p := range c.Points {
		if effective {
			xs[i] = float64(p.Used)
		} else {
			xs[i] = float64(p.Resolution)
		}
	}

	return xs
}

// Errors returns the absolute errors in point order.
func (c Curve) Errors() []float64 {
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		ys[i] = p.AbsError
	}

	return ys
}

// Best returns the point with the smallest absolute error (first on ties).
func (c Curve) Best() (Point, bool) {
	if len(c.Points) == 0 {
		return Point{}, false
	}

	return c.Points[floats.MinIdx(c.Errors())], true
}

// Slope fits log10(error) = α + β·log10(resolution) by least squares over
// points with a positive error and returns β, the empirical convergence
// order (≈ -2 for the trapezoid, ≈ -4 for Simpson on smooth integrands).
// ok is false when fewer than two usable points exist.
func (c Curve) Slope() (beta float64, ok bool) {
	var xs, ys []float64
	for _, p := range c.Points {
		if p.AbsError > 0 && p.Resolution > 0 {
			xs = append(xs, math.Log10(float64(p.Resolution)))
			ys = append(ys, math.Log10(p.AbsError))
		}
	}
	if len(xs) < 2 || floats.Min(xs) == floats.Max(xs) {
		return 0, false
	}
	_, beta = stat.LinearRegression(xs, ys, nil, false)

	return beta, true
}
