package legendre

import (
	"fmt"
	"math/big"
	"sort"
)

// convergenceSlack is how many bits below the target precision a Newton
// correction must fall before a root is accepted.
const convergenceSlack = 16

// Calculator computes rules from scratch on every call. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	opts Options
}

var _ Provider = (*Calculator)(nil)

// NewCalculator returns a Calculator, filling zero-valued options with
// their defaults.
func NewCalculator(opts Options) *Calculator {
	if opts.Seeder == nil {
		opts.Seeder = GonumSeeder{}
	}
	if opts.GuardBits == 0 {
		opts.GuardBits = DefaultGuardBits
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = DefaultMaxIter
	}

	return &Calculator{opts: opts}
}

// Rule computes the points-point rule at digits decimal digits.
//
// Algorithm:
//  1. Validate points ≥ 1 and digits ≥ 1.
//  2. Seed the roots in float64 and sort them ascending.
//  3. For every non-negative root: Newton-refine x ← x - P_n(x)/P'_n(x) in
//     big.Float at PrecisionBits(digits)+GuardBits; for odd n the middle
//     root is exactly 0.
//  4. w = 2 / ((1-x²)·P'_n(x)²), then mirror (x, w) → (-x, w).
//  5. Round nodes and weights to PrecisionBits(digits).
//
// Errors: ErrBadPoints, ErrBadDigits, ErrBadSeed, ErrNoConvergence.
func (c *Calculator) Rule(points, digits int) (*Rule, error) {
	// Stage 1: Validate
	if points < 1 {
		return nil, ErrBadPoints
	}
	if digits < 1 {
		return nil, ErrBadDigits
	}

	// Stage 2: Seed
	raw, err := c.opts.Seeder.Seed(points)
	if err != nil {
		return nil, fmt.Errorf("legendre: seed %d roots: %w", points, err)
	}
	if len(raw) != points {
		return nil, fmt.Errorf("legendre: got %d seeds for %d points: %w", len(raw), points, ErrBadSeed)
	}
	seed := append([]float64(nil), raw...)
	sort.Float64s(seed)
	for _, s := range seed {
		if !(s > -1 && s < 1) { // also rejects NaN
			return nil, fmt.Errorf("legendre: seed %v outside (-1,1): %w", s, ErrBadSeed)
		}
	}

	// Stage 3: Refine the non-negative half and mirror it
	var (
		outPrec  = PrecisionBits(digits)
		workPrec = outPrec + c.opts.GuardBits
		nodes    = make([]*big.Float, points)
		weights  = make([]*big.Float, points)
		half     = points / 2
	)
	for k := half; k < points; k++ {
		var x *big.Float
		if points%2 == 1 && k == half {
			x = new(big.Float).SetPrec(workPrec) // P_n(0) = 0 for odd n
		} else {
			x, err = c.refine(points, seed[k], workPrec, outPrec)
			if err != nil {
				return nil, fmt.Errorf("legendre: root %d of P_%d: %w", k, points, err)
			}
		}
		_, dp := evalLegendre(points, x, workPrec)
		w := weightAt(x, dp, workPrec)

		nodes[k] = new(big.Float).SetPrec(outPrec).Set(x)
		weights[k] = new(big.Float).SetPrec(outPrec).Set(w)
		if m := points - 1 - k; m != k {
			nodes[m] = new(big.Float).Neg(nodes[k])
			weights[m] = new(big.Float).Copy(weights[k])
		}
	}

	// Stage 4: Newton must not have collapsed two seeds onto one root
	for k := 1; k < points; k++ {
		if nodes[k-1].Cmp(nodes[k]) >= 0 {
			return nil, fmt.Errorf("legendre: roots %d and %d not ascending: %w", k-1, k, ErrBadSeed)
		}
	}

	return &Rule{
		Points:  points,
		Digits:  digits,
		Prec:    outPrec,
		Nodes:   nodes,
		Weights: weights,
	}, nil
}

// refine runs Newton's method on P_n from seed until the correction drops
// below 2^-(target+convergenceSlack).
func (c *Calculator) refine(n int, seed float64, prec, target uint) (*big.Float, error) {
	x := new(big.Float).SetPrec(prec).SetFloat64(seed)
	dx := new(big.Float).SetPrec(prec)
	limit := -int(target) - convergenceSlack

	for iter := 0; iter < c.opts.MaxIter; iter++ {
		p, dp := evalLegendre(n, x, prec)
		if dp.Sign() == 0 {
			return nil, ErrNoConvergence
		}
		dx.Quo(p, dp)
		x.Sub(x, dx)
		if dx.Sign() == 0 || dx.MantExp(nil) <= limit {
			return x, nil
		}
	}

	return nil, ErrNoConvergence
}

// evalLegendre returns P_n(x) and P'_n(x) for n ≥ 1 using the three-term
// recurrence (k+1)·P_{k+1} = (2k+1)·x·P_k - k·P_{k-1} and
// P'_n = n·(x·P_n - P_{n-1}) / (x² - 1).
func evalLegendre(n int, x *big.Float, prec uint) (p, dp *big.Float) {
	var (
		p0 = new(big.Float).SetPrec(prec).SetInt64(1) // P_{k-1}
		p1 = new(big.Float).SetPrec(prec).Set(x)      // P_k
		t  = new(big.Float).SetPrec(prec)
		s  = new(big.Float)
	)
	for k := 1; k < n; k++ {
		t.Mul(x, p1)
		t.Mul(t, s.SetInt64(int64(2*k+1)))
		p0.Mul(p0, s.SetInt64(int64(k)))
		t.Sub(t, p0)
		t.Quo(t, s.SetInt64(int64(k+1)))
		p0, p1, t = p1, t, p0
	}

	num := new(big.Float).SetPrec(prec).Mul(x, p1)
	num.Sub(num, p0)
	num.Mul(num, s.SetInt64(int64(n)))
	den := new(big.Float).SetPrec(prec).Mul(x, x)
	den.Sub(den, s.SetInt64(1))

	return p1, num.Quo(num, den)
}

// weightAt returns 2 / ((1 - x²)·dp²).
func weightAt(x, dp *big.Float, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	den := new(big.Float).SetPrec(prec).Mul(x, x)
	den.Sub(one, den)
	sq := new(big.Float).SetPrec(prec).Mul(dp, dp)
	den.Mul(den, sq)

	return new(big.Float).SetPrec(prec).Quo(one.SetInt64(2), den)
}
