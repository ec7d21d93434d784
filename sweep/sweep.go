package sweep

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvquad/legendre"
	"github.com/katalvlaran/lvquad/quadrature"
)

// Run computes one Curve per Plan in req.Plans.
//
// Stages:
//  1. Validate the request and resolve option defaults.
//  2. Evaluate every (plan, resolution) pair, sequentially or over a
//     bounded errgroup when opts.Parallelism > 1.
//  3. Record |estimate - exact| per point, in request order.
//
// The first integrator failure aborts the whole sweep, discarding every
// curve of the request, not just the failing method's; the returned error
// wraps the integrator's sentinel. Callers that want to skip a failing
// method and keep the others should call RunCurve once per Plan.
// ctx is checked before each point.
func Run(ctx context.Context, req Request, opts Options) ([]Curve, error) {
	// Stage 1: Validate
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	opts = resolveOptions(opts)

	curves := make([]Curve, len(req.Plans))
	for i, plan := range req.Plans {
		curves[i] = Curve{Method: plan.Method, Points: make([]Point, len(plan.Resolutions))}
	}

	// Stage 2: Evaluate
	if opts.Parallelism <= 1 {
		for i, plan := range req.Plans {
			for j, res := range plan.Resolutions {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				pt, err := measure(req, plan.Method, res, opts)
				if err != nil {
					return nil, err
				}
				curves[i].Points[j] = pt
				if opts.OnPoint != nil {
					opts.OnPoint(plan.Method, pt)
				}
			}
		}

		return curves, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for i, plan := range req.Plans {
		for j, res := range plan.Resolutions {
			i, j, method, res := i, j, plan.Method, res
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				pt, err := measure(req, method, res, opts)
				if err != nil {
					return err
				}
				curves[i].Points[j] = pt // each goroutine owns one slot

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stage 3: Replay the hook in request order
	if opts.OnPoint != nil {
		for _, c := range curves {
			for _, pt := range c.Points {
				opts.OnPoint(c.Method, pt)
			}
		}
	}

	return curves, nil
}

// RunCurve computes a single curve; it is Run with one plan.
func RunCurve(ctx context.Context, f quadrature.Integrand, iv quadrature.Interval, exact float64, plan Plan, opts Options) (Curve, error) {
	curves, err := Run(ctx, Request{F: f, Interval: iv, Exact: exact, Plans: []Plan{plan}}, opts)
	if err != nil {
		return Curve{}, err
	}

	return curves[0], nil
}

// Evaluate runs one integrator call as the harness would, applying the odd
// Simpson policy. It returns the resolution actually used and the estimate.
func Evaluate(f quadrature.Integrand, iv quadrature.Interval, method quadrature.Method, resolution int, opts Options) (used int, estimate float64, err error) {
	opts = resolveOptions(opts)
	used = resolution

	switch method {
	case quadrature.Trapezoidal:
		estimate, err = quadrature.Trapezoid(f, iv.A, iv.B, used)
	case quadrature.SimpsonRule:
		if used%2 != 0 && opts.OddPolicy == OddBump {
			used++
		}
		estimate, err = quadrature.Simpson(f, iv.A, iv.B, used)
	case quadrature.Gaussian:
		estimate, err = quadrature.GaussLegendre(f, iv.A, iv.B, used, opts.Digits, opts.Provider)
	default:
		err = quadrature.ErrUnknownMethod
	}
	if err != nil {
		return 0, 0, fmt.Errorf("sweep: %s at resolution %d: %w", method, resolution, err)
	}

	return used, estimate, nil
}

// measure evaluates one point and its absolute error.
func measure(req Request, method quadrature.Method, res int, opts Options) (Point, error) {
	used, est, err := Evaluate(req.F, req.Interval, method, res, opts)
	if err != nil {
		return Point{}, err
	}

	return Point{
		Resolution: res,
		Used:       used,
		Estimate:   est,
		AbsError:   math.Abs(est - req.Exact),
	}, nil
}

// resolveOptions fills zero-valued options. A nil Provider gets a fresh
// cache so one sweep never computes the same rule twice.
func resolveOptions(opts Options) Options {
	if opts.Digits == 0 {
		opts.Digits = quadrature.DefaultDigits
	}
	if opts.Provider == nil {
		opts.Provider = legendre.NewCache(nil)
	}

	return opts
}

// validateRequest checks the request shape; resolution values themselves
// are left to the integrators.
func validateRequest(req Request) error {
	if req.F == nil {
		return fmt.Errorf("%w: nil integrand", ErrBadRequest)
	}
	if err := req.Interval.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if math.IsNaN(req.Exact) || math.IsInf(req.Exact, 0) {
		return fmt.Errorf("%w: exact value %v is not finite", ErrBadRequest, req.Exact)
	}
	if len(req.Plans) == 0 {
		return fmt.Errorf("%w: no plans", ErrBadRequest)
	}
	for i, p := range req.Plans {
		if !p.Method.Valid() {
			return fmt.Errorf("%w: plan %d: %w", ErrBadRequest, i, quadrature.ErrUnknownMethod)
		}
		if len(p.Resolutions) == 0 {
			return fmt.Errorf("%w: plan %d (%s) has no resolutions", ErrBadRequest, i, p.Method)
		}
	}

	return nil
}
