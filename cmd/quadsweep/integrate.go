package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/internal/cliconfig"
	"github.com/katalvlaran/lvquad/internal/logging"
	"github.com/katalvlaran/lvquad/quadrature"
	"github.com/katalvlaran/lvquad/sweep"
)

func newIntegrateCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var (
		method     string
		resolution int
	)

	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Evaluate one method at one resolution",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := quadrature.ParseMethod(method)
			if err != nil {
				return err
			}
			cfg.Methods = []string{m.String()}
			cfg.GaussPoints = nil
			if m == quadrature.Gaussian {
				cfg.GaussPoints = []int{resolution}
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			problem, err := cfg.ResolveProblem()
			if err != nil {
				return err
			}
			used, estimate, err := sweep.Evaluate(problem.F, problem.Interval, m, resolution, cfg.SweepOptions())
			if err != nil {
				return err
			}
			log.Debug().Str("problem", problem.Name).Str("method", m.String()).Int("used", used).Msg("integrated")

			fmt.Fprintf(cmd.OutOrStdout(), "problem:    %s\nmethod:     %s\nresolution: %d (used %d)\nestimate:   %.17g\nexact:      %.17g\nabs error:  %.3e\n",
				problem.Title, m, resolution, used, estimate, problem.Exact, math.Abs(estimate-problem.Exact))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Problem, "problem", cfg.Problem, "catalogue problem")
	f.Float64Var(&cfg.SpikeWidth, "spike-width", cfg.SpikeWidth, "half-width of the spike problem")
	f.StringVar(&method, "method", "gauss", "trapezoid, simpson or gauss")
	f.IntVar(&resolution, "n", 8, "subdivision count (composite rules) or point count (gauss)")
	f.IntVar(&cfg.Digits, "digits", cfg.Digits, "Gauss–Legendre decimal precision")
	f.StringVar(&cfg.OddPolicy, "odd", cfg.OddPolicy, "odd Simpson N: bump or reject")
	f.StringVar(&cfg.Seed, "seed", cfg.Seed, "Legendre root seeder: gonum or jacobi")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	return cmd
}
