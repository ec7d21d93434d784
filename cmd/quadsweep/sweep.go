package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/katalvlaran/lvquad/internal/cliconfig"
	"github.com/katalvlaran/lvquad/internal/logging"
	"github.com/katalvlaran/lvquad/internal/watch"
	"github.com/katalvlaran/lvquad/report"
	"github.com/katalvlaran/lvquad/sweep"
)

func newSweepCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep every selected method over its resolutions and report the errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			base := cfg
			first, err := loadConfig(base, cfgFile, changed)
			if err != nil {
				return err
			}
			log, err := logging.New(cmd.ErrOrStderr(), first.LogLevel)
			if err != nil {
				return err
			}
			log.Debug().Interface("config", first).Msg("configuration")

			out := cmd.OutOrStdout()
			if !first.Watch {
				return runSweep(cmd.Context(), first, log, out)
			}
			if cfgFile == "" || !cliconfig.FileExists(cfgFile) {
				return fmt.Errorf("--watch needs an existing config file")
			}

			log.Info().Str("path", cfgFile).Msg("watching config")
			return watch.Run(cmd.Context(), cfgFile, watch.DefaultConfig(), log, func(ctx context.Context) error {
				c, err := loadConfig(base, cfgFile, changed)
				if err != nil {
					return err
				}
				return runSweep(ctx, c, log, out)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.quadsweep/config.toml)")
	f.StringVar(&cfg.Problem, "problem", cfg.Problem, "catalogue problem (see 'quadsweep problems')")
	f.Float64Var(&cfg.SpikeWidth, "spike-width", cfg.SpikeWidth, "half-width of the spike problem")
	f.StringSliceVar(&cfg.Methods, "methods", cfg.Methods, "methods to sweep: trapezoid, simpson, gauss")
	f.IntVar(&cfg.MinN, "min-n", cfg.MinN, "first composite subdivision count (doubled up to max-n)")
	f.IntVar(&cfg.MaxN, "max-n", cfg.MaxN, "last composite subdivision count")
	f.IntSliceVar(&cfg.GaussPoints, "gauss-points", cfg.GaussPoints, "Gauss–Legendre point counts")
	f.IntVar(&cfg.Digits, "digits", cfg.Digits, "Gauss–Legendre decimal precision")
	f.IntVar(&cfg.Parallelism, "parallelism", cfg.Parallelism, "concurrent integrator calls (1 = sequential)")
	f.StringVar(&cfg.OddPolicy, "odd", cfg.OddPolicy, "odd Simpson N: bump (evaluate N+1) or reject")
	f.StringVar(&cfg.Seed, "seed", cfg.Seed, "Legendre root seeder: gonum or jacobi")
	f.StringVar(&cfg.PlotPath, "plot", cfg.PlotPath, "write a log–log chart (png, svg, pdf, ...)")
	f.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "write points as CSV ('-' for stdout)")
	f.StringVar(&cfg.YAMLPath, "yaml", cfg.YAMLPath, "write a YAML summary ('-' for stdout)")
	f.BoolVar(&cfg.Table, "table", cfg.Table, "print a table of points")
	f.BoolVar(&cfg.LabelUsed, "label-used", cfg.LabelUsed, "label points by the resolution actually used")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	f.BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run whenever the config file changes")

	return cmd
}

// loadConfig layers file and env values over base and validates the result.
func loadConfig(base cliconfig.Config, cfgFile string, changed map[string]bool) (cliconfig.Config, error) {
	cfg := base
	cfg.Methods = append([]string(nil), base.Methods...)
	cfg.GaussPoints = append([]int(nil), base.GaussPoints...)

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&cfg, fc, changed)
	}

	// QUADSWEEP_* override file values; flags override both
	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// runSweep executes one sweep and writes every requested output.
func runSweep(ctx context.Context, cfg cliconfig.Config, log zerolog.Logger, out io.Writer) error {
	runID := uuid.NewString()
	log = log.With().Str("run", runID).Logger()

	problem, err := cfg.ResolveProblem()
	if err != nil {
		return err
	}
	plans, err := cfg.Plans()
	if err != nil {
		return err
	}
	opts := cfg.SweepOptions()
	opts.OnPoint = logging.PointHook(log)

	log.Info().Str("problem", problem.Name).Int("plans", len(plans)).Msg("sweep started")
	curves, err := sweep.Run(ctx, sweep.Request{
		F:        problem.F,
		Interval: problem.Interval,
		Exact:    problem.Exact,
		Plans:    plans,
	}, opts)
	if err != nil {
		return err
	}
	for _, c := range curves {
		ev := log.Info().Str("method", c.Method.String())
		if beta, ok := c.Slope(); ok {
			ev = ev.Float64("slope", beta)
		}
		if best, ok := c.Best(); ok {
			ev = ev.Int("best_resolution", best.Resolution).Float64("best_error", best.AbsError)
		}
		ev.Msg("curve")
	}

	ropts := report.Options{UseEffective: cfg.LabelUsed}
	if cfg.Table {
		fmt.Fprintln(out, report.Table(curves, ropts))
	}
	if cfg.CSVPath != "" {
		if err := writeTo(cfg.CSVPath, out, func(w io.Writer) error { return report.WriteCSV(w, curves) }); err != nil {
			return err
		}
	}
	if cfg.YAMLPath != "" {
		summary := report.Summary{
			RunID:   runID,
			Problem: problem.Name,
			A:       problem.Interval.A,
			B:       problem.Interval.B,
			Exact:   problem.Exact,
			Digits:  cfg.Digits,
			Odd:     cfg.OddPolicy,
			Curves:  report.Summarize(curves),
		}
		if err := writeTo(cfg.YAMLPath, out, func(w io.Writer) error { return report.WriteYAML(w, summary) }); err != nil {
			return err
		}
	}
	if cfg.PlotPath != "" {
		fig := report.DefaultFigure(problem.Title)
		switch err := report.SavePlot(cfg.PlotPath, fig, curves, ropts); {
		case errors.Is(err, report.ErrNoData):
			log.Warn().Str("path", cfg.PlotPath).Msg("every error is zero, chart skipped")
		case err != nil:
			return err
		default:
			log.Info().Str("path", cfg.PlotPath).Msg("chart written")
		}
	}

	log.Info().Msg("sweep finished")
	return nil
}

// writeTo writes to stdout for "-", otherwise to a new file at path.
func writeTo(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
