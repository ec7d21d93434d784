// Package cliconfig assembles the quadsweep configuration from defaults, a
// TOML file, QUADSWEEP_* environment variables and command-line flags.
// Explicitly set flags always win; the changed map carries that set.
package cliconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvquad/integrand"
	"github.com/katalvlaran/lvquad/legendre"
	"github.com/katalvlaran/lvquad/quadrature"
	"github.com/katalvlaran/lvquad/sweep"
)

// Seeder names accepted by Config.Seed.
const (
	SeedGonum  = "gonum"
	SeedJacobi = "jacobi"
)

// Config holds CLI configuration for quadsweep.
type Config struct {
	Problem    string
	SpikeWidth float64

	Methods     []string
	MinN        int
	MaxN        int
	GaussPoints []int

	Digits      int
	Parallelism int
	OddPolicy   string
	Seed        string

	PlotPath  string
	CSVPath   string
	YAMLPath  string
	Table     bool
	LabelUsed bool

	LogLevel string
	Watch    bool
}

// DefaultConfig returns a Config with default values: the sine reference
// sweep over every method.
func DefaultConfig() Config {
	return Config{
		Problem:     "sine",
		SpikeWidth:  integrand.DefaultSpikeWidth,
		Methods:     []string{"trapezoid", "simpson", "gauss"},
		MinN:        10,
		MaxN:        1280,
		GaussPoints: sweep.DefaultGaussPoints(),
		Digits:      quadrature.DefaultDigits,
		Parallelism: 1,
		OddPolicy:   sweep.OddBump.String(),
		Seed:        SeedGonum,
		Table:       true,
		LogLevel:    zerolog.InfoLevel.String(),
	}
}

// Validate checks the configuration for errors and normalizes names.
func (c *Config) Validate() error {
	c.Problem = strings.ToLower(strings.TrimSpace(c.Problem))
	if _, err := c.ResolveProblem(); err != nil {
		return err
	}

	if len(c.Methods) == 0 {
		return fmt.Errorf("at least one method is required")
	}
	for i, name := range c.Methods {
		m, err := quadrature.ParseMethod(name)
		if err != nil {
			return fmt.Errorf("methods: %w", err)
		}
		c.Methods[i] = m.String()
	}

	if c.MinN < 1 {
		return fmt.Errorf("min-n must be positive")
	}
	if c.MaxN < c.MinN {
		return fmt.Errorf("max-n (%d) must be at least min-n (%d)", c.MaxN, c.MinN)
	}
	if c.uses(quadrature.Gaussian) && len(c.GaussPoints) == 0 {
		return fmt.Errorf("gauss-points is required when gauss is selected")
	}
	for _, p := range c.GaussPoints {
		if p < 1 {
			return fmt.Errorf("gauss point count %d must be positive", p)
		}
	}
	if c.Digits < 1 {
		return fmt.Errorf("digits must be positive")
	}
	if c.Parallelism < 1 {
		c.Parallelism = 1
	}

	switch c.OddPolicy {
	case "", sweep.OddBump.String():
		c.OddPolicy = sweep.OddBump.String()
	case sweep.OddReject.String():
	default:
		return fmt.Errorf("odd policy %q: want bump or reject", c.OddPolicy)
	}

	switch c.Seed {
	case "":
		c.Seed = SeedGonum
	case SeedGonum, SeedJacobi:
	default:
		return fmt.Errorf("seed %q: want %s or %s", c.Seed, SeedGonum, SeedJacobi)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	return nil
}

// ResolveProblem returns the catalogue problem, honouring SpikeWidth.
func (c Config) ResolveProblem() (integrand.Problem, error) {
	if c.Problem == "spike" {
		return integrand.Spike(c.SpikeWidth)
	}

	return integrand.Lookup(c.Problem)
}

// Plans builds one sweep plan per selected method, in Methods order.
// Composite rules use Doubling(MinN, MaxN).
func (c Config) Plans() ([]sweep.Plan, error) {
	plans := make([]sweep.Plan, 0, len(c.Methods))
	for _, name := range c.Methods {
		m, err := quadrature.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		p := sweep.Plan{Method: m}
		if m == quadrature.Gaussian {
			p.Resolutions = append([]int(nil), c.GaussPoints...)
		} else {
			p.Resolutions = sweep.Doubling(c.MinN, c.MaxN)
		}
		plans = append(plans, p)
	}

	return plans, nil
}

// SweepOptions maps the configuration onto sweep.Options. The provider is
// a cache over the selected seeder.
func (c Config) SweepOptions() sweep.Options {
	opts := sweep.DefaultOptions()
	opts.Digits = c.Digits
	opts.Parallelism = c.Parallelism
	if c.OddPolicy == sweep.OddReject.String() {
		opts.OddPolicy = sweep.OddReject
	}
	opts.Provider = legendre.NewCache(legendre.NewCalculator(c.LegendreOptions()))

	return opts
}

// LegendreOptions returns calculator options for the selected seeder.
func (c Config) LegendreOptions() legendre.Options {
	lo := legendre.DefaultOptions()
	if c.Seed == SeedJacobi {
		lo.Seeder = legendre.JacobiSeeder{}
	}

	return lo
}

func (c Config) uses(m quadrature.Method) bool {
	for _, name := range c.Methods {
		if got, err := quadrature.ParseMethod(name); err == nil && got == m {
			return true
		}
	}

	return false
}

// configSetter applies values unless the corresponding flag was set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setStrings replaces a list if the source is non-empty.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setInts replaces a list if the source is non-empty.
func (s *configSetter) setInts(flag string, value []int, dst *[]int) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]int(nil), value...)
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// setStringsFromString splits a comma-separated list.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = splitList(value)
}

// setIntsFromString parses a comma-separated list of integers.
func (s *configSetter) setIntsFromString(flag, value string, dst *[]int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	parts := splitList(value)
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", flag, err)
		}
		out[i] = n
	}
	*dst = out
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
