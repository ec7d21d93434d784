package cliconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvquad/integrand"
	"github.com/katalvlaran/lvquad/legendre"
	"github.com/katalvlaran/lvquad/quadrature"
	"github.com/katalvlaran/lvquad/sweep"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "sine", cfg.Problem)
	assert.Equal(t, []string{"trapezoid", "simpson", "gauss"}, cfg.Methods)
	assert.Equal(t, 10, cfg.MinN)
	assert.Equal(t, 1280, cfg.MaxN)
	assert.Equal(t, quadrature.DefaultDigits, cfg.Digits)
	assert.Equal(t, "bump", cfg.OddPolicy)
	assert.Equal(t, SeedGonum, cfg.Seed)
	assert.True(t, cfg.Table)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "method aliases are normalized", mutate: func(c *Config) { c.Methods = []string{"Trap", "legendre"} }},
		{name: "unknown problem", mutate: func(c *Config) { c.Problem = "cauchy" }, wantErr: true},
		{name: "bad spike width", mutate: func(c *Config) { c.Problem, c.SpikeWidth = "spike", 0.7 }, wantErr: true},
		{name: "no methods", mutate: func(c *Config) { c.Methods = nil }, wantErr: true},
		{name: "unknown method", mutate: func(c *Config) { c.Methods = []string{"romberg"} }, wantErr: true},
		{name: "min-n zero", mutate: func(c *Config) { c.MinN = 0 }, wantErr: true},
		{name: "max-n below min-n", mutate: func(c *Config) { c.MinN, c.MaxN = 40, 20 }, wantErr: true},
		{name: "gauss without points", mutate: func(c *Config) { c.GaussPoints = nil }, wantErr: true},
		{name: "no points needed without gauss", mutate: func(c *Config) { c.GaussPoints, c.Methods = nil, []string{"simpson"} }},
		{name: "non-positive gauss point", mutate: func(c *Config) { c.GaussPoints = []int{2, 0} }, wantErr: true},
		{name: "digits zero", mutate: func(c *Config) { c.Digits = 0 }, wantErr: true},
		{name: "odd policy reject", mutate: func(c *Config) { c.OddPolicy = "reject" }},
		{name: "odd policy unknown", mutate: func(c *Config) { c.OddPolicy = "round" }, wantErr: true},
		{name: "seed jacobi", mutate: func(c *Config) { c.Seed = SeedJacobi }},
		{name: "seed unknown", mutate: func(c *Config) { c.Seed = "lapack" }, wantErr: true},
		{name: "log level unknown", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_ValidateNormalizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Problem = " Bell "
	cfg.Methods = []string{"trap", "gauss-legendre"}
	cfg.OddPolicy = ""
	cfg.Seed = ""
	cfg.Parallelism = 0
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "bell", cfg.Problem)
	assert.Equal(t, []string{"trapezoid", "gauss"}, cfg.Methods)
	assert.Equal(t, "bump", cfg.OddPolicy)
	assert.Equal(t, SeedGonum, cfg.Seed)
	assert.Equal(t, 1, cfg.Parallelism)
}

func TestConfig_Plans(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Methods = []string{"gauss", "simpson"}
	cfg.MinN, cfg.MaxN = 10, 80
	cfg.GaussPoints = []int{2, 4}

	plans, err := cfg.Plans()
	require.NoError(t, err)
	assert.Equal(t, []sweep.Plan{
		{Method: quadrature.Gaussian, Resolutions: []int{2, 4}},
		{Method: quadrature.SimpsonRule, Resolutions: []int{10, 20, 40, 80}},
	}, plans)
}

func TestConfig_SweepOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OddPolicy = "reject"
	cfg.Parallelism = 3
	cfg.Digits = 25

	opts := cfg.SweepOptions()
	assert.Equal(t, sweep.OddReject, opts.OddPolicy)
	assert.Equal(t, 3, opts.Parallelism)
	assert.Equal(t, 25, opts.Digits)
	assert.IsType(t, &legendre.Cache{}, opts.Provider)

	assert.IsType(t, legendre.GonumSeeder{}, cfg.LegendreOptions().Seeder)
	cfg.Seed = SeedJacobi
	assert.IsType(t, legendre.JacobiSeeder{}, cfg.LegendreOptions().Seeder)
}

func TestConfig_ResolveProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Problem = "spike"
	cfg.SpikeWidth = 0.01

	p, err := cfg.ResolveProblem()
	require.NoError(t, err)
	assert.Equal(t, 0.02, p.Exact)

	cfg.Problem = "nope"
	_, err = cfg.ResolveProblem()
	assert.ErrorIs(t, err, integrand.ErrUnknownProblem)
}
