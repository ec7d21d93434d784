package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config in TOML form. Pointer booleans distinguish
// "absent" from false.
type FileConfig struct {
	Problem     string   `toml:"problem"`
	SpikeWidth  float64  `toml:"spike_width"`
	Methods     []string `toml:"methods"`
	MinN        int      `toml:"min_n"`
	MaxN        int      `toml:"max_n"`
	GaussPoints []int    `toml:"gauss_points"`
	Digits      int      `toml:"digits"`
	Parallelism int      `toml:"parallelism"`
	OddPolicy   string   `toml:"odd_policy"`
	Seed        string   `toml:"seed"`
	Plot        string   `toml:"plot"`
	CSV         string   `toml:"csv"`
	YAML        string   `toml:"yaml"`
	Table       *bool    `toml:"table"`
	LabelUsed   *bool    `toml:"label_used"`
	LogLevel    string   `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.quadsweep/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".quadsweep", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies file values to cfg, skipping flags in changed.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("problem", fc.Problem, &cfg.Problem)
	s.setString("odd", fc.OddPolicy, &cfg.OddPolicy)
	s.setString("seed", fc.Seed, &cfg.Seed)
	s.setString("plot", fc.Plot, &cfg.PlotPath)
	s.setString("csv", fc.CSV, &cfg.CSVPath)
	s.setString("yaml", fc.YAML, &cfg.YAMLPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setFloat("spike-width", fc.SpikeWidth, &cfg.SpikeWidth)

	s.setInt("min-n", fc.MinN, &cfg.MinN)
	s.setInt("max-n", fc.MaxN, &cfg.MaxN)
	s.setInt("digits", fc.Digits, &cfg.Digits)
	s.setInt("parallelism", fc.Parallelism, &cfg.Parallelism)

	s.setStrings("methods", fc.Methods, &cfg.Methods)
	s.setInts("gauss-points", fc.GaussPoints, &cfg.GaussPoints)

	s.setBool("table", fc.Table, &cfg.Table)
	s.setBool("label-used", fc.LabelUsed, &cfg.LabelUsed)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
