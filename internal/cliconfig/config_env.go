package cliconfig

import "os"

// ApplyEnvConfig applies QUADSWEEP_* variables to cfg, skipping flags in
// changed. Lists are comma-separated.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("problem", os.Getenv("QUADSWEEP_PROBLEM"), &cfg.Problem)
	s.setString("odd", os.Getenv("QUADSWEEP_ODD_POLICY"), &cfg.OddPolicy)
	s.setString("seed", os.Getenv("QUADSWEEP_SEED"), &cfg.Seed)
	s.setString("plot", os.Getenv("QUADSWEEP_PLOT"), &cfg.PlotPath)
	s.setString("csv", os.Getenv("QUADSWEEP_CSV"), &cfg.CSVPath)
	s.setString("yaml", os.Getenv("QUADSWEEP_YAML"), &cfg.YAMLPath)
	s.setString("log-level", os.Getenv("QUADSWEEP_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setFloatFromString("spike-width", os.Getenv("QUADSWEEP_SPIKE_WIDTH"), &cfg.SpikeWidth); err != nil {
		return err
	}
	if err := s.setIntFromString("min-n", os.Getenv("QUADSWEEP_MIN_N"), &cfg.MinN); err != nil {
		return err
	}
	if err := s.setIntFromString("max-n", os.Getenv("QUADSWEEP_MAX_N"), &cfg.MaxN); err != nil {
		return err
	}
	if err := s.setIntFromString("digits", os.Getenv("QUADSWEEP_DIGITS"), &cfg.Digits); err != nil {
		return err
	}
	if err := s.setIntFromString("parallelism", os.Getenv("QUADSWEEP_PARALLELISM"), &cfg.Parallelism); err != nil {
		return err
	}
	if err := s.setIntsFromString("gauss-points", os.Getenv("QUADSWEEP_GAUSS_POINTS"), &cfg.GaussPoints); err != nil {
		return err
	}

	s.setStringsFromString("methods", os.Getenv("QUADSWEEP_METHODS"), &cfg.Methods)
	s.setBoolFromString("table", os.Getenv("QUADSWEEP_TABLE"), &cfg.Table)
	s.setBoolFromString("label-used", os.Getenv("QUADSWEEP_LABEL_USED"), &cfg.LabelUsed)

	return nil
}
