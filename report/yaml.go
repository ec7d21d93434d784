package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvquad/sweep"
)

// Summary is the YAML document written after a sweep.
type Summary struct {
	RunID   string         `yaml:"run_id"`
	Problem string         `yaml:"problem"`
	A       float64        `yaml:"a"`
	B       float64        `yaml:"b"`
	Exact   float64        `yaml:"exact"`
	Digits  int            `yaml:"digits"`
	Odd     string         `yaml:"odd_policy"`
	Curves  []CurveSummary `yaml:"curves"`
}

// CurveSummary condenses one curve. Slope is omitted when it cannot be fit.
type CurveSummary struct {
	Method string        `yaml:"method"`
	Slope  *float64      `yaml:"slope,omitempty"`
	Best   *sweep.Point  `yaml:"best,omitempty"`
	Points []sweep.Point `yaml:"points"`
}

// Summarize fills the per-curve part of a Summary.
func Summarize(curves []sweep.Curve) []CurveSummary {
	out := make([]CurveSummary, len(curves))
	for i, c := range curves {
		cs := CurveSummary{Method: c.Method.String(), Points: c.Points}
		if beta, ok := c.Slope(); ok {
			cs.Slope = &beta
		}
		if best, ok := c.Best(); ok {
			cs.Best = &best
		}
		out[i] = cs
	}

	return out
}

// WriteYAML encodes s with two-space indentation.
func WriteYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}

	return enc.Close()
}
