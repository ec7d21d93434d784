package report_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvquad/quadrature"
	"github.com/katalvlaran/lvquad/report"
	"github.com/katalvlaran/lvquad/sweep"
)

// fixture returns two small curves; the gauss curve has one exact point.
func fixture() []sweep.Curve {
	return []sweep.Curve{
		{Method: quadrature.SimpsonRule, Points: []sweep.Point{
			{Resolution: 7, Used: 8, Estimate: 2.000269, AbsError: 2.69e-4},
			{Resolution: 16, Used: 16, Estimate: 2.0000166, AbsError: 1.66e-5},
		}},
		{Method: quadrature.Gaussian, Points: []sweep.Point{
			{Resolution: 2, Used: 2, Estimate: 1.9358, AbsError: 6.42e-2},
			{Resolution: 16, Used: 16, Estimate: 2, AbsError: 0},
		}},
	}
}

// TestSavePlot_Formats writes png and svg files and rejects unknown extensions.
func TestSavePlot_Formats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"curves.png", "curves.svg", "curves.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, report.SavePlot(path, report.DefaultFigure("sine"), fixture(), report.Options{}), name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), name)
	}

	err := report.SavePlot(filepath.Join(dir, "curves.bmp"), report.Figure{}, fixture(), report.Options{})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

// TestNewPlot_DropsZeroErrors verifies the empty-chart guard.
func TestNewPlot_DropsZeroErrors(t *testing.T) {
	p, err := report.NewPlot(report.DefaultFigure("x"), fixture(), report.Options{UseEffective: true})
	require.NoError(t, err)
	assert.Equal(t, "x", p.Title.Text)

	exact := []sweep.Curve{{Method: quadrature.Gaussian, Points: []sweep.Point{{Resolution: 4, Used: 4, Estimate: 1}}}}
	_, err = report.NewPlot(report.Figure{}, exact, report.Options{})
	assert.ErrorIs(t, err, report.ErrNoData)

	_, err = report.NewPlot(report.Figure{}, nil, report.Options{})
	assert.ErrorIs(t, err, report.ErrNoData)
}

// TestNewPlot_LegendUsesMethodLabels renders to SVG and looks for the labels.
func TestNewPlot_LegendUsesMethodLabels(t *testing.T) {
	p, err := report.NewPlot(report.DefaultFigure("sine"), fixture(), report.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, "svg")
	require.NoError(t, err)
	_, err = wt.WriteTo(&buf)
	require.NoError(t, err)

	svg := buf.String()
	assert.Contains(t, svg, quadrature.Gaussian.Label())
	assert.Contains(t, svg, "Simpson")
	assert.NotContains(t, svg, ">gauss<")
}

// TestWriteCSV checks header, row order and round-trippable floats.
func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, fixture()))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 5)
	assert.Equal(t, report.CSVHeader, recs[0])
	assert.Equal(t, []string{"simpson", "7", "8", "2.000269", "0.000269"}, recs[1])
	assert.Equal(t, []string{"gauss", "16", "16", "2", "0"}, recs[4])
}

// TestWriteYAML checks the summary document shape.
func TestWriteYAML(t *testing.T) {
	s := report.Summary{
		RunID:   "run-1",
		Problem: "sine",
		B:       3.5,
		Exact:   2,
		Digits:  40,
		Odd:     sweep.OddBump.String(),
		Curves:  report.Summarize(fixture()),
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, s))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "run-1", doc["run_id"])
	assert.Equal(t, "bump", doc["odd_policy"])
	assert.Equal(t, 40, doc["digits"])

	curves, ok := doc["curves"].([]any)
	require.True(t, ok)
	require.Len(t, curves, 2)

	simp := curves[0].(map[string]any)
	assert.Equal(t, "simpson", simp["method"])
	assert.Contains(t, simp, "slope")
	best := simp["best"].(map[string]any)
	assert.Equal(t, 16, best["resolution"])

	gauss := curves[1].(map[string]any)
	assert.NotContains(t, gauss, "slope", "one positive error cannot be fit")
	assert.Equal(t, 16, gauss["best"].(map[string]any)["resolution"])
}

// TestTable lists every point.
func TestTable(t *testing.T) {
	out := report.Table(fixture(), report.Options{})
	for _, want := range []string{"METHOD", "simpson", "gauss", "2.690e-04", "0.000e+00"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, " 7 ")

	eff := report.Table(fixture()[:1], report.Options{UseEffective: true})
	assert.NotContains(t, eff, " 7 ")
}
