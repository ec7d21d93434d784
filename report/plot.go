package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"

	"github.com/katalvlaran/lvquad/sweep"
)

// formats lists the extensions plot.Plot.Save understands.
var formats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tex": true, "tif": true, "tiff": true,
}

// NewPlot builds the log–log chart without writing it.
//
// Stages:
//  1. Collect the positive-error points of every curve.
//  2. Add one line+marker series per non-empty curve, styled by index.
//  3. Configure logarithmic axes, grid and legend.
//
// Returns ErrNoData when no curve keeps a point.
func NewPlot(fig Figure, curves []sweep.Curve, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	p.Add(plotter.NewGrid())

	series := 0
	for i, c := range curves {
		// Stage 1: positive errors only
		xys := plottable(c, opts.UseEffective)
		if len(xys) == 0 {
			continue
		}

		// Stage 2: one series per curve
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("report: %s curve: %w", c.Method, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(c.Method.Label(), line, points)
		series++
	}
	if series == 0 {
		return nil, ErrNoData
	}

	// Stage 3: axes
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	return p, nil
}

// SavePlot renders curves to path; the extension picks the format.
func SavePlot(path string, fig Figure, curves []sweep.Curve, opts Options) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	p, err := NewPlot(fig, curves, opts)
	if err != nil {
		return err
	}

	w, h := fig.Width, fig.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	if err = p.Save(w, h, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}

// plottable returns the (x, error) pairs of c that a log axis can show.
func plottable(c sweep.Curve, effective bool) plotter.XYs {
	xs := c.Resolutions(effective)
	xys := make(plotter.XYs, 0, len(c.Points))
	for i, pt := range c.Points {
		if pt.AbsError > 0 && xs[i] > 0 {
			xys = append(xys, plotter.XY{X: xs[i], Y: pt.AbsError})
		}
	}

	return xys
}
