package report

import (
	"errors"

	"gonum.org/v1/plot/vg"
)

// Sentinel errors.
var (
	// ErrNoData indicates that no curve has a plottable point.
	ErrNoData = errors.New("report: no plottable points")

	// ErrUnknownFormat indicates a plot path whose extension gonum/plot cannot write.
	ErrUnknownFormat = errors.New("report: unsupported plot format")
)

// Default chart size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Figure holds chart labels and size. Zero sizes fall back to the defaults.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultFigure returns the labels used by the CLI.
func DefaultFigure(title string) Figure {
	return Figure{
		Title:  title,
		XLabel: "resolution (N or P)",
		YLabel: "absolute error",
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Options tunes every renderer in this package.
type Options struct {
	// UseEffective selects Point.Used over Point.Resolution as the x value.
	UseEffective bool
}
