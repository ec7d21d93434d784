// Package logging builds the zerolog loggers used by quadsweep.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvquad/quadrature"
	"github.com/katalvlaran/lvquad/sweep"
)

// New returns a console logger at the named level writing to w (nil ⇒ os.Stderr).
// Colour is enabled only when w is a terminal.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !terminal(w),
	}

	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}

// Console returns an info-level stderr logger; used before configuration is known.
func Console() zerolog.Logger {
	log, _ := New(os.Stderr, zerolog.InfoLevel.String())
	return log
}

// PointHook returns a sweep.Options.OnPoint hook that logs each point at debug level.
func PointHook(log zerolog.Logger) func(quadrature.Method, sweep.Point) {
	return func(m quadrature.Method, p sweep.Point) {
		log.Debug().
			Str("method", m.String()).
			Int("resolution", p.Resolution).
			Int("used", p.Used).
			Float64("estimate", p.Estimate).
			Float64("abs_error", p.AbsError).
			Msg("sweep point")
	}
}

func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
