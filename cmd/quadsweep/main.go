package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/internal/logging"
)

const longHelp = `quadsweep measures how fast quadrature errors shrink.

It integrates a catalogue problem with the composite trapezoidal rule, the
composite Simpson rule and arbitrary-precision Gauss–Legendre, sweeps each
over increasing resolutions, and reports |estimate - exact| per point as a
table, CSV, YAML summary or log–log chart.

Configure via flags, QUADSWEEP_* environment variables or
$HOME/.quadsweep/config.toml (flags > env > file > defaults).`

var exampleUsage = strings.TrimSpace(`
  quadsweep sweep --problem sine --plot sine.png
  quadsweep sweep --problem spike --max-n 5120 --csv spike.csv
  quadsweep integrate --problem runge --method gauss --n 64
  quadsweep nodes --points 5 --digits 30 --seed jacobi
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// newRootCmd wires every subcommand; tests drive it with SetArgs.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quadsweep",
		Short:         "Compare quadrature error convergence",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSweepCmd(),
		newIntegrateCmd(),
		newNodesCmd(),
		newProblemsCmd(),
	)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log := logging.Console()
		log.Error().Err(err).Msg("quadsweep")
		stop()
		os.Exit(1)
	}
}
