package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/internal/cliconfig"
	"github.com/katalvlaran/lvquad/legendre"
)

func newNodesCmd() *cobra.Command {
	var (
		points int
		digits int
		seed   string
	)

	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "Print Gauss–Legendre nodes and weights on [-1, 1]",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cliconfig.DefaultConfig()
			cfg.Seed = seed
			cfg.Digits = digits
			cfg.GaussPoints = []int{points}
			if err := cfg.Validate(); err != nil {
				return err
			}

			rule, err := legendre.NewCalculator(cfg.LegendreOptions()).Rule(points, digits)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# P=%d digits=%d prec=%d bits\n", rule.Points, rule.Digits, rule.Prec)
			for i := range rule.Nodes {
				fmt.Fprintf(out, "%s\t%s\n", rule.Nodes[i].Text('g', digits), rule.Weights[i].Text('g', digits))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&points, "points", 5, "number of nodes")
	f.IntVar(&digits, "digits", 30, "decimal digits")
	f.StringVar(&seed, "seed", cliconfig.SeedGonum, "root seeder: gonum or jacobi")

	return cmd
}
