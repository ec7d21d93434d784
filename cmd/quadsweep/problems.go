package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvquad/integrand"
)

func newProblemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the integrand catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range integrand.Names() {
				p, err := integrand.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-6s  %-28s  exact=%.17g\n", p.Name, p.Title, p.Exact)
			}
			return nil
		},
	}
}
