package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List target definitions with their dependency counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := c.app.Build(cmd.Context(), c.options())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for td, deps := range idx.Cache.All() {
				suffix := ""
				if td.IsAbstract() {
					suffix = " (abstract)"
				}
				_, _ = fmt.Fprintf(out, "%s\t%d%s\n", td.Label(), len(deps), suffix)
			}
			return nil
		},
	}
}
