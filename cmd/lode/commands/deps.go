package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/lode/internal/core/domain"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps [target]",
		Short: "List dependencies of the whole manifest or of one target",
		Long: "Without arguments, lists every distinct dependency in the manifest in first-seen order.\n" +
			"With a target name or label, lists the dependencies that apply to that target.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := c.app.Build(cmd.Context(), c.options())
			if err != nil {
				return err
			}

			deps := idx.Cache.AllDependencies()
			if len(args) == 1 {
				_, deps, err = c.app.Lookup(idx, args[0])
				if err != nil {
					return err
				}
			}

			printDependencies(cmd, deps)
			return nil
		},
	}
}

func printDependencies(cmd *cobra.Command, deps []domain.Dependency) {
	out := cmd.OutOrStdout()
	for _, dep := range deps {
		_, _ = fmt.Fprintln(out, dep.String())
	}
}
