package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Index the manifest and record a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := c.app.Index(cmd.Context(), c.options())
			if err != nil {
				return err
			}

			status := "unchanged"
			if idx.Changed {
				status = "changed"
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "manifest:     %s\n", idx.Manifest.Path())
			_, _ = fmt.Fprintf(out, "targets:      %d\n", idx.Cache.Len())
			_, _ = fmt.Fprintf(out, "dependencies: %d\n", len(idx.Cache.AllDependencies()))
			_, _ = fmt.Fprintf(out, "fingerprint:  %s (%s)\n", idx.Fingerprint, status)
			return nil
		},
	}
}
