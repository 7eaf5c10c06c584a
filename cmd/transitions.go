package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vconcat/cli/engine"
)

func newTransitionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transitions",
		Short: "List known transition effects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-18s %s\n", "NAME", "XFADE")
			for _, t := range engine.Transitions {
				xfade := t.Xfade
				if xfade == "" {
					xfade = "(fade)"
				}
				fmt.Fprintf(out, "%-18s %s\n", t.Name, xfade)
			}
			return nil
		},
	}
}
