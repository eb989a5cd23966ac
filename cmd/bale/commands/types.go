package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported package types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, eco := range c.app.Types() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), eco)
			}
		},
	}
}
