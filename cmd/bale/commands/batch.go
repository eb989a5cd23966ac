package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/bale/internal/app"
	"go.trai.ch/bale/internal/core/domain"
)

func (c *CLI) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Bundle every package listed in a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			jobs, _ := cmd.Flags().GetInt("jobs")
			failFast, _ := cmd.Flags().GetBool("fail-fast")

			manifest, err := c.app.LoadManifest(file)
			if err != nil {
				return err
			}

			results, err := c.app.BundleBatch(cmd.Context(), manifest, app.BatchOptions{
				Jobs:     jobs,
				FailFast: failFast,
			})
			for _, res := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s@%s\t%d files\t%s\n",
					res.Ecosystem, res.Name, res.Version, len(res.Files), res.OutputDir)
			}
			return err
		},
	}

	cmd.Flags().StringP("file", "f", domain.ManifestFileName, "Path to the batch manifest")
	cmd.Flags().IntP("jobs", "j", 1, "Number of bundles to produce concurrently")
	cmd.Flags().Bool("fail-fast", false, "Stop scheduling bundles after the first failure")

	return cmd
}
