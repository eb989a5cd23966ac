package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bale/internal/core/domain"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle <name> [flags] [-- extra tool args]",
		Short: "Bundle a package and its dependencies into a directory",
		Long: `Bundle downloads a package and everything it depends on into a directory
that can be carried to an air-gapped host and installed there.

Arguments after "--" are passed to the underlying package manager unchanged.
Credentials may also be provided through BALE_USERNAME and BALE_PASSWORD.`,
		Example: `  bale bundle express -v 4.18.2 -t npm
  bale bundle requests -t pip -r https://nexus.local/repository/pypi/simple -- --no-binary :all:
  bale bundle nginx -v 1.25 -t docker -o ./images`,
		Args: func(cmd *cobra.Command, args []string) error {
			positional := args
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				positional = args[:dash]
			}
			return cobra.ExactArgs(1)(cmd, positional)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.BundleRequest{Name: args[0]}
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				req.ExtraArgs = args[dash:]
			}

			req.Version, _ = cmd.Flags().GetString("version")
			req.Ecosystem, _ = cmd.Flags().GetString("type")
			req.RepositoryURL, _ = cmd.Flags().GetString("repository")
			req.Credentials.Username, _ = cmd.Flags().GetString("username")
			req.Credentials.Password, _ = cmd.Flags().GetString("password")
			req.OutputDir, _ = cmd.Flags().GetString("output")

			_, err := c.app.Bundle(cmd.Context(), req)
			return err
		},
	}

	cmd.Flags().StringP("version", "v", "", "Package version (default: latest)")
	cmd.Flags().StringP("type", "t", "", "Package type: npm, pip, nuget, apk or docker")
	cmd.Flags().StringP("repository", "r", "", "Custom repository or registry URL")
	cmd.Flags().StringP("username", "u", "", "Repository username")
	cmd.Flags().StringP("password", "p", "", "Repository password")
	cmd.Flags().StringP("output", "o", "", "Output directory (default: bundles/<name>-<version>-bundle)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
