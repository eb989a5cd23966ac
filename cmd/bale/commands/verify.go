package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <bundle-dir>",
		Short: "Check a bundle against the record written when it was created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Verify(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range report.Missing {
				_, _ = fmt.Fprintf(out, "missing\t%s\n", f)
			}
			for _, f := range report.Added {
				_, _ = fmt.Fprintf(out, "added\t%s\n", f)
			}

			if !report.Intact() {
				err := zerr.With(zerr.Wrap(domain.ErrBundleModified, "verification failed"), "path", args[0])
				return zerr.With(err, "fingerprint", report.Current.Fingerprint)
			}
			return nil
		},
	}
}
