package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipflowpro/clipver/internal/version"
)

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the clipver CLI",
		Run: func(cc *cobra.Command, _ []string) {
			fmt.Fprintln(cc.OutOrStdout(), version.String())
		},
	}
}
