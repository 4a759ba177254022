package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewShowCmd returns the show command.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print metadata.json version information",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			s, err := newStore(cc)
			if err != nil {
				return err
			}

			doc, err := s.Read()
			if err != nil {
				return err
			}

			fmt.Fprintf(cc.OutOrStdout(), "Current version: %s (%s)\n", doc.DisplayVersion(), doc.VersionName())

			return nil
		},
		SilenceUsage: true,
	}
}
