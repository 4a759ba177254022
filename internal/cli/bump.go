package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewBumpCmd returns the bump command.
func NewBumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bump",
		Short: "Increase the integer version in metadata.json by one",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			s, err := newStore(cc)
			if err != nil {
				return err
			}

			b, err := s.Bump()
			if err != nil {
				return err
			}

			fmt.Fprintf(cc.OutOrStdout(), "Version bumped from %s to %s\n", b.From.String(), b.To.String())

			return nil
		},
		SilenceUsage: true,
	}
}
