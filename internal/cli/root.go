package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/clipflowpro/clipver/internal/version"
	"github.com/clipflowpro/clipver/pkg/log"
	"github.com/clipflowpro/clipver/pkg/metadata"
	"github.com/clipflowpro/clipver/pkg/paths"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrMissingCommand   = errors.New("a command is required")
)

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
		RunE: func(cc *cobra.Command, _ []string) error {
			return fmt.Errorf("%w: see '%s --help'", ErrMissingCommand, cc.CommandPath())
		},
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringP("metadata", "m", "",
		"Path to metadata.json (default: metadata.json in the parent of the executable's directory)")

	if err := cmd.MarkPersistentFlagFilename("metadata", "json"); err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewBumpCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// newStore returns a [metadata.Store] for the path selected by the metadata
// flag.
func newStore(cc *cobra.Command) (*metadata.Store, error) {
	explicit, err := cc.Flags().GetString("metadata")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	path, err := paths.ResolveMetadata(explicit)
	if err != nil {
		return nil, fmt.Errorf("resolve metadata path: %w", err)
	}

	slog.Debug("resolved metadata path", slog.String("path", path))

	return metadata.NewStore(path), nil
}
