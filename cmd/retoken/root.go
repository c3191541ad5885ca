package main

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/retoken/cmd/retoken/commands"
	"github.com/walteh/retoken/cmd/retoken/opts"
	"github.com/walteh/retoken/pkg/config"
	"github.com/walteh/retoken/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	debugFlag bool
)

// newRootCmd creates the retoken command tree. The root command takes no
// arguments and performs the run.
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "retoken",
		Short: "Rename design-system color tokens in component files",
		Long: `retoken rewrites every .tsx file under ./components, replacing the blue
palette color classes with their green palette counterparts.
Only files whose content changes are written back.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr())

			o, err := newRootOpts(ctx)
			if err != nil {
				return err
			}
			*rootOpts = *o

			console := log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx))
			cmd.SetContext(log.NewContext(ctx, console))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Run(cmd.Context(), rootOpts)
		},
	}

	addRootFlags(cmd)

	cmd.AddCommand(
		commands.NewTableCmd(rootOpts),
		newVersionCmd(rootOpts),
	)

	return cmd
}

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	return &opts.RootOpts{
		Config: cfg,
		Fs:     afero.NewOsFs(),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and tags the run with an id
func setupLogging(ctx context.Context, stderr io.Writer) context.Context {
	level := zerolog.InfoLevel
	if debugFlag {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	zerolog.DefaultContextLogger = &logger

	return logger.WithContext(ctx)
}
