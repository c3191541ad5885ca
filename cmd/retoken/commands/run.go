package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/retoken/cmd/retoken/opts"
	"github.com/walteh/retoken/pkg/log"
	"github.com/walteh/retoken/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// Run rewrites the configured root and prints the summary. The summary is
// only printed when every file was processed.
func Run(ctx context.Context, o *opts.RootOpts) error {
	logger := zerolog.Ctx(ctx)
	console := log.FromContext(ctx)
	logger.Debug().Stringer("config", o.Config).Msg("starting retoken")

	for _, c := range o.Config.Table.Conflicts() {
		logger.Debug().Str("kind", c.Kind.String()).Msg(o.Config.Table.Describe(c))
	}

	replacer, err := operation.New(operation.Options{
		Fs:        o.Fs,
		Table:     o.Config.Table,
		Extension: o.Config.Extension,
		Console:   console,
	})
	if err != nil {
		return errors.Errorf("creating replacer: %w", err)
	}

	summary, err := replacer.Run(ctx, o.Config.Root)
	if err != nil {
		return errors.Errorf("updating %s: %w", o.Config.Root, err)
	}

	console.Total(summary.Updated)
	return nil
}
