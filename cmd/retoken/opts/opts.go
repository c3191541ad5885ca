package opts

import (
	"github.com/spf13/afero"
	"github.com/walteh/retoken/pkg/config"
)

// RootOpts contains shared options used by all commands. The console
// logger travels on the command context (see log.FromContext).
type RootOpts struct {
	Config *config.Config
	Fs     afero.Fs
}
