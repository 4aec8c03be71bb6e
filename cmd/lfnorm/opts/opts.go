package opts

import (
	"github.com/rs/zerolog"
	"github.com/walteh/lfnorm/pkg/config"
	"github.com/walteh/lfnorm/pkg/log"
)

// RootOpts contains everything a run needs once flags and config are resolved
type RootOpts struct {
	Config    *config.Config
	Directory string
	Logger    *log.Logger
	ZLog      zerolog.Logger
}
