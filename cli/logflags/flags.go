package logflags

import (
	"flag"

	"github.com/brimdata/zcut/cuterr"
	"github.com/brimdata/zcut/pkg/logger"
	"go.uber.org/zap"
)

type Flags struct {
	Config logger.Config
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.Config.DevMode, "log.devmode", false, "human-readable log lines (dpanic level logs panic)")
	f.Config.Level = zap.InfoLevel
	fs.Var(&f.Config.Level, "log.level", "zcut logging level (per-operand progress is logged at debug)")
	fs.StringVar(&f.Config.Path, "log.path", "stderr", "where zcut writes its log (values: stderr, /dev/null, path in file system)")
	f.Config.Mode = logger.FileModeTruncate
	fs.Var(&f.Config.Mode, "log.filemode", "log file write mode (values: append, truncate, rotate)")
}

// Init rejects log destinations that would interleave with cut output or
// that cannot be rotated.
func (f *Flags) Init() error {
	switch f.Config.Path {
	case "stdout", "/dev/stdout":
		return cuterr.ErrInvalid("-log.path: standard output is reserved for zcut output")
	case "stderr", "/dev/null":
		if f.Config.Mode == logger.FileModeRotate {
			return cuterr.ErrInvalid("-log.filemode: rotate requires a log file, not %s", f.Config.Path)
		}
	}
	return nil
}

func (f *Flags) Open() (*zap.Logger, error) {
	return logger.New(f.Config)
}
