// Package logger builds the zap loggers used by the command.  Logs are
// diagnostics only; user-facing errors are written to stderr directly.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level   zapcore.Level
	Mode    FileMode
	Path    string
	DevMode bool
}

func New(conf Config) (*zap.Logger, error) {
	if conf.Path == "" {
		return zap.NewNop(), nil
	}
	w, err := OpenFile(conf.Path, conf.Mode)
	if err != nil {
		return nil, err
	}
	var opts []zap.Option
	if conf.DevMode {
		opts = append(opts, zap.Development())
	}
	core := zapcore.NewCore(newEncoder(conf.DevMode), w, conf.Level)
	return zap.New(core, opts...), nil
}

func newEncoder(dev bool) zapcore.Encoder {
	if dev {
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	conf := zap.NewProductionEncoderConfig()
	conf.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(conf)
}
