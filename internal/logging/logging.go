// Package logging builds the process logger from configuration and installs
// it in every package that logs.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/fpgaio/binding"
	"github.com/wippyai/fpgaio/config"
	"github.com/wippyai/fpgaio/errors"
	"github.com/wippyai/fpgaio/session"
)

// New builds a zap logger writing to stderr.
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log level")
	}

	var zc zap.Config
	switch cfg.Encoding {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.Development = false
	default:
		return nil, errors.InvalidInput(errors.PhaseConfig, "unknown log encoding "+cfg.Encoding)
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "build logger")
	}
	return l, nil
}

// Install makes l the logger of the session and binding packages.
func Install(l *zap.Logger) {
	session.SetLogger(l.Named("session"))
	binding.SetLogger(l.Named("binding"))
}

// Setup builds the logger for cfg and installs it. The returned function
// flushes buffered entries.
func Setup(cfg config.Log) (*zap.Logger, func(), error) {
	l, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	Install(l)
	return l, func() { _ = l.Sync() }, nil
}
