package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/fpgaio/binding"
	"github.com/wippyai/fpgaio/config"
	fpgaerrors "github.com/wippyai/fpgaio/errors"
	"github.com/wippyai/fpgaio/session"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Log
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"console info", config.Log{Level: "info", Encoding: "console"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{"json warn", config.Log{Level: "warn", Encoding: "json"}, zapcore.WarnLevel, zapcore.InfoLevel},
		{"debug", config.Log{Level: "debug", Encoding: "console"}, zapcore.DebugLevel, zapcore.DebugLevel - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if !l.Core().Enabled(tt.enabled) {
				t.Errorf("%s not enabled", tt.enabled)
			}
			if l.Core().Enabled(tt.muted) {
				t.Errorf("%s should be muted", tt.muted)
			}
		})
	}
}

func TestNewRejects(t *testing.T) {
	for _, cfg := range []config.Log{
		{Level: "loud", Encoding: "console"},
		{Level: "info", Encoding: "xml"},
	} {
		if _, err := New(cfg); !errors.Is(err, fpgaerrors.ErrInvalidInput) {
			t.Errorf("New(%+v) = %v, want invalid input", cfg, err)
		}
	}
}

func TestInstall(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Install(zap.New(core))
	defer func() {
		session.SetLogger(nil)
		binding.SetLogger(nil)
	}()

	session.Logger().Info("from session")
	binding.Logger().Info("from binding")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].LoggerName != "session" || entries[1].LoggerName != "binding" {
		t.Errorf("logger names = %q, %q", entries[0].LoggerName, entries[1].LoggerName)
	}
}
