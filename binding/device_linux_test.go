//go:build linux

package binding

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/fpgaio/codec"
	fpgaerrors "github.com/wippyai/fpgaio/errors"
	"github.com/wippyai/fpgaio/resource"
	"github.com/wippyai/fpgaio/session"
)

func fakeDevice(t *testing.T) Device {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mem")
	if err := os.WriteFile(path, make([]byte, os.Getpagesize()), 0o600); err != nil {
		t.Fatal(err)
	}
	return Device{Path: path, Base: 0, Span: 64}
}

func TestOpenDevice(t *testing.T) {
	dev := fakeDevice(t)
	reg := resource.NewReadWrite("scratch", 60, codec.U32)

	s, err := OpenDevice(dev)
	if err != nil {
		t.Fatalf("OpenDevice: %v", err)
	}
	if s.Span() != 64 || s.State() != session.Active {
		t.Fatalf("span %d, state %v", s.Span(), s.State())
	}
	if err := session.Write(s, reg, 0xCAFEF00D); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	contents, err := os.ReadFile(dev.Path)
	if err != nil {
		t.Fatal(err)
	}
	if got := contents[60:64]; got[0] != 0x0D || got[3] != 0xCA {
		t.Errorf("device bytes = % X, want little-endian 0xCAFEF00D", got)
	}
}

func TestOpenDevice_InitializeFailure(t *testing.T) {
	dev := fakeDevice(t)
	var captured *session.Session
	cause := errors.New("self test failed")

	s, err := OpenDevice(dev, session.WithHooks(session.Hooks{
		Initialize: func(s *session.Session) error {
			captured = s
			return cause
		},
	}))
	if s != nil {
		t.Error("session returned despite failed hook")
	}
	if !errors.Is(err, fpgaerrors.ErrHook) || !errors.Is(err, cause) {
		t.Errorf("error = %v, want hook error wrapping cause", err)
	}
	if captured == nil || captured.State() != session.Closed {
		t.Error("mapping was not released")
	}
}
