//go:build linux

package mmio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	fpgaerrors "github.com/wippyai/fpgaio/errors"
)

func TestOpenDevMem_MissingDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem")
	_, err := OpenDevMem(path, 0xC002_0000, 64)
	if !errors.Is(err, fpgaerrors.ErrDeviceOpenFailed) {
		t.Fatalf("error = %v, want device open failed", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap the open failure: %v", err)
	}
}

func TestOpenDevMem_Misaligned(t *testing.T) {
	_, err := OpenDevMem("/dev/mem", 0xC002_0001, 64)
	if !errors.Is(err, fpgaerrors.ErrMapFailed) {
		t.Fatalf("error = %v, want map failed", err)
	}
}

// A regular file stands in for the device; the mapping code path is identical.
func TestOpenDevMem_RegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem")
	if err := os.WriteFile(path, make([]byte, os.Getpagesize()), 0o600); err != nil {
		t.Fatal(err)
	}

	d, err := OpenDevMem(path, 0, 64)
	if err != nil {
		t.Fatalf("OpenDevMem: %v", err)
	}
	if d.Size() != 64 || d.Base() != 0 {
		t.Errorf("Size() = %d, Base() = %d", d.Size(), d.Base())
	}

	if err := d.Write(8, []byte{0x00, 0x00, 0x00, 0xFE}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := d.Read(8, 4)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(got, []byte{0x00, 0x00, 0x00, 0xFE}) {
		t.Errorf("Read = % X", got)
	}
	if _, err := d.Read(62, 4); !errors.Is(err, fpgaerrors.ErrOutOfRange) {
		t.Errorf("Read past span = %v, want out of range", err)
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := d.Read(0, 4); !errors.Is(err, fpgaerrors.ErrClosed) {
		t.Errorf("Read after Close = %v, want closed", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if contents[11] != 0xFE {
		t.Error("write did not reach the shared mapping")
	}
}
