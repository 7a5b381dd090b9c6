//go:build !linux

package mmio

import (
	"os"

	"github.com/wippyai/fpgaio"
	"github.com/wippyai/fpgaio/errors"
)

var _ fpgaio.Window = (*DevMem)(nil)

// DevMem is unavailable outside linux; OpenDevMem always fails.
type DevMem struct{}

// OpenDevMem reports that physical memory mapping is not supported.
func OpenDevMem(path string, base int64, span uint32) (*DevMem, error) {
	if err := checkGeometry(base, span, os.Getpagesize()); err != nil {
		return nil, err
	}
	return nil, errors.New(errors.PhaseMap, errors.KindMapFailed).
		Detail("mapping %s is only supported on linux", path).
		Build()
}

func (d *DevMem) Base() int64 { return 0 }

func (d *DevMem) Read(offset, length uint32) ([]byte, error) {
	return nil, errors.Closed(errors.PhaseRead, "device window")
}

func (d *DevMem) Write(offset uint32, data []byte) error {
	return errors.Closed(errors.PhaseWrite, "device window")
}

func (d *DevMem) Size() uint32 { return 0 }

func (d *DevMem) Close() error { return nil }
