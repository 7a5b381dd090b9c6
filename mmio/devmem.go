//go:build linux

package mmio

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/wippyai/fpgaio"
	"github.com/wippyai/fpgaio/errors"
)

var _ fpgaio.Window = (*DevMem)(nil)

// DevMem is a register window mapped from a physical memory device.
type DevMem struct {
	mem  []byte
	base int64
}

// OpenDevMem maps span bytes of path at physical address base. The device
// file is closed once the mapping exists.
func OpenDevMem(path string, base int64, span uint32) (*DevMem, error) {
	if err := checkGeometry(base, span, unix.Getpagesize()); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, errors.DeviceOpenFailed(path, err)
	}
	defer f.Close()

	mem, err := unix.Mmap(int(f.Fd()), base, int(span), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.MapFailed(base, int(span), err)
	}
	return &DevMem{mem: mem, base: base}, nil
}

// Base returns the physical address of the window.
func (d *DevMem) Base() int64 {
	return d.base
}

// Read returns a copy of length bytes at offset.
func (d *DevMem) Read(offset, length uint32) ([]byte, error) {
	if d.mem == nil {
		return nil, errors.Closed(errors.PhaseRead, "device window")
	}
	if err := bounds(errors.PhaseRead, offset, int(length), d.Size()); err != nil {
		return nil, err
	}
	return clone(d.mem[offset : offset+length]), nil
}

// Write stores data at offset.
func (d *DevMem) Write(offset uint32, data []byte) error {
	if d.mem == nil {
		return errors.Closed(errors.PhaseWrite, "device window")
	}
	if err := bounds(errors.PhaseWrite, offset, len(data), d.Size()); err != nil {
		return err
	}
	copy(d.mem[offset:], data)
	return nil
}

// Size returns the mapped span, or zero once closed.
func (d *DevMem) Size() uint32 {
	return uint32(len(d.mem))
}

// Close unmaps the window. Repeated calls are no-ops.
func (d *DevMem) Close() error {
	if d.mem == nil {
		return nil
	}
	mem := d.mem
	d.mem = nil
	if err := unix.Munmap(mem); err != nil {
		return errors.Wrap(errors.PhaseFinalize, errors.KindMapFailed, err, "munmap")
	}
	return nil
}
