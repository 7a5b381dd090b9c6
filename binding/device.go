package binding

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/fpgaio/mmio"
	"github.com/wippyai/fpgaio/session"
)

// Device locates a register window in physical memory.
type Device struct {
	Path string
	Base int64
	Span uint32
}

// OpenDevice maps the device window and builds a session over it. Startup
// failures are returned, never fatal: DeviceOpenFailed when the device cannot
// be opened, MapFailed for bad geometry or a failed mmap, and a Hook error
// when the Initialize hook fails, in which case the mapping is released.
func OpenDevice(dev Device, opts ...session.Option) (*session.Session, error) {
	log := Logger().With(
		zap.String("device", dev.Path),
		zap.String("base", fmt.Sprintf("0x%X", dev.Base)),
		zap.Uint32("span", dev.Span),
	)

	w, err := mmio.OpenDevMem(dev.Path, dev.Base, dev.Span)
	if err != nil {
		log.Error("map register window", zap.Error(err))
		return nil, err
	}

	s, err := session.New(w, opts...)
	if err != nil {
		log.Error("start session", zap.Error(err))
		return nil, err
	}
	log.Info("register window mapped", zap.Stringer("session", s.ID()))
	return s, nil
}
