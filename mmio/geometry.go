package mmio

import "github.com/wippyai/fpgaio/errors"

// checkGeometry validates a physical window before any system call is made.
func checkGeometry(base int64, span uint32, pageSize int) error {
	if span == 0 {
		return errors.New(errors.PhaseMap, errors.KindMapFailed).
			Value(span).
			Detail("span must be positive").
			Build()
	}
	if base < 0 || pageSize <= 0 || base%int64(pageSize) != 0 {
		return errors.New(errors.PhaseMap, errors.KindMapFailed).
			Value(base).
			Detail("base 0x%X is not aligned to page size %d", base, pageSize).
			Build()
	}
	return nil
}
