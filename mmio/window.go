package mmio

import "github.com/wippyai/fpgaio/errors"

// bounds checks that [offset, offset+length) lies inside span.
func bounds(phase errors.Phase, offset uint32, length int, span uint32) error {
	if uint64(offset)+uint64(length) > uint64(span) {
		return errors.OutOfRange(phase, "", offset, length, span)
	}
	return nil
}

// clone returns a copy of b that does not alias the window.
func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
