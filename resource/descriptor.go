package resource

import (
	"strconv"

	"github.com/wippyai/fpgaio/errors"
)

// Capability is the access permitted on a register.
type Capability uint8

const (
	ReadOnly Capability = iota + 1
	WriteOnly
	ReadWrite
)

func (c Capability) String() string {
	switch c {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	default:
		return "capability(" + strconv.Itoa(int(c)) + ")"
	}
}

// CanRead reports whether the capability permits reads.
func (c Capability) CanRead() bool { return c == ReadOnly || c == ReadWrite }

// CanWrite reports whether the capability permits writes.
func (c Capability) CanWrite() bool { return c == WriteOnly || c == ReadWrite }

// Descriptor is the immutable geometry of a register.
type Descriptor struct {
	Name       string
	Type       string
	Offset     uint32
	Width      int
	Capability Capability
}

// String renders the descriptor for diagnostics.
func (d Descriptor) String() string {
	return d.Name + " at byte offset " + strconv.FormatUint(uint64(d.Offset), 10)
}

// End returns the first byte offset past the register window.
func (d Descriptor) End() uint64 {
	return uint64(d.Offset) + uint64(d.Width)
}

// Fits reports whether [Offset, Offset+Width) lies inside a window of span bytes.
func (d Descriptor) Fits(span uint32) bool {
	return d.End() <= uint64(span)
}

// Check returns an OutOfRange error when the register does not fit in span.
func (d Descriptor) Check(phase errors.Phase, span uint32) error {
	if d.Fits(span) {
		return nil
	}
	return errors.New(phase, errors.KindOutOfRange).
		Resource(d.Name).
		Type(d.Type).
		Value(d.Offset).
		Detail("window [%d, %d) exceeds span %d", d.Offset, d.End(), span).
		Build()
}
