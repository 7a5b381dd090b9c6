package pointnn

import (
	"github.com/wippyai/fpgaio/codec"
	"github.com/wippyai/fpgaio/fixed"
	"github.com/wippyai/fpgaio/resource"
	"github.com/wippyai/fpgaio/session"
)

// Register map of the accelerator.
const (
	DevicePath        = "/dev/mem"
	BaseAddr          = 0xC002_0000
	Span              = 64
	InputVectorOffset = 0
	OutputClassOffset = 8
)

// Point is an (x, y) input coordinate.
type Point = codec.Pair[fixed.I7F25]

var (
	// InputVector holds the point to classify. It reads back what was written.
	InputVector = resource.NewReadWrite("Input Points", InputVectorOffset, codec.FixedPair)

	// OutputClass holds the classification of the current input: +1 or -1.
	OutputClass = resource.NewReadOnly("Output Classification Register", OutputClassOffset, codec.Fixed)
)

var registers = mustMap(InputVector, OutputClass)

func mustMap(regs ...resource.Describer) *resource.Map {
	m, err := resource.NewMap(regs...)
	if err != nil {
		panic(err)
	}
	if err := m.Validate(Span); err != nil {
		panic(err)
	}
	return m
}

// Registers returns the register map in address order.
func Registers() *resource.Map {
	return registers
}

// NewPoint converts a coordinate to fixed point, rounding to nearest even.
func NewPoint(x, y float64) (Point, error) {
	return codec.FixedPairOf(x, y)
}

// MustPoint is NewPoint for constant inputs; it panics on overflow.
func MustPoint(x, y float64) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// Expected returns the class the accelerator assigns to p: +1 when x and y
// share a sign, -1 otherwise. Zero counts as positive.
func Expected(p Point) fixed.I7F25 {
	if (p.First < 0) == (p.Second < 0) {
		return fixed.One
	}
	return -fixed.One
}

// Hooks clear the input vector when a session starts and before it ends.
func Hooks() session.Hooks {
	return session.Hooks{
		Initialize: clearInput,
		Finalize:   clearInput,
	}
}

func clearInput(s *session.Session) error {
	return session.Write(s, InputVector, Point{})
}

// Classify writes p and reads back the classification.
func Classify(s *session.Session, p Point) (fixed.I7F25, error) {
	if err := session.Write(s, InputVector, p); err != nil {
		return 0, err
	}
	return session.Read(s, OutputClass)
}
