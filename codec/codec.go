package codec

import (
	"encoding/binary"

	"github.com/wippyai/fpgaio/errors"
)

// Order selects the byte order of an encoding.
type Order uint8

const (
	LittleEndian Order = iota
	BigEndian
)

func (o Order) String() string {
	switch o {
	case LittleEndian:
		return "le"
	case BigEndian:
		return "be"
	default:
		return "unknown"
	}
}

func (o Order) binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Codec converts values of type T to and from their fixed-width byte form.
type Codec[T any] interface {
	// Name is the diagnostic type name, e.g. "u32" or "pair<i7f25>".
	Name() string
	// Width is the encoded size in bytes.
	Width() int
	Encode(o Order, v T) []byte
	Decode(o Order, b []byte) (T, error)
}

// EncodeLE encodes v little-endian.
func EncodeLE[T any](c Codec[T], v T) []byte {
	return c.Encode(LittleEndian, v)
}

// EncodeBE encodes v big-endian.
func EncodeBE[T any](c Codec[T], v T) []byte {
	return c.Encode(BigEndian, v)
}

// DecodeLE decodes a little-endian buffer.
func DecodeLE[T any](c Codec[T], b []byte) (T, error) {
	return c.Decode(LittleEndian, b)
}

// DecodeBE decodes a big-endian buffer.
func DecodeBE[T any](c Codec[T], b []byte) (T, error) {
	return c.Decode(BigEndian, b)
}

func checkLen(name string, b []byte, width int) error {
	if len(b) != width {
		return errors.LengthMismatch(errors.PhaseDecode, name, len(b), width)
	}
	return nil
}
