package codec

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/fpgaio/fixed"
)

// scalar is a codec for a single fixed-width value.
type scalar[T any] struct {
	put   func(o binary.ByteOrder, b []byte, v T)
	get   func(o binary.ByteOrder, b []byte) T
	name  string
	width int
}

func (s scalar[T]) Name() string { return s.name }

func (s scalar[T]) Width() int { return s.width }

func (s scalar[T]) Encode(o Order, v T) []byte {
	b := make([]byte, s.width)
	s.put(o.binary(), b, v)
	return b
}

func (s scalar[T]) Decode(o Order, b []byte) (T, error) {
	if err := checkLen(s.name, b, s.width); err != nil {
		var zero T
		return zero, err
	}
	return s.get(o.binary(), b), nil
}

// Unsigned integers.
var (
	U8 Codec[uint8] = scalar[uint8]{
		name:  "u8",
		width: 1,
		put:   func(_ binary.ByteOrder, b []byte, v uint8) { b[0] = v },
		get:   func(_ binary.ByteOrder, b []byte) uint8 { return b[0] },
	}
	U16 Codec[uint16] = scalar[uint16]{
		name:  "u16",
		width: 2,
		put:   func(o binary.ByteOrder, b []byte, v uint16) { o.PutUint16(b, v) },
		get:   func(o binary.ByteOrder, b []byte) uint16 { return o.Uint16(b) },
	}
	U32 Codec[uint32] = scalar[uint32]{
		name:  "u32",
		width: 4,
		put:   func(o binary.ByteOrder, b []byte, v uint32) { o.PutUint32(b, v) },
		get:   func(o binary.ByteOrder, b []byte) uint32 { return o.Uint32(b) },
	}
	U64 Codec[uint64] = scalar[uint64]{
		name:  "u64",
		width: 8,
		put:   func(o binary.ByteOrder, b []byte, v uint64) { o.PutUint64(b, v) },
		get:   func(o binary.ByteOrder, b []byte) uint64 { return o.Uint64(b) },
	}
)

// Signed integers, two's complement.
var (
	I8 Codec[int8] = scalar[int8]{
		name:  "i8",
		width: 1,
		put:   func(_ binary.ByteOrder, b []byte, v int8) { b[0] = uint8(v) },
		get:   func(_ binary.ByteOrder, b []byte) int8 { return int8(b[0]) },
	}
	I16 Codec[int16] = scalar[int16]{
		name:  "i16",
		width: 2,
		put:   func(o binary.ByteOrder, b []byte, v int16) { o.PutUint16(b, uint16(v)) },
		get:   func(o binary.ByteOrder, b []byte) int16 { return int16(o.Uint16(b)) },
	}
	I32 Codec[int32] = scalar[int32]{
		name:  "i32",
		width: 4,
		put:   func(o binary.ByteOrder, b []byte, v int32) { o.PutUint32(b, uint32(v)) },
		get:   func(o binary.ByteOrder, b []byte) int32 { return int32(o.Uint32(b)) },
	}
	I64 Codec[int64] = scalar[int64]{
		name:  "i64",
		width: 8,
		put:   func(o binary.ByteOrder, b []byte, v int64) { o.PutUint64(b, uint64(v)) },
		get:   func(o binary.ByteOrder, b []byte) int64 { return int64(o.Uint64(b)) },
	}
)

// IEEE 754 binary32 and binary64, carried as raw bits.
var (
	F32 Codec[float32] = scalar[float32]{
		name:  "f32",
		width: 4,
		put:   func(o binary.ByteOrder, b []byte, v float32) { o.PutUint32(b, math.Float32bits(v)) },
		get:   func(o binary.ByteOrder, b []byte) float32 { return math.Float32frombits(o.Uint32(b)) },
	}
	F64 Codec[float64] = scalar[float64]{
		name:  "f64",
		width: 8,
		put:   func(o binary.ByteOrder, b []byte, v float64) { o.PutUint64(b, math.Float64bits(v)) },
		get:   func(o binary.ByteOrder, b []byte) float64 { return math.Float64frombits(o.Uint64(b)) },
	}
)

// Fixed encodes the Q7.25 fixed-point type as its 32-bit two's-complement bits.
var Fixed Codec[fixed.I7F25] = scalar[fixed.I7F25]{
	name:  "i7f25",
	width: fixed.Width,
	put:   func(o binary.ByteOrder, b []byte, v fixed.I7F25) { o.PutUint32(b, v.Bits()) },
	get:   func(o binary.ByteOrder, b []byte) fixed.I7F25 { return fixed.FromBits(o.Uint32(b)) },
}
