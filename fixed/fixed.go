// Package fixed implements the signed Q7.25 fixed-point format used by the
// point-classification accelerator.
//
// An I7F25 is a 32-bit two's-complement integer scaled by 2^-25: 7 integer
// bits (sign included) and 25 fractional bits, covering [-64, 64) in steps of
// 2^-25. Conversions from floating point round to the nearest representable
// value, ties to even. Conversions to float64 are exact.
package fixed

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wippyai/fpgaio/errors"
)

const (
	IntBits  = 7
	FracBits = 25
	// Width is the encoded size in bytes.
	Width = 4
)

const scale = 1 << FracBits

// I7F25 is a signed fixed-point number with 25 fractional bits.
type I7F25 int32

const (
	Min   I7F25 = math.MinInt32
	Max   I7F25 = math.MaxInt32
	Zero  I7F25 = 0
	One   I7F25 = scale
	Delta I7F25 = 1
)

// FromBits reinterprets a raw 32-bit register value.
func FromBits(bits uint32) I7F25 {
	return I7F25(int32(bits))
}

// Bits returns the raw two's-complement representation.
func (v I7F25) Bits() uint32 {
	return uint32(int32(v))
}

// FromFloat64 converts f, rounding to nearest with ties to even.
// NaN and values outside [-64, 64) after rounding fail with an overflow error.
func FromFloat64(f float64) (I7F25, error) {
	if math.IsNaN(f) {
		return 0, errors.Overflow(errors.PhaseEncode, f, "i7f25")
	}
	scaled := math.RoundToEven(f * scale)
	if scaled < math.MinInt32 || scaled > math.MaxInt32 {
		return 0, errors.Overflow(errors.PhaseEncode, f, "i7f25")
	}
	return I7F25(int32(scaled)), nil
}

// FromFloat32 converts f with the same policy as FromFloat64.
func FromFloat32(f float32) (I7F25, error) {
	return FromFloat64(float64(f))
}

// FromInt converts a whole number.
func FromInt(n int) (I7F25, error) {
	if n < -(1<<(IntBits-1)) || n >= 1<<(IntBits-1) {
		return 0, errors.Overflow(errors.PhaseEncode, n, "i7f25")
	}
	return I7F25(int32(n) << FracBits), nil
}

// MustFromFloat64 is like FromFloat64 but panics on overflow.
// Intended for constants.
func MustFromFloat64(f float64) I7F25 {
	v, err := FromFloat64(f)
	if err != nil {
		panic(err)
	}
	return v
}

// Float64 returns the exact value.
func (v I7F25) Float64() float64 {
	return float64(v) / scale
}

// Float32 returns the value rounded to the nearest float32.
func (v I7F25) Float32() float32 {
	return float32(v.Float64())
}

// Neg returns -v. Min negates to itself.
func (v I7F25) Neg() I7F25 {
	return -v
}

// Signum returns -1, 0 or 1 as an I7F25.
func (v I7F25) Signum() I7F25 {
	switch {
	case v > 0:
		return One
	case v < 0:
		return -One
	default:
		return Zero
	}
}

// String formats the shortest decimal that identifies the value.
func (v I7F25) String() string {
	return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
}

// Hex formats the raw bits the way register dumps show them.
func (v I7F25) Hex() string {
	return fmt.Sprintf("0x%X", v.Bits())
}
