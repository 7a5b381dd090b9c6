package codec

import "github.com/wippyai/fpgaio/fixed"

// Pair is an ordered two-element value, e.g. a planar coordinate.
type Pair[T any] struct {
	First  T
	Second T
}

type pairCodec[T any] struct {
	elem Codec[T]
	name string
}

// PairOf returns a codec that packs two elements back to back with no padding.
func PairOf[T any](elem Codec[T]) Codec[Pair[T]] {
	return pairCodec[T]{
		elem: elem,
		name: "pair<" + elem.Name() + ">",
	}
}

// FixedPair is the 8-byte coordinate pair of Q7.25 values.
var FixedPair = PairOf(Fixed)

func (c pairCodec[T]) Name() string { return c.name }

func (c pairCodec[T]) Width() int { return 2 * c.elem.Width() }

func (c pairCodec[T]) Encode(o Order, p Pair[T]) []byte {
	out := make([]byte, 0, c.Width())
	out = append(out, c.elem.Encode(o, p.First)...)
	out = append(out, c.elem.Encode(o, p.Second)...)
	return out
}

func (c pairCodec[T]) Decode(o Order, b []byte) (Pair[T], error) {
	if err := checkLen(c.name, b, c.Width()); err != nil {
		return Pair[T]{}, err
	}
	w := c.elem.Width()
	first, err := c.elem.Decode(o, b[:w:w])
	if err != nil {
		return Pair[T]{}, err
	}
	second, err := c.elem.Decode(o, b[w:])
	if err != nil {
		return Pair[T]{}, err
	}
	return Pair[T]{First: first, Second: second}, nil
}

// FixedPairOf builds a fixed-point pair from two float64 values.
func FixedPairOf(first, second float64) (Pair[fixed.I7F25], error) {
	a, err := fixed.FromFloat64(first)
	if err != nil {
		return Pair[fixed.I7F25]{}, err
	}
	b, err := fixed.FromFloat64(second)
	if err != nil {
		return Pair[fixed.I7F25]{}, err
	}
	return Pair[fixed.I7F25]{First: a, Second: b}, nil
}
