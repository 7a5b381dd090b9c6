// Package codec provides byte-exact conversion between Go values and the
// fixed-width contents of device registers.
//
// Every supported type has one Codec. A codec knows its width and converts in
// either byte order:
//
//	Type            Codec       Width
//	──────────────────────────────────
//	uint8/int8      U8/I8       1
//	uint16/int16    U16/I16     2
//	uint32/int32    U32/I32     4
//	uint64/int64    U64/I64     8
//	float32         F32         4
//	float64         F64         8
//	fixed.I7F25     Fixed       4
//	Pair[T]         PairOf(c)   2 * width(c)
//
// Encode always returns exactly Width() bytes. Decode rejects any buffer whose
// length differs from Width() with a LengthMismatch error and never reads past
// it. For every codec and both orders, Decode(Encode(v)) == v bit for bit;
// floating-point values travel as raw bits, so NaN payloads survive.
//
// Pairs are laid out element by element with no padding:
//
//	PairOf(Fixed).Encode(o, Pair{a, b}) == Fixed.Encode(o, a) ++ Fixed.Encode(o, b)
//
// Registers are little-endian; big-endian is provided for completeness.
package codec
