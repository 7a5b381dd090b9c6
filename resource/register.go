package resource

import "github.com/wippyai/fpgaio/codec"

// Readable is a register that may be loaded. It is sealed.
type Readable[T any] interface {
	Descriptor() Descriptor
	Codec() codec.Codec[T]
	readable()
}

// Writable is a register that may be stored. It is sealed.
type Writable[T any] interface {
	Descriptor() Descriptor
	Codec() codec.Codec[T]
	writable()
}

type register[T any] struct {
	codec codec.Codec[T]
	desc  Descriptor
}

func newRegister[T any](name string, offset uint32, c codec.Codec[T], capability Capability) register[T] {
	return register[T]{
		codec: c,
		desc: Descriptor{
			Name:       name,
			Type:       c.Name(),
			Offset:     offset,
			Width:      c.Width(),
			Capability: capability,
		},
	}
}

// Descriptor returns the register geometry.
func (r register[T]) Descriptor() Descriptor { return r.desc }

// Codec returns the codec of the stored value.
func (r register[T]) Codec() codec.Codec[T] { return r.codec }

func (r register[T]) String() string { return r.desc.String() }

// ReadOnlyRegister can only be read.
type ReadOnlyRegister[T any] struct{ register[T] }

func (ReadOnlyRegister[T]) readable() {}

// WriteOnlyRegister can only be written.
type WriteOnlyRegister[T any] struct{ register[T] }

func (WriteOnlyRegister[T]) writable() {}

// ReadWriteRegister can be read and written.
type ReadWriteRegister[T any] struct{ register[T] }

func (ReadWriteRegister[T]) readable() {}
func (ReadWriteRegister[T]) writable() {}

// NewReadOnly declares a read-only register at offset.
func NewReadOnly[T any](name string, offset uint32, c codec.Codec[T]) ReadOnlyRegister[T] {
	return ReadOnlyRegister[T]{newRegister(name, offset, c, ReadOnly)}
}

// NewWriteOnly declares a write-only register at offset.
func NewWriteOnly[T any](name string, offset uint32, c codec.Codec[T]) WriteOnlyRegister[T] {
	return WriteOnlyRegister[T]{newRegister(name, offset, c, WriteOnly)}
}

// NewReadWrite declares a read/write register at offset.
func NewReadWrite[T any](name string, offset uint32, c codec.Codec[T]) ReadWriteRegister[T] {
	return ReadWriteRegister[T]{newRegister(name, offset, c, ReadWrite)}
}
