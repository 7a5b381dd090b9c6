// Package resource describes device registers as typed, capability-tagged
// values.
//
// A Descriptor is pure geometry: a name, a byte offset into the mapped
// window, the width and type name of the stored value, and a Capability.
//
//	d := resource.Descriptor{Name: "status", Offset: 8, Width: 4, Type: "u32", Capability: resource.ReadOnly}
//	d.String() // "status at byte offset 8"
//
// # Registers
//
// Registers pair a Descriptor with the Codec for their value type. The
// capability is carried by the Go type, so an illegal access does not compile:
//
//	ReadOnlyRegister[T]   implements Readable[T]
//	WriteOnlyRegister[T]  implements Writable[T]
//	ReadWriteRegister[T]  implements Readable[T] and Writable[T]
//
// Readable and Writable are sealed; only this package can implement them.
//
//	status := resource.NewReadOnly("status", 8, codec.U32)
//	session.Read(s, status)      // ok
//	session.Write(s, status, 1)  // compile error: ReadOnlyRegister lacks writable()
//
// # Register maps
//
// A Map collects the descriptors of one device in declaration order, rejects
// duplicate names and validates every window against the mapped span before
// any access is made.
package resource
