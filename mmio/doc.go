// Package mmio provides the byte windows a session maps registers onto.
//
// Three implementations of fpgaio.Window are available:
//
//	DevMem  physical memory mapped from /dev/mem (linux only)
//	Buffer  a zeroed heap buffer, useful for tests
//	Wasm    the exported linear memory of a wazero module, with an optional
//	        exported function latched after every write
//
// Windows bounds-check every access against their span and return copies on
// read, so callers never hold references into device memory. Close is
// idempotent; any access after Close fails with a Closed error.
package mmio
