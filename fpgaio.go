package fpgaio

// Window is a bounded, byte-addressed view of a device register block.
// Offsets are relative to the start of the window.
type Window interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	// Size returns the span of the window in bytes.
	Size() uint32
	// Close releases the mapping. Accesses after Close fail.
	Close() error
}
