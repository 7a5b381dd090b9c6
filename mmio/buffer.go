package mmio

import (
	"sync"

	"github.com/wippyai/fpgaio"
	"github.com/wippyai/fpgaio/errors"
)

var _ fpgaio.Window = (*Buffer)(nil)

// Buffer is a window backed by ordinary heap memory.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	closed bool
}

// NewBuffer returns a zeroed window of span bytes.
func NewBuffer(span uint32) *Buffer {
	return &Buffer{data: make([]byte, span)}
}

// Read returns a copy of length bytes at offset.
func (b *Buffer) Read(offset, length uint32) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.Closed(errors.PhaseRead, "buffer window")
	}
	if err := bounds(errors.PhaseRead, offset, int(length), b.size()); err != nil {
		return nil, err
	}
	return clone(b.data[offset : offset+length]), nil
}

// Write copies data into the window at offset.
func (b *Buffer) Write(offset uint32, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return errors.Closed(errors.PhaseWrite, "buffer window")
	}
	if err := bounds(errors.PhaseWrite, offset, len(data), b.size()); err != nil {
		return err
	}
	copy(b.data[offset:], data)
	return nil
}

// Size returns the span in bytes.
func (b *Buffer) Size() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size()
}

func (b *Buffer) size() uint32 {
	return uint32(len(b.data))
}

// Bytes returns a snapshot of the whole window.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return clone(b.data)
}

// Close releases the buffer.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}
