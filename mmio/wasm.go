package mmio

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/fpgaio"
	"github.com/wippyai/fpgaio/errors"
)

var _ fpgaio.Window = (*Wasm)(nil)

// DefaultMemoryExport is the export name searched when WasmConfig.Memory is empty.
const DefaultMemoryExport = "memory"

// WasmConfig selects the register window inside a module's linear memory.
type WasmConfig struct {
	// Memory is the exported memory name. Defaults to "memory".
	Memory string

	// Latch is an exported func() called after every successful write.
	// Empty disables latching.
	Latch string

	// Base is the byte offset of the window in linear memory.
	Base uint32

	// Span is the window size in bytes.
	Span uint32
}

// Wasm is a window over the linear memory of a wazero module instance.
type Wasm struct {
	ctx       context.Context
	runtime   wazero.Runtime
	mem       api.Memory
	latch     api.Function
	latchName string
	base      uint32
	span      uint32
	closed    bool
}

// OpenWasm compiles and instantiates binary in a private runtime and exposes
// [cfg.Base, cfg.Base+cfg.Span) of its exported memory as a window.
func OpenWasm(ctx context.Context, binary []byte, cfg WasmConfig) (*Wasm, error) {
	if cfg.Span == 0 {
		return nil, errors.New(errors.PhaseMap, errors.KindMapFailed).
			Detail("span must be positive").
			Build()
	}
	if cfg.Memory == "" {
		cfg.Memory = DefaultMemoryExport
	}

	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig())

	compiled, err := rt.CompileModule(ctx, binary)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseMap, errors.KindMapFailed, err, "compile module")
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseMap, errors.KindMapFailed, err, "instantiate module")
	}

	mem := mod.ExportedMemory(cfg.Memory)
	if mem == nil {
		_ = rt.Close(ctx)
		return nil, errors.New(errors.PhaseMap, errors.KindMapFailed).
			Detail("module does not export memory %q", cfg.Memory).
			Build()
	}
	if uint64(cfg.Base)+uint64(cfg.Span) > uint64(mem.Size()) {
		_ = rt.Close(ctx)
		return nil, errors.New(errors.PhaseMap, errors.KindMapFailed).
			Value(cfg.Base).
			Detail("window [%d, %d) exceeds memory size %d", cfg.Base, uint64(cfg.Base)+uint64(cfg.Span), mem.Size()).
			Build()
	}

	w := &Wasm{
		ctx:       ctx,
		runtime:   rt,
		mem:       mem,
		latchName: cfg.Latch,
		base:      cfg.Base,
		span:      cfg.Span,
	}
	if cfg.Latch != "" {
		w.latch = mod.ExportedFunction(cfg.Latch)
		if w.latch == nil {
			_ = rt.Close(ctx)
			return nil, errors.New(errors.PhaseMap, errors.KindMapFailed).
				Detail("module does not export function %q", cfg.Latch).
				Build()
		}
	}
	return w, nil
}

// Read returns a copy of length bytes at offset.
func (w *Wasm) Read(offset, length uint32) ([]byte, error) {
	if w.closed {
		return nil, errors.Closed(errors.PhaseRead, "wasm window")
	}
	if err := bounds(errors.PhaseRead, offset, int(length), w.span); err != nil {
		return nil, err
	}
	data, ok := w.mem.Read(w.base+offset, length)
	if !ok {
		return nil, errors.OutOfRange(errors.PhaseRead, "", offset, int(length), w.span)
	}
	return clone(data), nil
}

// Write stores data at offset, then runs the latch function if one is set.
func (w *Wasm) Write(offset uint32, data []byte) error {
	if w.closed {
		return errors.Closed(errors.PhaseWrite, "wasm window")
	}
	if err := bounds(errors.PhaseWrite, offset, len(data), w.span); err != nil {
		return err
	}
	if !w.mem.Write(w.base+offset, data) {
		return errors.OutOfRange(errors.PhaseWrite, "", offset, len(data), w.span)
	}
	if w.latch == nil {
		return nil
	}
	if _, err := w.latch.Call(w.ctx); err != nil {
		return errors.New(errors.PhaseWrite, errors.KindHook).
			Detail("latch %s", w.latchName).
			Cause(err).
			Build()
	}
	return nil
}

// Size returns the window span in bytes.
func (w *Wasm) Size() uint32 {
	return w.span
}

// Close tears down the module and its runtime. Repeated calls are no-ops.
func (w *Wasm) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.runtime.Close(w.ctx)
}
