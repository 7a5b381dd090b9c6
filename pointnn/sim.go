package pointnn

import (
	"context"

	"github.com/wippyai/fpgaio/mmio"
	"github.com/wippyai/fpgaio/session"
)

// LatchExport is the simulator function run after every register write.
const LatchExport = "classify"

// ClassifierWASM models the accelerator. Linear memory is the register
// window; classify stores +1.0 at offset 8 when the i32 words at 0 and 4
// share a sign bit and -1.0 otherwise.
var ClassifierWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x01, 0x04, 0x01, 0x60, 0x00, 0x00, // type section: func() -> ()
	0x03, 0x02, 0x01, 0x00, // function section: one func of type 0
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page
	0x07, 0x15, 0x02, // export section: 21 bytes, 2 exports
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00, // "memory" memory 0
	0x08, 0x63, 0x6c, 0x61, 0x73, 0x73, 0x69, 0x66, 0x79, 0x00, 0x00, // "classify" func 0
	0x0a, 0x22, 0x01, 0x20, 0x00, // code section: 1 body, 32 bytes, no locals
	0x41, 0x08, // i32.const 8 (store address)
	0x41, 0x80, 0x80, 0x80, 0x70, // i32.const -1.0 in Q7.25
	0x41, 0x80, 0x80, 0x80, 0x10, // i32.const +1.0 in Q7.25
	0x41, 0x00, 0x28, 0x02, 0x00, // i32.load x
	0x41, 0x04, 0x28, 0x02, 0x00, // i32.load y
	0x73,             // i32.xor
	0x41, 0x00, 0x48, // i32.const 0; i32.lt_s
	0x1b,             // select: sign bits differ ? -1.0 : +1.0
	0x36, 0x02, 0x00, // i32.store
	0x0b, // end
}

// OpenSimulator builds a session over the simulated accelerator.
func OpenSimulator(ctx context.Context, span uint32, opts ...session.Option) (*session.Session, error) {
	w, err := mmio.OpenWasm(ctx, ClassifierWASM, mmio.WasmConfig{
		Span:  span,
		Latch: LatchExport,
	})
	if err != nil {
		return nil, err
	}
	return session.New(w, opts...)
}
