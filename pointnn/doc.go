// Package pointnn binds the point classification accelerator.
//
// The accelerator exposes 64 bytes of registers at physical address
// 0xC002_0000:
//
//	Offset  Register                          Type          Access
//	──────────────────────────────────────────────────────────────
//	0       Input Points (x, y)               Pair[I7F25]   read/write
//	8       Output Classification Register    I7F25         read-only
//
// Writing a point updates the classification: +1.0 when x and y share a
// sign, -1.0 otherwise.
//
// One session exists per process:
//
//	s, err := pointnn.TakeSession()
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	class, err := pointnn.Classify(s, pointnn.MustPoint(1.5, 2.5))
//
// Call Configure or SetOpener before the first take to select another device
// or the WASM simulator.
package pointnn
