// Package fpgaio provides typed, capability-checked access to memory-mapped
// accelerator registers.
//
// A register block is exposed as a Window (a fixed span of mapped physical
// memory). Registers are described once, with their offset, value type and
// access capability, and all reads and writes go through a single Session that
// owns the window.
//
// # Architecture Overview
//
//	fpgaio/             Root package with the Window interface
//	├── fixed/          Signed Q7.25 fixed-point type
//	├── codec/          Byte-exact value codecs (LE and BE)
//	├── resource/       Register descriptors with read/write capability
//	├── session/        Exclusive accessor over a mapped Window
//	├── binding/        Single-owner slot and /dev/mem session opener
//	├── mmio/           Window backends: /dev/mem, heap buffer, wazero simulator
//	├── pointnn/        Register map of the point-classification accelerator
//	├── config/         TOML and environment configuration
//	├── sink/           CSV and SQLite result sinks
//	└── errors/         Structured error types
//
// # Quick Start
//
//	sess, err := pointnn.TakeSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	p, _ := pointnn.NewPoint(1.5, 2.5)
//	if err := session.Write(sess, pointnn.InputVector, p); err != nil {
//	    log.Fatal(err)
//	}
//	class, err := session.Read(sess, pointnn.OutputClass)
//
// # Capabilities
//
// Read-only registers do not satisfy resource.Writable, so passing one to
// session.Write is a compile error rather than a runtime failure.
//
// # Thread Safety
//
// A Session is owned by exactly one goroutine and performs no locking. Only the
// process-wide slot that hands out the session is synchronized.
package fpgaio
