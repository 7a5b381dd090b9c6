// Package session is the only gateway to a mapped register window.
//
// A Session owns one fpgaio.Window. Registers are accessed with the generic
// functions Read and Write, whose signatures enforce capability at compile
// time:
//
//	v, err := session.Read(s, reg)     // reg must be resource.Readable[T]
//	err = session.Write(s, reg, v)     // reg must be resource.Writable[T]
//
// Every access checks [offset, offset+width) against the span recorded when
// the session was created before the window is touched, and fails with an
// OutOfRange error otherwise.
//
// # Lifecycle
//
//	Unmapped --(New: Initialize hook)--> Active --(Close: Finalize hook, unmap)--> Closed
//
// Close is idempotent. Access through a closed session fails with a Closed
// error. Run scopes a session so Close runs on every exit path:
//
//	err := s.Run(func(s *session.Session) error {
//	    return session.Write(s, reg, v)
//	})
//
// # Observability
//
// Lifecycle transitions are logged at Info and register accesses at Debug
// through a child of the package logger (see SetLogger) tagged with the
// session id. Observers receive Initialized, Read, Write and Finalized events
// carrying the raw register bytes.
//
// A Session performs no locking; share it between goroutines only with
// external synchronization.
package session
