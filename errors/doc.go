// Package errors provides structured error types for fpgaio.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the register name, the value type, a detail message and
// an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWrite, errors.KindOutOfRange).
//		Resource("Input Points").
//		Type("pair<i7f25>").
//		Detail("window [60, 68) exceeds span 64").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LengthMismatch(errors.PhaseDecode, "u32", 3, 4)
//	err := errors.OutOfRange(errors.PhaseRead, "status", 62, 4, 64)
//
// Package sentinels match any error of the same Kind regardless of phase:
//
//	if errors.Is(err, fpgaerrors.ErrAlreadyTaken) { ... }
package errors
