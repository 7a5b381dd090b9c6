package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // value to bytes
	PhaseDecode   Phase = "decode"   // bytes to value
	PhaseRead     Phase = "read"     // register load
	PhaseWrite    Phase = "write"    // register store
	PhaseOpen     Phase = "open"     // physical memory device open
	PhaseMap      Phase = "map"      // register window mapping
	PhaseInit     Phase = "init"     // session initialize hook
	PhaseFinalize Phase = "finalize" // session finalize hook and unmap
	PhaseTake     Phase = "take"     // singleton acquisition
	PhaseConfig   Phase = "config"   // configuration loading
	PhaseSink     Phase = "sink"     // result persistence
)

// Kind categorizes the error
type Kind string

const (
	KindLengthMismatch   Kind = "length_mismatch"
	KindOutOfRange       Kind = "out_of_range"
	KindDeviceOpenFailed Kind = "device_open_failed"
	KindMapFailed        Kind = "map_failed"
	KindAlreadyTaken     Kind = "already_taken"
	KindAlreadyOpened    Kind = "already_opened"
	KindClosed           Kind = "closed"
	KindOverflow         Kind = "overflow"
	KindHook             Kind = "hook"
	KindInvalidInput     Kind = "invalid_input"
	KindDuplicate        Kind = "duplicate"
)

// Sentinels for errors.Is. They match any phase.
var (
	ErrLengthMismatch   = &Error{Kind: KindLengthMismatch}
	ErrOutOfRange       = &Error{Kind: KindOutOfRange}
	ErrDeviceOpenFailed = &Error{Kind: KindDeviceOpenFailed}
	ErrMapFailed        = &Error{Kind: KindMapFailed}
	ErrAlreadyTaken     = &Error{Kind: KindAlreadyTaken}
	ErrAlreadyOpened    = &Error{Kind: KindAlreadyOpened}
	ErrClosed           = &Error{Kind: KindClosed}
	ErrOverflow         = &Error{Kind: KindOverflow}
	ErrHook             = &Error{Kind: KindHook}
	ErrInvalidInput     = &Error{Kind: KindInvalidInput}
	ErrDuplicate        = &Error{Kind: KindDuplicate}
)

// Error is the structured error type used throughout fpgaio
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	Resource string
	Type     string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteString(" at ")
		b.WriteString(e.Resource)
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Phase == "" || t.Phase == e.Phase
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Resource sets the register name
func (b *Builder) Resource(name string) *Builder {
	b.err.Resource = name
	return b
}

// Type sets the value type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// LengthMismatch creates an error for a buffer whose length differs from the
// fixed width of the value type.
func LengthMismatch(phase Phase, typ string, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLengthMismatch,
		Type:   typ,
		Detail: fmt.Sprintf("got %d bytes, want %d", got, want),
		Value:  got,
	}
}

// OutOfRange creates an error for a register window that does not fit in the
// mapped span.
func OutOfRange(phase Phase, resource string, offset uint32, width int, span uint32) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOutOfRange,
		Resource: resource,
		Detail:   fmt.Sprintf("window [%d, %d) exceeds span %d", offset, uint64(offset)+uint64(width), span),
		Value:    offset,
	}
}

// DeviceOpenFailed creates an error for a physical memory device that could not
// be opened.
func DeviceOpenFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindDeviceOpenFailed,
		Detail: fmt.Sprintf("open %s", path),
		Cause:  cause,
	}
}

// MapFailed creates an error for a register window that could not be mapped.
func MapFailed(base int64, span int, cause error) *Error {
	return &Error{
		Phase:  PhaseMap,
		Kind:   KindMapFailed,
		Detail: fmt.Sprintf("map %d bytes at 0x%X", span, base),
		Cause:  cause,
	}
}

// AlreadyTaken creates an error for a second acquisition of a single-owner
// value.
func AlreadyTaken(what string) *Error {
	return &Error{
		Phase:  PhaseTake,
		Kind:   KindAlreadyTaken,
		Detail: fmt.Sprintf("%s was already taken", what),
	}
}

// AlreadyOpened creates an error for reconfiguring a slot after its first use.
func AlreadyOpened(what string) *Error {
	return &Error{
		Phase:  PhaseTake,
		Kind:   KindAlreadyOpened,
		Detail: fmt.Sprintf("%s was already opened", what),
	}
}

// Closed creates an error for an access through a released session or window.
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Type:   targetType,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// Hook wraps a failure of a session initialize or finalize hook.
func Hook(phase Phase, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindHook,
		Detail: fmt.Sprintf("%s hook failed", phase),
		Cause:  cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Duplicate creates an error for a name registered twice.
func Duplicate(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicate,
		Detail: fmt.Sprintf("%s %q already registered", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
