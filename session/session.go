package session

import (
	"github.com/rs/xid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/fpgaio"
	"github.com/wippyai/fpgaio/codec"
	"github.com/wippyai/fpgaio/errors"
)

// State is the lifecycle position of a session.
type State uint8

const (
	Unmapped State = iota
	Active
	Closed
)

func (s State) String() string {
	switch s {
	case Unmapped:
		return "unmapped"
	case Active:
		return "active"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Hooks are the reserved lifecycle callbacks of a session. Initialize runs
// once the window is mapped, Finalize runs once before it is unmapped. Both
// may access registers.
type Hooks struct {
	Initialize func(*Session) error
	Finalize   func(*Session) error
}

// Option configures a Session.
type Option func(*Session)

// WithHooks sets the lifecycle hooks.
func WithHooks(h Hooks) Option {
	return func(s *Session) { s.hooks = h }
}

// WithByteOrder overrides the little-endian register encoding.
func WithByteOrder(o codec.Order) Option {
	return func(s *Session) { s.order = o }
}

// WithLogger sets the logger the session derives its own logger from.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver subscribes o before the Initialize hook runs.
func WithObserver(o Observer) Option {
	return func(s *Session) { s.Subscribe(o) }
}

// Session is the exclusive accessor of a mapped register window. It is owned
// by a single goroutine and performs no locking.
type Session struct {
	window    fpgaio.Window
	log       *zap.Logger
	hooks     Hooks
	observers []subscription
	nextSub   uint64
	id        xid.ID
	span      uint32
	order     codec.Order
	state     State
	closing   bool
}

// New takes ownership of window, runs the Initialize hook and returns an
// Active session. If the hook fails the window is closed and a Hook error is
// returned.
func New(window fpgaio.Window, opts ...Option) (*Session, error) {
	if window == nil {
		return nil, errors.InvalidInput(errors.PhaseInit, "nil window")
	}

	s := &Session{
		window: window,
		log:    Logger(),
		id:     xid.New(),
		span:   window.Size(),
		order:  codec.LittleEndian,
		state:  Unmapped,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.Stringer("session", s.id))

	s.state = Active
	if s.hooks.Initialize != nil {
		if err := s.initialize(); err != nil {
			return nil, err
		}
	}

	s.log.Info("session opened",
		zap.Uint32("span", s.span),
		zap.Stringer("order", s.order))
	s.notify(EventInitialized, zeroDescriptor, nil)
	return s, nil
}

// initialize runs the Initialize hook. The window is closed if the hook
// fails or panics.
func (s *Session) initialize() (err error) {
	done := false
	defer func() {
		if !done {
			s.state = Closed
			err = multierr.Append(err, s.window.Close())
		}
	}()

	if herr := s.hooks.Initialize(s); herr != nil {
		return errors.Hook(errors.PhaseInit, herr)
	}
	done = true
	return nil
}

// ID returns the unique session id.
func (s *Session) ID() xid.ID { return s.id }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Span returns the size of the mapped window in bytes.
func (s *Session) Span() uint32 { return s.span }

// ByteOrder returns the register encoding order.
func (s *Session) ByteOrder() codec.Order { return s.order }

// Close runs the Finalize hook and releases the window. Only the first call
// has any effect; the window is released even if Finalize panics.
func (s *Session) Close() (err error) {
	if s.state != Active {
		s.state = Closed
		return nil
	}
	if s.closing {
		return nil
	}
	s.closing = true

	defer func() {
		s.state = Closed
		err = multierr.Append(err, s.window.Close())
		if err != nil {
			s.log.Warn("session closed with errors", zap.Error(err))
		} else {
			s.log.Info("session closed")
		}
	}()

	if s.hooks.Finalize != nil {
		if ferr := s.hooks.Finalize(s); ferr != nil {
			err = errors.Hook(errors.PhaseFinalize, ferr)
		}
	}
	s.notify(EventFinalized, zeroDescriptor, nil)
	return err
}

// Run calls fn and closes the session on every exit path, including panics.
// Errors from fn and Close are combined.
func (s *Session) Run(fn func(*Session) error) (err error) {
	defer func() {
		err = multierr.Append(err, s.Close())
	}()
	return fn(s)
}
