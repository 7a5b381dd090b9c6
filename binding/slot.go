package binding

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/fpgaio/errors"
)

// Slot holds a process-wide single-owner value. The value is produced by the
// opener on first access and handed out by exactly one successful Take.
type Slot[S any] struct {
	open   func() (S, error)
	value  S
	err    error
	name   string
	mu     sync.Mutex
	opened bool
	taken  bool
}

// NewSlot returns an empty slot. open runs at most once, on the first Take.
func NewSlot[S any](name string, open func() (S, error)) *Slot[S] {
	return &Slot[S]{name: name, open: open}
}

// SetOpener replaces the opener. It fails with AlreadyOpened once the slot
// has been accessed.
func (s *Slot[S]) SetOpener(open func() (S, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opened {
		return errors.AlreadyOpened(s.name)
	}
	s.open = open
	return nil
}

// Take removes the value from the slot. The first call opens it; every later
// call fails with AlreadyTaken. If opening failed or panicked, every call
// returns that error and the opener is not retried.
func (s *Slot[S]) Take() (S, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero S
	if !s.opened {
		s.opened = true
		s.runOpener()
		if s.err != nil {
			Logger().Error("slot open failed", zap.String("slot", s.name), zap.Error(s.err))
		}
	}
	if s.err != nil {
		return zero, s.err
	}
	if s.taken {
		Logger().Warn("repeat take rejected", zap.String("slot", s.name))
		return zero, errors.AlreadyTaken(s.name)
	}

	s.taken = true
	v := s.value
	s.value = zero
	Logger().Info("slot taken", zap.String("slot", s.name))
	return v, nil
}

// runOpener fills value and err. A panicking opener leaves a sticky error
// and no value.
func (s *Slot[S]) runOpener() {
	defer func() {
		if r := recover(); r != nil {
			var zero S
			s.value = zero
			s.err = errors.New(errors.PhaseTake, errors.KindHook).
				Detail("%s opener panicked: %v", s.name, r).
				Value(r).
				Build()
		}
	}()

	if s.open == nil {
		s.err = errors.InvalidInput(errors.PhaseTake, s.name+" has no opener")
		return
	}
	s.value, s.err = s.open()
}

// Taken reports whether the value has been handed out.
func (s *Slot[S]) Taken() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taken
}
