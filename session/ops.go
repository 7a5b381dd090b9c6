package session

import (
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/wippyai/fpgaio/errors"
	"github.com/wippyai/fpgaio/resource"
)

var zeroDescriptor resource.Descriptor

// Read loads the register window and decodes it. The window is bounds
// checked before the mapped memory is touched.
func Read[T any](s *Session, r resource.Readable[T]) (T, error) {
	var zero T
	d := r.Descriptor()
	if err := s.check(errors.PhaseRead, d); err != nil {
		return zero, err
	}

	raw, err := s.window.Read(d.Offset, uint32(d.Width))
	if err != nil {
		return zero, err
	}
	v, err := r.Codec().Decode(s.order, raw)
	if err != nil {
		return zero, err
	}

	s.trace("register read", d, raw)
	s.notify(EventRead, d, raw)
	return v, nil
}

// Write encodes v and stores it in the register window. There is no flush;
// the store is visible to the device once Write returns.
func Write[T any](s *Session, r resource.Writable[T], v T) error {
	d := r.Descriptor()
	if err := s.check(errors.PhaseWrite, d); err != nil {
		return err
	}

	raw := r.Codec().Encode(s.order, v)
	if len(raw) != d.Width {
		return errors.LengthMismatch(errors.PhaseEncode, d.Type, len(raw), d.Width)
	}
	if err := s.window.Write(d.Offset, raw); err != nil {
		return err
	}

	s.trace("register write", d, raw)
	s.notify(EventWrite, d, raw)
	return nil
}

func (s *Session) check(phase errors.Phase, d resource.Descriptor) error {
	if s.state != Active {
		return errors.New(phase, errors.KindClosed).
			Resource(d.Name).
			Detail("session %s is %s", s.id, s.state).
			Build()
	}
	return d.Check(phase, s.span)
}

func (s *Session) trace(msg string, d resource.Descriptor, raw []byte) {
	if ce := s.log.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.String("register", d.Name),
			zap.Uint32("offset", d.Offset),
			zap.String("bytes", hex.EncodeToString(raw)),
		)
	}
}
