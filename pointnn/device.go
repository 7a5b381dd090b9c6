package pointnn

import (
	"context"

	"github.com/wippyai/fpgaio/binding"
	"github.com/wippyai/fpgaio/config"
	"github.com/wippyai/fpgaio/session"
)

// Open builds a session over the accelerator described by dev, or over the
// simulator when dev.Simulate is set. The register map is validated against
// the span first and the clearing hooks are installed ahead of opts.
func Open(dev config.Device, opts ...session.Option) (*session.Session, error) {
	if err := registers.Validate(dev.Span); err != nil {
		return nil, err
	}
	opts = append([]session.Option{session.WithHooks(Hooks())}, opts...)

	if dev.Simulate {
		return OpenSimulator(context.Background(), dev.Span, opts...)
	}
	return binding.OpenDevice(binding.Device{
		Path: dev.Path,
		Base: dev.Base,
		Span: dev.Span,
	}, opts...)
}

var slot = binding.NewSlot("point classifier session", func() (*session.Session, error) {
	return Open(config.Default().Device)
})

// Configure makes the process-wide session open the device in cfg. It fails
// with AlreadyOpened once TakeSession has been called.
func Configure(cfg config.Device, opts ...session.Option) error {
	return slot.SetOpener(func() (*session.Session, error) {
		return Open(cfg, opts...)
	})
}

// SetOpener replaces how the process-wide session is built.
func SetOpener(open func() (*session.Session, error)) error {
	return slot.SetOpener(open)
}

// TakeSession hands out the process-wide session. Only the first call
// succeeds; later calls fail with AlreadyTaken.
func TakeSession() (*session.Session, error) {
	return slot.Take()
}

// MustTakeSession is TakeSession that panics on error.
func MustTakeSession() *session.Session {
	s, err := TakeSession()
	if err != nil {
		panic(err)
	}
	return s
}
