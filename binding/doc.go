// Package binding connects sessions to hardware and enforces single ownership.
//
// OpenDevice maps a physical register window from a memory device and wraps
// it in a session. Slot guarantees that the session built for a device is
// handed out at most once per process, even when many goroutines race for it:
//
//	var device = binding.NewSlot("accelerator", func() (*session.Session, error) {
//	    return binding.OpenDevice(binding.Device{Path: "/dev/mem", Base: 0xC002_0000, Span: 64})
//	})
//
//	s, err := device.Take()   // first caller: the session
//	_, err = device.Take()    // everyone else: AlreadyTaken
//
// The opener runs lazily on the first Take. A failed open is remembered and
// returned to every caller; the slot is never refilled.
package binding
