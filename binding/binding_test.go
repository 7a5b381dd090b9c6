package binding

import (
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	fpgaerrors "github.com/wippyai/fpgaio/errors"
)

func TestSlot_TakeOnce(t *testing.T) {
	opens := 0
	slot := NewSlot("counter", func() (int, error) {
		opens++
		return 42, nil
	})

	if slot.Taken() {
		t.Fatal("fresh slot reports taken")
	}
	v, err := slot.Take()
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if v != 42 {
		t.Errorf("Take = %d, want 42", v)
	}
	if !slot.Taken() {
		t.Error("Taken() = false after Take")
	}

	for i := 0; i < 3; i++ {
		v, err := slot.Take()
		if !errors.Is(err, fpgaerrors.ErrAlreadyTaken) {
			t.Errorf("Take #%d error = %v, want already taken", i+2, err)
		}
		if v != 0 {
			t.Errorf("Take #%d = %d, want zero value", i+2, v)
		}
	}
	if opens != 1 {
		t.Errorf("opener ran %d times, want 1", opens)
	}
}

func TestSlot_ConcurrentTake(t *testing.T) {
	const takers = 64

	var opens atomic.Int32
	slot := NewSlot("racer", func() (*int, error) {
		opens.Add(1)
		v := 7
		return &v, nil
	})

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		taken     atomic.Int32
		start     = make(chan struct{})
	)
	for i := 0; i < takers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err := slot.Take()
			switch {
			case err == nil && v != nil && *v == 7:
				successes.Add(1)
			case errors.Is(err, fpgaerrors.ErrAlreadyTaken):
				taken.Add(1)
			default:
				t.Errorf("unexpected result %v, %v", v, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	if successes.Load() != 1 {
		t.Errorf("successes = %d, want 1", successes.Load())
	}
	if taken.Load() != takers-1 {
		t.Errorf("already taken = %d, want %d", taken.Load(), takers-1)
	}
	if opens.Load() != 1 {
		t.Errorf("opener ran %d times, want 1", opens.Load())
	}
}

func TestSlot_OpenFailureIsSticky(t *testing.T) {
	cause := fpgaerrors.DeviceOpenFailed("/dev/mem", errors.New("permission denied"))
	opens := 0
	slot := NewSlot("device", func() (string, error) {
		opens++
		return "", cause
	})

	for i := 0; i < 2; i++ {
		if _, err := slot.Take(); !errors.Is(err, fpgaerrors.ErrDeviceOpenFailed) {
			t.Errorf("Take #%d = %v, want device open failed", i+1, err)
		}
	}
	if opens != 1 {
		t.Errorf("opener ran %d times, want 1", opens)
	}
	if slot.Taken() {
		t.Error("failed slot reports taken")
	}
}

func TestSlot_OpenerPanicIsSticky(t *testing.T) {
	opens := 0
	slot := NewSlot("device", func() (*int, error) {
		opens++
		panic("boom")
	})

	for i := 0; i < 2; i++ {
		v, err := slot.Take()
		if !errors.Is(err, fpgaerrors.ErrHook) {
			t.Errorf("Take #%d = %v, %v; want hook error", i+1, v, err)
		}
		if v != nil {
			t.Errorf("Take #%d returned a value after a panicking opener", i+1)
		}
	}
	if opens != 1 {
		t.Errorf("opener ran %d times, want 1", opens)
	}
	if slot.Taken() {
		t.Error("panicked slot reports taken")
	}
}

func TestSlot_SetOpener(t *testing.T) {
	slot := NewSlot("device", func() (string, error) { return "hardware", nil })
	if err := slot.SetOpener(func() (string, error) { return "simulator", nil }); err != nil {
		t.Fatalf("SetOpener before use: %v", err)
	}

	v, err := slot.Take()
	if err != nil || v != "simulator" {
		t.Fatalf("Take = %q, %v", v, err)
	}

	err = slot.SetOpener(func() (string, error) { return "late", nil })
	if !errors.Is(err, fpgaerrors.ErrAlreadyOpened) {
		t.Errorf("SetOpener after use = %v, want already opened", err)
	}
}

func TestSlot_NoOpener(t *testing.T) {
	slot := NewSlot[int]("empty", nil)
	if _, err := slot.Take(); !errors.Is(err, fpgaerrors.ErrInvalidInput) {
		t.Errorf("Take = %v, want invalid input", err)
	}
}

func TestSlot_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	slot := NewSlot("logged", func() (int, error) { return 1, nil })
	_, _ = slot.Take()
	_, _ = slot.Take()

	if logs.FilterMessage("slot taken").Len() != 1 {
		t.Error("missing take log")
	}
	if logs.FilterMessage("repeat take rejected").FilterField(zap.String("slot", "logged")).Len() != 1 {
		t.Error("missing rejection log")
	}
}

func TestOpenDevice_Missing(t *testing.T) {
	dev := Device{Path: filepath.Join(t.TempDir(), "mem"), Base: 0xC002_0000, Span: 64}
	s, err := OpenDevice(dev)
	if s != nil {
		t.Error("session returned for missing device")
	}
	if !errors.Is(err, fpgaerrors.ErrDeviceOpenFailed) && !errors.Is(err, fpgaerrors.ErrMapFailed) {
		t.Errorf("error = %v, want device open or map failure", err)
	}
}

func TestOpenDevice_BadGeometry(t *testing.T) {
	tests := []Device{
		{Path: "/dev/mem", Base: 0xC002_0010, Span: 64},
		{Path: "/dev/mem", Base: 0xC002_0000, Span: 0},
	}
	for _, dev := range tests {
		if _, err := OpenDevice(dev); !errors.Is(err, fpgaerrors.ErrMapFailed) {
			t.Errorf("OpenDevice(%+v) = %v, want map failed", dev, err)
		}
	}
}
