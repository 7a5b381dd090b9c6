package fixed

import (
	"errors"
	"math"
	"testing"

	fpgaerrors "github.com/wippyai/fpgaio/errors"
)

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		bits uint32
	}{
		{"zero", 0, 0x00000000},
		{"one", 1.0, 0x02000000},
		{"minus one", -1.0, 0xFE000000},
		{"one and a half", 1.5, 0x03000000},
		{"two and a half", 2.5, 0x05000000},
		{"minus two and a half", -2.5, 0xFB000000},
		{"smallest step", 1.0 / (1 << 25), 0x00000001},
		{"lower bound", -64, 0x80000000},
		{"largest value", 64 - 1.0/(1<<25), 0x7FFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromFloat64(tt.in)
			if err != nil {
				t.Fatalf("FromFloat64(%v): %v", tt.in, err)
			}
			if v.Bits() != tt.bits {
				t.Errorf("FromFloat64(%v).Bits() = %#08x, want %#08x", tt.in, v.Bits(), tt.bits)
			}
			if v.Float64() != tt.in {
				t.Errorf("Float64() = %v, want %v", v.Float64(), tt.in)
			}
		})
	}
}

func TestFromFloat64_RoundsHalfToEven(t *testing.T) {
	step := 1.0 / (1 << 25)
	tests := []struct {
		in   float64
		want I7F25
	}{
		{0.5 * step, 0},
		{1.5 * step, 2},
		{2.5 * step, 2},
		{-0.5 * step, 0},
		{-1.5 * step, -2},
		{0.75 * step, 1},
		{0.25 * step, 0},
	}
	for _, tt := range tests {
		v, err := FromFloat64(tt.in)
		if err != nil {
			t.Fatalf("FromFloat64(%v): %v", tt.in, err)
		}
		if v != tt.want {
			t.Errorf("FromFloat64(%v) = %d, want %d", tt.in, int32(v), int32(tt.want))
		}
	}
}

func TestFromFloat64_Overflow(t *testing.T) {
	for _, f := range []float64{64, -64.0000001, 1e9, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := FromFloat64(f)
		if !errors.Is(err, fpgaerrors.ErrOverflow) {
			t.Errorf("FromFloat64(%v) error = %v, want overflow", f, err)
		}
	}
}

func TestFromInt(t *testing.T) {
	v, err := FromInt(-64)
	if err != nil {
		t.Fatalf("FromInt(-64): %v", err)
	}
	if v != Min {
		t.Errorf("FromInt(-64) = %v, want Min", v)
	}
	v, err = FromInt(3)
	if err != nil {
		t.Fatalf("FromInt(3): %v", err)
	}
	if v.Float64() != 3 {
		t.Errorf("FromInt(3) = %v", v)
	}
	if _, err := FromInt(64); !errors.Is(err, fpgaerrors.ErrOverflow) {
		t.Errorf("FromInt(64) error = %v, want overflow", err)
	}
}

func TestBitsRoundTrip(t *testing.T) {
	for _, bits := range []uint32{0, 1, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFF, 0x02000000, 0xDEADBEEF} {
		if got := FromBits(bits).Bits(); got != bits {
			t.Errorf("FromBits(%#x).Bits() = %#x", bits, got)
		}
	}
}

func TestFloat32(t *testing.T) {
	if got := MustFromFloat64(-1.5).Float32(); got != -1.5 {
		t.Errorf("Float32() = %v, want -1.5", got)
	}
}

func TestSignum(t *testing.T) {
	if MustFromFloat64(2.5).Signum() != One {
		t.Error("positive signum should be One")
	}
	if MustFromFloat64(-0.25).Signum() != -One {
		t.Error("negative signum should be -One")
	}
	if Zero.Signum() != Zero {
		t.Error("zero signum should be Zero")
	}
}

func TestString(t *testing.T) {
	tests := map[I7F25]string{
		One:                    "1",
		-One:                   "-1",
		MustFromFloat64(2.5):   "2.5",
		MustFromFloat64(-0.75): "-0.75",
		Zero:                   "0",
	}
	for v, want := range tests {
		if got := v.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := (-One).Hex(); got != "0xFE000000" {
		t.Errorf("Hex() = %q, want 0xFE000000", got)
	}
}

func TestMustFromFloat64Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustFromFloat64(100)
}
