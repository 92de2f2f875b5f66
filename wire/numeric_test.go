package wire_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/wippyai/wirecodec/wire"
)

func TestUint32Encoding(t *testing.T) {
	tests := []struct {
		value   uint32
		encoded []byte
	}{
		{0, []byte{0x00, 0x00, 0x00, 0x00}},
		{1, []byte{0x00, 0x00, 0x00, 0x01}},
		{300, []byte{0x00, 0x00, 0x01, 0x2C}},
		{0xDEADBEEF, []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{math.MaxUint32, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		got := wire.EncodeUint32(tt.value)
		if !bytes.Equal(got, tt.encoded) {
			t.Errorf("encode %d: got %v, want %v", tt.value, got, tt.encoded)
		}

		back, err := wire.DecodeUint32(tt.encoded)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if back != tt.value {
			t.Errorf("decode: got %d, want %d", back, tt.value)
		}
	}
}

func TestSignedEncoding(t *testing.T) {
	tests := []struct {
		name    string
		encoded []byte
		encode  func() []byte
		decode  func([]byte) (int64, error)
		value   int64
	}{
		{
			name:    "i8 -1",
			encoded: []byte{0xFF},
			encode:  func() []byte { return wire.EncodeInt8(-1) },
			decode: func(b []byte) (int64, error) {
				v, err := wire.DecodeInt8(b)
				return int64(v), err
			},
			value: -1,
		},
		{
			name:    "i16 -1",
			encoded: []byte{0xFF, 0xFF},
			encode:  func() []byte { return wire.EncodeInt16(-1) },
			decode: func(b []byte) (int64, error) {
				v, err := wire.DecodeInt16(b)
				return int64(v), err
			},
			value: -1,
		},
		{
			name:    "i16 min",
			encoded: []byte{0x80, 0x00},
			encode:  func() []byte { return wire.EncodeInt16(math.MinInt16) },
			decode: func(b []byte) (int64, error) {
				v, err := wire.DecodeInt16(b)
				return int64(v), err
			},
			value: math.MinInt16,
		},
		{
			name:    "i32 -2",
			encoded: []byte{0xFF, 0xFF, 0xFF, 0xFE},
			encode:  func() []byte { return wire.EncodeInt32(-2) },
			decode: func(b []byte) (int64, error) {
				v, err := wire.DecodeInt32(b)
				return int64(v), err
			},
			value: -2,
		},
		{
			name:    "i64 min",
			encoded: []byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			encode:  func() []byte { return wire.EncodeInt64(math.MinInt64) },
			decode:  wire.DecodeInt64,
			value:   math.MinInt64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.encode()
			if !bytes.Equal(got, tt.encoded) {
				t.Errorf("encode: got %v, want %v", got, tt.encoded)
			}
			back, err := tt.decode(tt.encoded)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if back != tt.value {
				t.Errorf("decode: got %d, want %d", back, tt.value)
			}
		})
	}
}

func TestFloatEncoding(t *testing.T) {
	// IEEE-754 bit patterns, big-endian.
	f32 := wire.EncodeFloat32(1.0)
	if !bytes.Equal(f32, []byte{0x3F, 0x80, 0x00, 0x00}) {
		t.Errorf("encode float32 1.0: got %v", f32)
	}
	f64 := wire.EncodeFloat64(1.5)
	if !bytes.Equal(f64, []byte{0x3F, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}) {
		t.Errorf("encode float64 1.5: got %v", f64)
	}

	for _, v := range []float64{0, -0, 1.5, -math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)} {
		back, err := wire.DecodeFloat64(wire.EncodeFloat64(v))
		if err != nil {
			t.Fatalf("decode %v: %v", v, err)
		}
		if back != v {
			t.Errorf("round trip %v: got %v", v, back)
		}
	}

	// NaN round-trips bit-exactly even though NaN != NaN.
	nan := math.Float64frombits(0x7FF8000000000001)
	back, err := wire.DecodeFloat64(wire.EncodeFloat64(nan))
	if err != nil {
		t.Fatalf("decode NaN: %v", err)
	}
	if math.Float64bits(back) != math.Float64bits(nan) {
		t.Errorf("NaN bits changed: got %#x", math.Float64bits(back))
	}
}

func TestNumericRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0x7F, 0x80, 0xFF, 0x100, 0xFFFF, 0x10000, math.MaxUint32, math.MaxUint64} {
		back, err := wire.DecodeUint64(wire.EncodeUint64(v))
		if err != nil {
			t.Fatalf("u64 %d: %v", v, err)
		}
		if back != v {
			t.Errorf("u64 round trip %d: got %d", v, back)
		}
	}
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		back, err := wire.DecodeInt64(wire.EncodeInt64(v))
		if err != nil {
			t.Fatalf("i64 %d: %v", v, err)
		}
		if back != v {
			t.Errorf("i64 round trip %d: got %d", v, back)
		}
	}
	for _, v := range []uint8{0, 1, 0x7F, 0x80, 0xFF} {
		back, err := wire.DecodeUint8(wire.EncodeUint8(v))
		if err != nil {
			t.Fatalf("u8 %d: %v", v, err)
		}
		if back != v {
			t.Errorf("u8 round trip %d: got %d", v, back)
		}
	}
}

func TestFixedWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		got   []byte
	}{
		{"u8", 1, wire.EncodeUint8(42)},
		{"u16", 2, wire.EncodeUint16(42)},
		{"u32", 4, wire.EncodeUint32(42)},
		{"u64", 8, wire.EncodeUint64(42)},
		{"u128", 16, wire.EncodeUint128(wire.Uint128From64(42))},
		{"i8", 1, wire.EncodeInt8(-42)},
		{"i16", 2, wire.EncodeInt16(-42)},
		{"i32", 4, wire.EncodeInt32(-42)},
		{"i64", 8, wire.EncodeInt64(-42)},
		{"i128", 16, wire.EncodeInt128(wire.Int128From64(-42))},
		{"f32", 4, wire.EncodeFloat32(42)},
		{"f64", 8, wire.EncodeFloat64(42)},
		{"bool", 1, wire.EncodeBool(true)},
		{"rune", 4, wire.EncodeRune('A')},
		{"unit", 0, wire.EncodeUnit(wire.Unit{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != tt.width {
				t.Errorf("width: got %d, want %d", len(tt.got), tt.width)
			}
		})
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	// Fixed-width decode reads only the declared prefix.
	input := []byte{0x00, 0x00, 0x01, 0x2C, 0xAA, 0xBB, 0xCC}
	v, err := wire.DecodeUint32(input)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v != 300 {
		t.Errorf("got %d, want 300", v)
	}

	v16, err := wire.DecodeUint16(input)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v16 != 0 {
		t.Errorf("got %d, want 0", v16)
	}
}

func TestDecodeTruncated(t *testing.T) {
	tests := []struct {
		name   string
		decode func([]byte) error
		width  int
	}{
		{"u8", func(b []byte) error { _, err := wire.DecodeUint8(b); return err }, 1},
		{"u16", func(b []byte) error { _, err := wire.DecodeUint16(b); return err }, 2},
		{"u32", func(b []byte) error { _, err := wire.DecodeUint32(b); return err }, 4},
		{"u64", func(b []byte) error { _, err := wire.DecodeUint64(b); return err }, 8},
		{"u128", func(b []byte) error { _, err := wire.DecodeUint128(b); return err }, 16},
		{"i8", func(b []byte) error { _, err := wire.DecodeInt8(b); return err }, 1},
		{"i16", func(b []byte) error { _, err := wire.DecodeInt16(b); return err }, 2},
		{"i32", func(b []byte) error { _, err := wire.DecodeInt32(b); return err }, 4},
		{"i64", func(b []byte) error { _, err := wire.DecodeInt64(b); return err }, 8},
		{"i128", func(b []byte) error { _, err := wire.DecodeInt128(b); return err }, 16},
		{"f32", func(b []byte) error { _, err := wire.DecodeFloat32(b); return err }, 4},
		{"f64", func(b []byte) error { _, err := wire.DecodeFloat64(b); return err }, 8},
		{"bool", func(b []byte) error { _, err := wire.DecodeBool(b); return err }, 1},
		{"rune", func(b []byte) error { _, err := wire.DecodeRune(b); return err }, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Every length short of the full width must fail.
			for n := 0; n < tt.width; n++ {
				err := tt.decode(make([]byte, n))
				if err == nil {
					t.Fatalf("decode of %d bytes succeeded, want error", n)
				}
				if !errors.Is(err, wire.ErrTruncated) {
					t.Errorf("decode of %d bytes: got %v, want ErrTruncated", n, err)
				}
			}
			// The exact width must succeed.
			if err := tt.decode(make([]byte, tt.width)); err != nil {
				t.Errorf("decode of %d bytes: %v", tt.width, err)
			}
		})
	}
}

func TestEncodeDeterminism(t *testing.T) {
	if !bytes.Equal(wire.EncodeUint64(1234567890), wire.EncodeUint64(1234567890)) {
		t.Error("u64 encoding is not deterministic")
	}
	if !bytes.Equal(wire.EncodeFloat64(math.Pi), wire.EncodeFloat64(math.Pi)) {
		t.Error("f64 encoding is not deterministic")
	}
	if !bytes.Equal(wire.EncodeString("determinism"), wire.EncodeString("determinism")) {
		t.Error("string encoding is not deterministic")
	}
}
