package wire

import (
	"fmt"
	"math"
)

// integer covers every fixed-width integer type in the catalog up to 64
// bits. Architecture-width int and uint are deliberately absent: their
// storage width differs between hosts, which would break the encoding's
// determinism across a heterogeneous cluster.
type integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// putFixed writes the low width bytes of v into dst, most significant
// first. dst must hold at least width bytes.
func putFixed[T integer](dst []byte, v T, width int) {
	u := uint64(v)
	for i := 0; i < width; i++ {
		dst[i] = byte(u >> (8 * (width - 1 - i)))
	}
}

// getFixed reads width big-endian bytes from b and truncates to T.
func getFixed[T integer](b []byte, width int) T {
	var u uint64
	for i := 0; i < width; i++ {
		u = u<<8 | uint64(b[i])
	}
	return T(u)
}

// encodeFixed is the width-parameterized core shared by every fixed-width
// codec. Each exported codec instantiates it for one concrete type.
func encodeFixed[T integer](v T, width int) []byte {
	out := make([]byte, width)
	putFixed(out, v, width)
	return out
}

func decodeFixed[T integer](b []byte, width int, name string) (T, error) {
	if len(b) < width {
		return 0, fmt.Errorf("decode %s: %w: have %d bytes, need %d", name, ErrTruncated, len(b), width)
	}
	return getFixed[T](b, width), nil
}

// EncodeUint8 encodes v as one byte.
func EncodeUint8(v uint8) []byte { return encodeFixed(v, 1) }

// DecodeUint8 decodes one byte. Trailing bytes are ignored.
func DecodeUint8(b []byte) (uint8, error) { return decodeFixed[uint8](b, 1, "uint8") }

// EncodeUint16 encodes v as two big-endian bytes.
func EncodeUint16(v uint16) []byte { return encodeFixed(v, 2) }

// DecodeUint16 decodes the first two bytes as a big-endian uint16.
func DecodeUint16(b []byte) (uint16, error) { return decodeFixed[uint16](b, 2, "uint16") }

// EncodeUint32 encodes v as four big-endian bytes.
func EncodeUint32(v uint32) []byte { return encodeFixed(v, 4) }

// DecodeUint32 decodes the first four bytes as a big-endian uint32.
func DecodeUint32(b []byte) (uint32, error) { return decodeFixed[uint32](b, 4, "uint32") }

// EncodeUint64 encodes v as eight big-endian bytes.
func EncodeUint64(v uint64) []byte { return encodeFixed(v, 8) }

// DecodeUint64 decodes the first eight bytes as a big-endian uint64.
func DecodeUint64(b []byte) (uint64, error) { return decodeFixed[uint64](b, 8, "uint64") }

// EncodeInt8 encodes v as one two's-complement byte.
func EncodeInt8(v int8) []byte { return encodeFixed(v, 1) }

// DecodeInt8 decodes one byte as a two's-complement int8.
func DecodeInt8(b []byte) (int8, error) { return decodeFixed[int8](b, 1, "int8") }

// EncodeInt16 encodes v as two big-endian two's-complement bytes.
func EncodeInt16(v int16) []byte { return encodeFixed(v, 2) }

// DecodeInt16 decodes the first two bytes as a big-endian int16.
func DecodeInt16(b []byte) (int16, error) { return decodeFixed[int16](b, 2, "int16") }

// EncodeInt32 encodes v as four big-endian two's-complement bytes.
func EncodeInt32(v int32) []byte { return encodeFixed(v, 4) }

// DecodeInt32 decodes the first four bytes as a big-endian int32.
func DecodeInt32(b []byte) (int32, error) { return decodeFixed[int32](b, 4, "int32") }

// EncodeInt64 encodes v as eight big-endian two's-complement bytes.
func EncodeInt64(v int64) []byte { return encodeFixed(v, 8) }

// DecodeInt64 decodes the first eight bytes as a big-endian int64.
func DecodeInt64(b []byte) (int64, error) { return decodeFixed[int64](b, 8, "int64") }

// EncodeFloat32 encodes the IEEE-754 bit pattern of v as four big-endian
// bytes.
func EncodeFloat32(v float32) []byte { return encodeFixed(math.Float32bits(v), 4) }

// DecodeFloat32 decodes the first four bytes as a big-endian IEEE-754
// single-precision float.
func DecodeFloat32(b []byte) (float32, error) {
	u, err := decodeFixed[uint32](b, 4, "float32")
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// EncodeFloat64 encodes the IEEE-754 bit pattern of v as eight big-endian
// bytes.
func EncodeFloat64(v float64) []byte { return encodeFixed(math.Float64bits(v), 8) }

// DecodeFloat64 decodes the first eight bytes as a big-endian IEEE-754
// double-precision float.
func DecodeFloat64(b []byte) (float64, error) {
	u, err := decodeFixed[uint64](b, 8, "float64")
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}
