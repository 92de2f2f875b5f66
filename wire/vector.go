package wire

import (
	"encoding/binary"
	"math"
)

// encodeSlice packs each element into its own width-byte big-endian
// window, in order, with no separators or count prefix.
func encodeSlice[T integer](vs []T, width int) []byte {
	out := make([]byte, len(vs)*width)
	for i, v := range vs {
		putFixed(out[i*width:], v, width)
	}
	return out
}

// decodeSlice partitions b into width-byte windows and decodes one element
// per window. The element count is len(b)/width; a trailing partial window
// is dropped.
func decodeSlice[T integer](b []byte, width int) []T {
	n := len(b) / width
	out := make([]T, n)
	for i := range out {
		out[i] = getFixed[T](b[i*width:(i+1)*width], width)
	}
	return out
}

// EncodeBytes is the byte-vector fast path: the encoding of a byte slice
// is the slice itself, returned without copying. The result aliases the
// input.
func EncodeBytes(b []byte) []byte { return b }

// DecodeBytes is the byte-vector fast path: the input is the value. The
// result aliases the input and never fails.
func DecodeBytes(b []byte) ([]byte, error) { return b, nil }

// EncodeInt8Slice packs vs one byte per element.
func EncodeInt8Slice(vs []int8) []byte { return encodeSlice(vs, 1) }

// DecodeInt8Slice decodes one element per input byte.
func DecodeInt8Slice(b []byte) ([]int8, error) { return decodeSlice[int8](b, 1), nil }

// EncodeInt16Slice packs vs into two-byte big-endian windows.
func EncodeInt16Slice(vs []int16) []byte { return encodeSlice(vs, 2) }

// DecodeInt16Slice decodes one element per two-byte window.
func DecodeInt16Slice(b []byte) ([]int16, error) { return decodeSlice[int16](b, 2), nil }

// EncodeInt32Slice packs vs into four-byte big-endian windows.
func EncodeInt32Slice(vs []int32) []byte { return encodeSlice(vs, 4) }

// DecodeInt32Slice decodes one element per four-byte window.
func DecodeInt32Slice(b []byte) ([]int32, error) { return decodeSlice[int32](b, 4), nil }

// EncodeInt64Slice packs vs into eight-byte big-endian windows.
func EncodeInt64Slice(vs []int64) []byte { return encodeSlice(vs, 8) }

// DecodeInt64Slice decodes one element per eight-byte window.
func DecodeInt64Slice(b []byte) ([]int64, error) { return decodeSlice[int64](b, 8), nil }

// EncodeUint16Slice packs vs into two-byte big-endian windows.
func EncodeUint16Slice(vs []uint16) []byte { return encodeSlice(vs, 2) }

// DecodeUint16Slice decodes one element per two-byte window.
func DecodeUint16Slice(b []byte) ([]uint16, error) { return decodeSlice[uint16](b, 2), nil }

// EncodeUint32Slice packs vs into four-byte big-endian windows.
func EncodeUint32Slice(vs []uint32) []byte { return encodeSlice(vs, 4) }

// DecodeUint32Slice decodes one element per four-byte window.
func DecodeUint32Slice(b []byte) ([]uint32, error) { return decodeSlice[uint32](b, 4), nil }

// EncodeUint64Slice packs vs into eight-byte big-endian windows.
func EncodeUint64Slice(vs []uint64) []byte { return encodeSlice(vs, 8) }

// DecodeUint64Slice decodes one element per eight-byte window.
func DecodeUint64Slice(b []byte) ([]uint64, error) { return decodeSlice[uint64](b, 8), nil }

// EncodeUint128Slice packs vs into sixteen-byte big-endian windows.
func EncodeUint128Slice(vs []Uint128) []byte {
	out := make([]byte, len(vs)*16)
	for i, v := range vs {
		binary.BigEndian.PutUint64(out[i*16:], v.Hi)
		binary.BigEndian.PutUint64(out[i*16+8:], v.Lo)
	}
	return out
}

// DecodeUint128Slice decodes one element per sixteen-byte window.
func DecodeUint128Slice(b []byte) ([]Uint128, error) {
	n := len(b) / 16
	out := make([]Uint128, n)
	for i := range out {
		out[i].Hi = binary.BigEndian.Uint64(b[i*16:])
		out[i].Lo = binary.BigEndian.Uint64(b[i*16+8:])
	}
	return out, nil
}

// EncodeInt128Slice packs vs into sixteen-byte big-endian windows.
func EncodeInt128Slice(vs []Int128) []byte {
	out := make([]byte, len(vs)*16)
	for i, v := range vs {
		binary.BigEndian.PutUint64(out[i*16:], uint64(v.Hi))
		binary.BigEndian.PutUint64(out[i*16+8:], v.Lo)
	}
	return out
}

// DecodeInt128Slice decodes one element per sixteen-byte window.
func DecodeInt128Slice(b []byte) ([]Int128, error) {
	n := len(b) / 16
	out := make([]Int128, n)
	for i := range out {
		out[i].Hi = int64(binary.BigEndian.Uint64(b[i*16:]))
		out[i].Lo = binary.BigEndian.Uint64(b[i*16+8:])
	}
	return out, nil
}

// EncodeFloat32Slice packs the IEEE-754 bit patterns into four-byte
// big-endian windows.
func EncodeFloat32Slice(vs []float32) []byte {
	out := make([]byte, len(vs)*4)
	for i, v := range vs {
		putFixed(out[i*4:], math.Float32bits(v), 4)
	}
	return out
}

// DecodeFloat32Slice decodes one element per four-byte window.
func DecodeFloat32Slice(b []byte) ([]float32, error) {
	n := len(b) / 4
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(getFixed[uint32](b[i*4:(i+1)*4], 4))
	}
	return out, nil
}

// EncodeFloat64Slice packs the IEEE-754 bit patterns into eight-byte
// big-endian windows.
func EncodeFloat64Slice(vs []float64) []byte {
	out := make([]byte, len(vs)*8)
	for i, v := range vs {
		putFixed(out[i*8:], math.Float64bits(v), 8)
	}
	return out
}

// DecodeFloat64Slice decodes one element per eight-byte window.
func DecodeFloat64Slice(b []byte) ([]float64, error) {
	n := len(b) / 8
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(getFixed[uint64](b[i*8:(i+1)*8], 8))
	}
	return out, nil
}

// EncodeBoolSlice packs vs one byte per element using the boolean
// sentinels of EncodeBool.
func EncodeBoolSlice(vs []bool) []byte {
	out := make([]byte, len(vs))
	for i, v := range vs {
		if v {
			out[i] = trueByte
		}
	}
	return out
}

// DecodeBoolSlice decodes one element per input byte, applying the
// DecodeBool policy element-wise: any byte other than 0x01 is false.
func DecodeBoolSlice(b []byte) ([]bool, error) {
	out := make([]bool, len(b))
	for i, c := range b {
		out[i] = c == trueByte
	}
	return out, nil
}

// EncodeRuneSlice maps each rune to its Unicode scalar value and delegates
// to the uint32 slice layout. There is no separate byte layout for rune
// vectors.
func EncodeRuneSlice(rs []rune) []byte { return encodeSlice(rs, 4) }

// DecodeRuneSlice decodes one rune per four-byte window, validating each
// scalar value. The first illegal scalar fails the whole decode.
func DecodeRuneSlice(b []byte) ([]rune, error) {
	us := decodeSlice[uint32](b, 4)
	out := make([]rune, len(us))
	for i, u := range us {
		r, err := runeFromScalar(u)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
