package wire

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer held as two 64-bit halves. Go has
// no native 128-bit type, so the catalog carries its own; the struct is
// comparable with ==.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// NewUint128 builds a Uint128 from its high and low 64-bit halves.
func NewUint128(hi, lo uint64) Uint128 { return Uint128{Hi: hi, Lo: lo} }

// Uint128From64 widens a uint64.
func Uint128From64(v uint64) Uint128 { return Uint128{Lo: v} }

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Cmp returns -1, 0 or 1 depending on whether u is less than, equal to or
// greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// String formats u in decimal.
func (u Uint128) String() string {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(u.Lo))
	return b.String()
}

// Int128 is a signed two's-complement 128-bit integer held as two 64-bit
// halves. The sign lives in the high half.
type Int128 struct {
	Hi int64
	Lo uint64
}

// NewInt128 builds an Int128 from its high and low halves.
func NewInt128(hi int64, lo uint64) Int128 { return Int128{Hi: hi, Lo: lo} }

// Int128From64 sign-extends an int64.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// Sign returns -1, 0 or 1 depending on whether i is negative, zero or
// positive.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	}
	return 1
}

// Cmp returns -1, 0 or 1 depending on whether i is less than, equal to or
// greater than v.
func (i Int128) Cmp(v Int128) int {
	switch {
	case i.Hi != v.Hi:
		if i.Hi < v.Hi {
			return -1
		}
		return 1
	case i.Lo != v.Lo:
		if i.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// String formats i in decimal.
func (i Int128) String() string {
	b := big.NewInt(i.Hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(i.Lo))
	return b.String()
}

// EncodeUint128 encodes v as sixteen big-endian bytes.
func EncodeUint128(v Uint128) []byte {
	out := make([]byte, 16)
	binary.BigEndian.PutUint64(out[:8], v.Hi)
	binary.BigEndian.PutUint64(out[8:], v.Lo)
	return out
}

// DecodeUint128 decodes the first sixteen bytes as a big-endian Uint128.
func DecodeUint128(b []byte) (Uint128, error) {
	if len(b) < 16 {
		return Uint128{}, fmt.Errorf("decode uint128: %w: have %d bytes, need 16", ErrTruncated, len(b))
	}
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}, nil
}

// EncodeInt128 encodes v as sixteen big-endian two's-complement bytes.
func EncodeInt128(v Int128) []byte {
	out := make([]byte, 16)
	binary.BigEndian.PutUint64(out[:8], uint64(v.Hi))
	binary.BigEndian.PutUint64(out[8:], v.Lo)
	return out
}

// DecodeInt128 decodes the first sixteen bytes as a big-endian Int128.
func DecodeInt128(b []byte) (Int128, error) {
	if len(b) < 16 {
		return Int128{}, fmt.Errorf("decode int128: %w: have %d bytes, need 16", ErrTruncated, len(b))
	}
	return Int128{
		Hi: int64(binary.BigEndian.Uint64(b[:8])),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}, nil
}
