package wire

import (
	"fmt"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// trueByte is the boolean wire sentinel for true.
const trueByte = 0x01

// EncodeBool encodes v as one byte: 0x01 for true, 0x00 for false.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{trueByte}
	}
	return []byte{0}
}

// DecodeBool decodes one byte. Any byte other than 0x01 decodes as false;
// the permissive policy keeps boolean vector decode total over every
// possible input byte. Trailing bytes are ignored.
func DecodeBool(b []byte) (bool, error) {
	if len(b) < 1 {
		return false, fmt.Errorf("decode bool: %w: have 0 bytes, need 1", ErrTruncated)
	}
	return b[0] == trueByte, nil
}

// EncodeRune encodes r via its Unicode scalar value as a big-endian
// uint32.
func EncodeRune(r rune) []byte { return encodeFixed(uint32(r), 4) }

// DecodeRune decodes the first four bytes as a big-endian uint32 and
// validates that it is a legal Unicode scalar value. Surrogate code points
// and values beyond U+10FFFF fail with ErrInvalidScalar.
func DecodeRune(b []byte) (rune, error) {
	u, err := decodeFixed[uint32](b, 4, "rune")
	if err != nil {
		return 0, err
	}
	return runeFromScalar(u)
}

func runeFromScalar(u uint32) (rune, error) {
	if u > uint32(unicode.MaxRune) || utf16.IsSurrogate(rune(u)) {
		return 0, fmt.Errorf("decode rune: %w: %#x", ErrInvalidScalar, u)
	}
	return rune(u), nil
}

// EncodeString encodes s as its raw UTF-8 bytes with no length prefix:
// the byte sequence for text is its content. Callers moving strings over
// a shared channel are responsible for framing (see the envelope package).
func EncodeString(s string) []byte { return []byte(s) }

// DecodeString validates the entire input as UTF-8 and returns it as a
// string. Invalid UTF-8 fails with ErrMalformedText.
func DecodeString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("decode string: %w", ErrMalformedText)
	}
	return string(b), nil
}

// Unit is the empty value. It encodes to zero bytes.
type Unit struct{}

// EncodeUnit encodes the unit value as a zero-length byte sequence.
func EncodeUnit(Unit) []byte { return []byte{} }

// DecodeUnit returns the unit value. Any input is accepted, including a
// non-empty one; there is nothing to validate.
func DecodeUnit([]byte) (Unit, error) { return Unit{}, nil }
