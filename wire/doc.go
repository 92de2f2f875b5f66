// Package wire implements a symmetric, lossless byte encoding for a fixed
// catalog of primitive and vector types, used to serialize message payloads
// exchanged between processes over a network boundary.
//
// Every codec is a pure, stateless Encode/Decode function pair. The byte
// layout is deterministic across hosts: all fixed-width values are written
// big-endian (network byte order), and no architecture-width types are
// supported, so a payload encoded on one host decodes identically on any
// other.
//
// # Catalog
//
//	Fixed width:     uint8/16/32/64/128, int8/16/32/64/128, float32/64
//	One byte:        bool (0x01 true, anything else false on decode)
//	Four bytes:      rune (the Unicode scalar value as uint32)
//	Variable width:  string (raw UTF-8, no length prefix), []byte (identity)
//	Zero width:      Unit
//	Vectors:         a slice codec per element type; elements are packed
//	                 back to back in fixed-width windows with no separators
//	                 or count prefix
//
// # Layout rules
//
// A fixed-width scalar of type T always encodes to exactly sizeof(T) bytes.
// Decode reads only that prefix and ignores trailing bytes. A slice encodes
// as the concatenation of its elements' encodings; the receiver derives the
// element count as len(data)/width, dropping a trailing partial window.
// Strings and byte slices own the entire input on decode.
//
// Decoding the payload of one type as another is not detectable here and is
// the caller's responsibility to prevent; see the envelope package for
// framing composite payloads.
//
// # Errors
//
// Every decode failure wraps one of three sentinels: ErrTruncated (input
// shorter than a required fixed width), ErrMalformedText (string input is
// not valid UTF-8), or ErrInvalidScalar (a decoded 32-bit value is not a
// legal Unicode scalar value). Failures are terminal for the call; no
// decode ever substitutes a default value.
package wire
