// Package envelope frames variable-length payloads so that several encoded
// values can travel in one byte sequence.
//
// The wire package's text and vector encodings carry no length prefix: a
// payload's boundary is assumed to be the boundary of the byte sequence it
// arrived in. A composite message built from several field-level encodings
// therefore needs explicit framing, which this package supplies: each
// payload is written as a four-byte big-endian length followed by its
// bytes, concatenated in order.
//
//	var b envelope.Builder
//	b.Append(wire.EncodeString("alice"))
//	b.Append(wire.EncodeUint64(42))
//	frames := b.Bytes()
//
//	parts, err := envelope.Split(frames)
//	// parts[0] -> "alice", parts[1] -> 42, in the order appended
//
// Unlike the wire package's vector decode, Split treats a trailing partial
// frame as an error: a length prefix is an explicit claim about the bytes
// that follow, so truncation is detectable and must fail.
package envelope
