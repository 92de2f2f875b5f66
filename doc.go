// Package wirecodec provides a deterministic byte encoding for message
// payloads exchanged between processes over a network boundary.
//
// # Architecture Overview
//
// The library is organized into a small set of packages with distinct
// responsibilities:
//
//	wirecodec/           Root package with the pluggable Codec contract
//	├── wire/            The codec catalog: primitive and vector codecs
//	├── codec/           Codec strategies for arbitrary structured types
//	├── envelope/        Length framing for composite payloads
//	└── cmd/wirec/       CLI inspector for encoding and decoding values
//
// # Quick Start
//
// Encode and decode a primitive value:
//
//	payload := wire.EncodeUint32(300)   // [0x00 0x00 0x01 0x2C]
//	v, err := wire.DecodeUint32(payload)
//
// Frame several payloads into one byte sequence:
//
//	var b envelope.Builder
//	b.Append(wire.EncodeString("hi"))
//	b.Append(wire.EncodeInt16Slice([]int16{1, -1}))
//	parts, err := envelope.Split(b.Bytes())
//
// Fall back to a structured codec for types outside the catalog:
//
//	c, _ := codec.NewCBOR()
//	data, err := c.Encode(myStruct)
//
// # Determinism
//
// All fixed-width values are encoded big-endian, and no codec exists for
// architecture-width integer types, so the same logical value produces the
// same bytes on every host. See the wire package for the layout rules.
package wirecodec
