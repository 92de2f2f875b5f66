// Package codec provides pluggable serialization strategies implementing
// the wirecodec.Codec contract.
//
// The wire package handles the primitive catalog; strategies here cover
// arbitrary structured types that fall outside it. The only strategy
// currently shipped is CBOR, configured for deterministic encoding so that
// equal values always produce equal bytes.
//
// Strategy selection is the caller's concern: pick one strategy per
// deployment and use it on both ends of the channel. Nothing in the
// payload identifies which strategy produced it.
package codec
