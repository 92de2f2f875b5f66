package envelope

import (
	"bytes"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/wirecodec/wire"
)

// headerLen is the size of the length prefix before each payload.
const headerLen = 4

// Builder accumulates framed payloads. The zero value is ready to use.
// A Builder is not safe for concurrent use.
type Builder struct {
	buf bytes.Buffer
}

// Append frames payload with a four-byte big-endian length prefix and
// appends it. Empty payloads are legal and round-trip as empty. Append
// panics if the payload exceeds the frame capacity of 4 GiB; a payload
// that size indicates a programming error, not a runtime condition.
func (b *Builder) Append(payload []byte) {
	if uint64(len(payload)) > math.MaxUint32 {
		panic("envelope: payload exceeds frame capacity")
	}
	b.buf.Write(wire.EncodeUint32(uint32(len(payload))))
	b.buf.Write(payload)
}

// Len returns the number of framed bytes accumulated so far.
func (b *Builder) Len() int { return b.buf.Len() }

// Bytes returns the framed byte sequence. The result aliases the
// Builder's buffer and is invalidated by further Append calls.
func (b *Builder) Bytes() []byte { return b.buf.Bytes() }

// Reset discards all accumulated frames.
func (b *Builder) Reset() { b.buf.Reset() }

// Split partitions a framed byte sequence back into its payloads, in
// order. The entire input is consumed. Each returned payload aliases the
// input. An empty input yields no payloads.
//
// Split fails with wire.ErrTruncated when a frame header is cut short or
// a declared length overruns the remaining bytes.
func Split(data []byte) ([][]byte, error) {
	var payloads [][]byte
	for off := 0; off < len(data); {
		n, err := wire.DecodeUint32(data[off:])
		if err != nil {
			Logger().Debug("framed sequence rejected",
				zap.Int("offset", off),
				zap.Error(err))
			return nil, fmt.Errorf("envelope: frame %d header: %w", len(payloads), err)
		}
		off += headerLen
		if uint64(n) > uint64(len(data)-off) {
			Logger().Debug("framed sequence rejected",
				zap.Int("offset", off),
				zap.Uint32("declared", n),
				zap.Int("remaining", len(data)-off))
			return nil, fmt.Errorf("envelope: frame %d claims %d bytes, %d remain: %w",
				len(payloads), n, len(data)-off, wire.ErrTruncated)
		}
		payloads = append(payloads, data[off:off+int(n):off+int(n)])
		off += int(n)
	}
	return payloads, nil
}
