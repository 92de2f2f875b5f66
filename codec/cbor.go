package codec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"

	"github.com/wippyai/wirecodec"
)

// CBOR is the fallback strategy for arbitrary structured types. It encodes
// with the CBOR core deterministic profile, so the determinism guarantee of
// the primitive catalog extends to this path: the same logical value
// always yields the same bytes.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ wirecodec.Codec = (*CBOR)(nil)

// NewCBOR builds a CBOR strategy with deterministic encoding and default
// decoding options.
func NewCBOR() (*CBOR, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("codec: cbor encode mode: %w", err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("codec: cbor decode mode: %w", err)
	}
	return &CBOR{enc: enc, dec: dec}, nil
}

// Name implements wirecodec.Codec.
func (c *CBOR) Name() string { return "cbor" }

// Encode implements wirecodec.Codec.
func (c *CBOR) Encode(v any) ([]byte, error) {
	data, err := c.enc.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: cbor encode: %w", err)
	}
	return data, nil
}

// Decode implements wirecodec.Codec. Malformed input is rejected with a
// wrapped error; no partial result is written through v on failure.
func (c *CBOR) Decode(data []byte, v any) error {
	if err := c.dec.Unmarshal(data, v); err != nil {
		Logger().Debug("cbor payload rejected",
			zap.Int("len", len(data)),
			zap.Error(err))
		return fmt.Errorf("codec: cbor decode: %w", err)
	}
	return nil
}
