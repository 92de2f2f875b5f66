package wirecodec

// Codec is a pluggable encode/decode strategy for whole values. The wire
// package covers the primitive catalog with per-type function pairs; a
// Codec covers everything else, typically by deferring to a
// general-purpose structured serialization format. Implementations must
// be safe for concurrent use.
type Codec interface {
	// Name identifies the strategy, e.g. for configuration or logging.
	Name() string
	// Encode serializes v to a fresh byte sequence owned by the caller.
	Encode(v any) ([]byte, error)
	// Decode deserializes data into v, which must be a pointer. A failure
	// is terminal: v is left in an unspecified state and no partial
	// result is returned.
	Decode(data []byte, v any) error
}
