package wire

import "errors"

// Decode failure taxonomy. Every error returned by a decode function in
// this package wraps exactly one of these sentinels, so callers can match
// with errors.Is regardless of the added context.
var (
	// ErrTruncated is returned when the input holds fewer bytes than the
	// fixed width the decoded type requires.
	ErrTruncated = errors.New("wire: truncated input")

	// ErrMalformedText is returned when string input is not valid UTF-8.
	ErrMalformedText = errors.New("wire: malformed UTF-8 text")

	// ErrInvalidScalar is returned when a decoded 32-bit value is not a
	// legal Unicode scalar value (a surrogate, or beyond U+10FFFF).
	ErrInvalidScalar = errors.New("wire: invalid Unicode scalar value")
)
