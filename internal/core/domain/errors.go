package domain

import "errors"

// Domain errors represent analysis and configuration failures.
// These are distinct from infrastructure errors.
var (
	// ErrLoadFailure indicates a planning document could not be read.
	// It is recovered locally: the document is analysed as empty text.
	ErrLoadFailure = errors.New("document load failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownDocument indicates a name outside the fixed document set.
	ErrUnknownDocument = errors.New("unknown document")

	// ErrUnsupportedFormat indicates an unknown snapshot format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
