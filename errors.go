package bytecodec

import "errors"

var (
	// ErrTruncatedData indicates that decoding could not complete because the
	// data ended before all expected bytes were available.
	ErrTruncatedData = errors.New("bytecodec: truncated data")

	// ErrTrailingData is returned by Unmarshal when bytes remain after the
	// value's own encoding ends.
	ErrTrailingData = errors.New("bytecodec: trailing data found after decoding")
)
