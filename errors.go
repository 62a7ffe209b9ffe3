// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrInvalidLevel is returned when Compress is called with a level outside [MinLevel, MaxLevel].
	ErrInvalidLevel = errors.New("invalid compression level")
	// ErrInputOverrun is returned when the decoder would read past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when a copy would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
