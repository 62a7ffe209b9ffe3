// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

// ULZ format constants: window and match bounds, hash parameters, token bit layout.

// Window and match bounds.
const (
	WindowBits = 17              // sliding window address bits
	WindowSize = 1 << WindowBits // maximum back-reference distance is WindowSize-1
	MinMatch   = 4               // minimum back-reference length

	windowMask = WindowSize - 1
)

// Match-finder hash parameters (Fibonacci hash over a 4-byte prefix).
const (
	hashBits = 19
	hashSize = 1 << hashBits
	hashMul  = 0x9E3779B9
)

// nilPos marks an empty hash bucket or the end of a chain.
const nilPos int32 = -1

// Token byte layout: bits 7-5 literal-run length, bit 4 distance bit 16,
// bits 3-0 match length code.
const (
	runShift         = 5  // literal-run field position in the token byte
	maxInlineRun     = 7  // run lengths 0-6 are inline; 7 means "plus varint"
	maxInlineLenCode = 15 // length codes 0-14 are inline; 15 means "plus varint"
	distHighFlag     = 16 // token bit carrying bit 16 of the distance

	// longRunBreakEven is the pending-literal-run length at which a bare
	// minimum-length match no longer pays for its token overhead. Tied to the
	// first continuation boundary of the remainder varint; do not generalize.
	longRunBreakEven = maxInlineRun + 128
)
