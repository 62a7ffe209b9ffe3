// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

// Token emission shared by both encoders. A token is one control byte, an
// optional literal run (varint-extended past 6 bytes, then the bytes
// themselves), an optional match-length varint, and the low 16 distance bits
// in little-endian order. A token byte whose top 3 bits are zero carries no
// literal run; the decoder only copies literals for a non-zero run field, so
// the encoding stays unambiguous.

// appendToken appends the pending literals lit followed by a back-reference
// of the given length and distance. length must be at least MinMatch and
// distance in [1, WindowSize).
func appendToken(out []byte, lit []byte, length, dist int) []byte {
	lenCode := length - MinMatch
	token := ((dist >> 12) & distHighFlag) | min(lenCode, maxInlineLenCode)

	if len(lit) > 0 {
		run := len(lit)
		if run >= maxInlineRun {
			out = append(out, byte((maxInlineRun<<runShift)|token))
			out = appendMod(out, uint32(run-maxInlineRun)) //nolint:gosec // G115: run >= maxInlineRun
		} else {
			out = append(out, byte((run<<runShift)|token))
		}

		out = append(out, lit...)
	} else {
		out = append(out, byte(token))
	}

	if lenCode >= maxInlineLenCode {
		out = appendMod(out, uint32(lenCode-maxInlineLenCode)) //nolint:gosec // G115: lenCode >= maxInlineLenCode
	}

	return append(out, byte(dist), byte(dist>>8))
}

// appendLiteralRun appends a final literal-only token with no back-reference.
// Only valid as the last token of a stream.
func appendLiteralRun(out []byte, lit []byte) []byte {
	run := len(lit)
	if run >= maxInlineRun {
		out = append(out, maxInlineRun<<runShift)
		out = appendMod(out, uint32(run-maxInlineRun)) //nolint:gosec // G115: run >= maxInlineRun
	} else {
		out = append(out, byte(run<<runShift))
	}

	return append(out, lit...)
}
