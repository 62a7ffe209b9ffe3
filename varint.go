// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

// Remainder varint: 7 payload bits per byte, high bit set means "more bytes
// follow". The encoder subtracts 128 before shifting, so the decoder can add
// raw byte values without masking; both sides must agree on this exact form.

// appendMod appends x in remainder-varint form.
func appendMod(out []byte, x uint32) []byte {
	for x >= 128 {
		x -= 128
		out = append(out, byte(128+(x&127)))
		x >>= 7
	}

	return append(out, byte(x))
}

// decodeMod reads one remainder varint from src at *inPos and advances *inPos.
// At most 4 bytes are consumed. Returns ErrInputOverrun on truncation.
func decodeMod(src []byte, inPos *int) (uint32, error) {
	var x uint32
	for shift := 0; shift <= 21; shift += 7 {
		if *inPos >= len(src) {
			return 0, ErrInputOverrun
		}

		c := uint32(src[*inPos])
		*inPos++

		x += c << shift
		if c < 128 {
			break
		}
	}

	return x, nil
}
