// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

// Decompress decompresses a ULZ stream from src into a buffer of length
// opts.OutLen. Returns ErrOptionsRequired if opts is nil or OutLen is
// negative. The stream must produce exactly OutLen bytes: a shortfall means
// the stream was cut at a token boundary and fails with ErrInputOverrun.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrOptionsRequired
	}

	dst := make([]byte, opts.OutLen)
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	if n != opts.OutLen {
		return nil, ErrInputOverrun
	}

	return dst, nil
}

// DecompressInto decompresses src into the caller-owned dst. len(dst) is the
// declared decompressed size; a stream needing more fails with
// ErrOutputOverrun, one producing less fails with ErrInputOverrun.
func DecompressInto(src, dst []byte) ([]byte, error) {
	n, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	if n != len(dst) {
		return nil, ErrInputOverrun
	}

	return dst, nil
}

// decompressCore decodes the token stream in a single bounds-checked pass.
// Every read and write is verified before the access; any truncated or
// malformed field fails with a sentinel error and no partial result.
// Success requires consuming src exactly.
func decompressCore(src, dst []byte) (int, error) {
	inPos := 0
	outPos := 0

	for inPos < len(src) {
		token := int(src[inPos])
		inPos++

		// Literal phase: only a non-zero run field copies literals.
		if token >= 1<<runShift {
			run := token >> runShift
			if run == maxInlineRun {
				ext, err := decodeMod(src, &inPos)
				if err != nil {
					return 0, err
				}

				run += int(ext)
			}

			if err := copyLiteralRun(src, &inPos, dst, &outPos, run); err != nil {
				return 0, err
			}

			// A trailing literal-only token ends the stream.
			if inPos >= len(src) {
				break
			}
		}

		// Match phase.
		length := (token & maxInlineLenCode) + MinMatch
		if length == maxInlineLenCode+MinMatch {
			ext, err := decodeMod(src, &inPos)
			if err != nil {
				return 0, err
			}

			length += int(ext)
		}

		if len(dst)-outPos < length {
			return 0, ErrOutputOverrun
		}

		distLow, err := readStreamLE16(src, &inPos)
		if err != nil {
			return 0, err
		}

		dist := ((token & distHighFlag) << 12) | int(distLow)
		if dist == 0 {
			return 0, ErrLookBehindUnderrun
		}

		if err := copyBackRef(dst, outPos, dist, length); err != nil {
			return 0, err
		}

		outPos += length
	}

	return outPos, nil
}

// readStreamLE16 reads one little-endian uint16 from src at *inPos and advances *inPos by 2.
func readStreamLE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, ErrInputOverrun
	}

	lo := uint16(src[*inPos])
	hi := uint16(src[*inPos+1])
	*inPos += 2

	return lo | hi<<8, nil
}

// copyLiteralRun copies n bytes from src[*inPos:] to dst[*outPos:] and advances both cursors.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if *outPos+n > len(dst) {
		return ErrOutputOverrun
	}

	if *inPos+n > len(src) {
		return ErrInputOverrun
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
