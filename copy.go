// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

// copyBackRef copies length bytes from dst[outPos-dist:] to dst[outPos:].
// When dist < length the source and destination overlap and the copy must be
// byte-by-byte so that run-length-style repeats come out correct; the
// built-in copy does not handle overlapping regions where src precedes dst.
func copyBackRef(dst []byte, outPos, dist, length int) error {
	mPos := outPos - dist
	if mPos < 0 {
		return ErrLookBehindUnderrun
	}

	if outPos+length > len(dst) {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outPos:outPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outPos+i] = dst[mPos+i]
	}

	return nil
}
