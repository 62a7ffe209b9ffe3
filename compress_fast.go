// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

import "encoding/binary"

// compressFastCore is the single-probe fast parser: one hash probe per
// position, no chain walk. Appends the stream to dst and returns it.
func compressFastCore(dst, src []byte, mf *matchFinder) []byte {
	out := dst
	inLen := len(src)
	anchor := 0

	pos := 0
	for pos < inLen {
		bestLen := 0
		dist := 0

		maxMatch := inLen - pos
		if maxMatch >= MinMatch {
			limit := max(pos-WindowSize, -1)

			// Probe and insert in one step: the bucket holds at most one
			// candidate in fast mode.
			h := hashPrefix(src, pos)
			s := int(mf.head[h])
			mf.head[h] = int32(pos) //nolint:gosec // G115: positions bounded by len(src)

			if s > limit && binary.LittleEndian.Uint32(src[s:]) == binary.LittleEndian.Uint32(src[pos:]) {
				length := MinMatch
				for length < maxMatch && src[s+length] == src[pos+length] {
					length++
				}

				bestLen = length
				dist = pos - s
			}
		}

		// A bare minimum match is not worth breaking a long literal run for.
		if bestLen == MinMatch && pos-anchor >= longRunBreakEven {
			bestLen = 0
		}

		if bestLen >= MinMatch {
			out = appendToken(out, src[anchor:pos], bestLen, dist)

			// Seed the finder with the positions right after the match start
			// before jumping past the matched region.
			mf.insert(src, pos+1)
			mf.insert(src, pos+2)
			mf.insert(src, pos+3)

			pos += bestLen
			anchor = pos
		} else {
			pos++
		}
	}

	if anchor != pos {
		out = appendLiteralRun(out, src[anchor:pos])
	}

	return out
}
