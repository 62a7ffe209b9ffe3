// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

// Level bounds for Compress. Higher levels probe longer hash chains and,
// from lazyMatchMinLevel up, apply the lazy-matching heuristic.
const (
	MinLevel = 1
	MaxLevel = 9

	lazyMatchMinLevel = 5
)

// chainBudget maps a compression level to its chain probe budget.
func chainBudget(level int) int {
	if level < MaxLevel {
		return 1 << level
	}

	return 1 << 13
}

// compressLevelCore is the chained parser: full chain search per position
// with a per-level probe budget, plus lazy matching at levels 5+.
// Appends the stream to dst and returns it.
func compressLevelCore(dst, src []byte, mf *matchFinder, level int) []byte {
	maxChain := chainBudget(level)
	lazy := level >= lazyMatchMinLevel

	out := dst
	inLen := len(src)
	anchor := 0

	pos := 0
	for pos < inLen {
		bestLen := 0
		dist := 0

		maxMatch := inLen - pos
		if maxMatch >= MinMatch {
			bestLen, dist = mf.bestMatch(src, pos, maxMatch, maxChain)
		}

		// A bare minimum match is not worth breaking a long literal run for.
		if bestLen == MinMatch && pos-anchor >= longRunBreakEven {
			bestLen = 0
		}

		// Lazy matching: drop the match when starting one byte later can do
		// strictly better. The pending-run-length-6 exclusion is a parity
		// constant inherited from the reference encoder; it has no known
		// rationale and must not be "fixed".
		if lazy && bestLen >= MinMatch && bestLen < maxMatch && pos-anchor != 6 {
			if mf.reachesLengthAt(src, pos+1, bestLen, maxChain) {
				bestLen = 0
			}
		}

		if bestLen >= MinMatch {
			out = appendToken(out, src[anchor:pos], bestLen, dist)

			// Keep the chains complete: every position covered by the match
			// is inserted before the scan resumes past it.
			for i := 0; i < bestLen; i++ {
				mf.insertChained(src, pos+i)
			}

			pos += bestLen
			anchor = pos
		} else {
			mf.insertChained(src, pos)
			pos++
		}
	}

	if anchor != pos {
		out = appendLiteralRun(out, src[anchor:pos])
	}

	return out
}
