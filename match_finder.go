// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

import "encoding/binary"

// matchFinder is the hashed-chain match finder shared by both encoders.
// head maps a 19-bit prefix hash to the most recently inserted position with
// that hash; prev is a ring over the window recording, for each inserted
// position, the previous position that shared its bucket. A prev link that
// falls outside the current window ends the chain: the ring only retains the
// most recent WindowSize entries, so older links are stale by construction.
type matchFinder struct {
	head [hashSize]int32
	prev [WindowSize]int32
}

// reset empties every hash bucket. prev needs no clearing: chains are only
// entered through head, and every reachable link was written after the reset.
func (m *matchFinder) reset() {
	for i := range m.head {
		m.head[i] = nilPos
	}
}

// hashPrefix hashes the 4-byte little-endian prefix at pos.
func hashPrefix(src []byte, pos int) uint32 {
	return (binary.LittleEndian.Uint32(src[pos:]) * hashMul) >> (32 - hashBits)
}

// insert records pos as the newest position for its prefix hash without
// maintaining a chain (fast-encoder mode). Positions too close to the end of
// src to carry a full prefix are skipped; no later probe could use them.
func (m *matchFinder) insert(src []byte, pos int) {
	if pos+MinMatch > len(src) {
		return
	}

	m.head[hashPrefix(src, pos)] = int32(pos) //nolint:gosec // G115: positions bounded by len(src)
}

// insertChained records pos like insert, first linking the displaced bucket
// value into the chain ring (normal-encoder mode).
func (m *matchFinder) insertChained(src []byte, pos int) {
	if pos+MinMatch > len(src) {
		return
	}

	h := hashPrefix(src, pos)
	m.prev[pos&windowMask] = m.head[h]
	m.head[h] = int32(pos) //nolint:gosec // G115: positions bounded by len(src)
}

// bestMatch walks the chain for the prefix at pos and returns the longest
// match of at least MinMatch bytes, as (length, distance); length is 0 when
// no candidate qualifies. Chains are most-recent-first, so an equal-length
// candidate found later never replaces an earlier (nearer) one. The walk
// stops at a full-length match, after budget candidates, or when a link
// leaves the window. maxLen must not exceed len(src)-pos.
func (m *matchFinder) bestMatch(src []byte, pos, maxLen, budget int) (bestLen, dist int) {
	limit := max(pos-WindowSize, -1)
	probe := binary.LittleEndian.Uint32(src[pos:])

	s := int(m.head[hashPrefix(src, pos)])
	for s > limit {
		// Cheap reject: a longer match must agree at the current best offset.
		if src[s+bestLen] == src[pos+bestLen] && binary.LittleEndian.Uint32(src[s:]) == probe {
			length := MinMatch
			for length < maxLen && src[s+length] == src[pos+length] {
				length++
			}

			if length > bestLen {
				bestLen = length
				dist = pos - s

				if length == maxLen {
					break
				}
			}
		}

		budget--
		if budget == 0 {
			break
		}

		s = int(m.prev[s&windowMask])
	}

	return bestLen, dist
}

// reachesLengthAt reports whether some candidate at pos matches at least
// curLen+1 bytes. Used by the lazy-matching heuristic: if deferring the match
// by one byte can do strictly better, the current match is dropped.
func (m *matchFinder) reachesLengthAt(src []byte, pos, curLen, budget int) bool {
	targetLen := curLen + 1
	if targetLen > len(src)-pos {
		// No candidate can match past the end of input.
		return false
	}

	limit := max(pos-WindowSize, -1)
	probe := binary.LittleEndian.Uint32(src[pos:])

	s := int(m.head[hashPrefix(src, pos)])
	for s > limit {
		if src[s+curLen] == src[pos+curLen] && binary.LittleEndian.Uint32(src[s:]) == probe {
			length := MinMatch
			for length < targetLen && src[s+length] == src[pos+length] {
				length++
			}

			if length == targetLen {
				return true
			}
		}

		budget--
		if budget == 0 {
			break
		}

		s = int(m.prev[s&windowMask])
	}

	return false
}
