// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

/*
Package ulz implements ULZ compression and decompression, a byte-oriented
LZ77 format with a 128 KiB sliding window.

The stream is a headerless sequence of tokens. Each token byte packs three
fields: bits 7-5 hold the literal-run length (7 = extended by a varint),
bit 4 holds bit 16 of the back-reference distance, and bits 3-0 hold the
match length code (15 = extended by a varint, lengths count from the
4-byte minimum match). A token's literal bytes follow the run field, then
the low 16 bits of the distance in little-endian order. The final token
may carry only a literal run. There is no terminator, magic, length field
or checksum: callers must track the compressed and decompressed sizes
externally (for example in their own framing).

# Compress

CompressFast is the single-probe fast path and never fails. Compress takes
a level 1-9 trading speed for ratio (levels 5+ enable lazy matching) and
returns ErrInvalidLevel for anything outside that range:

	out := ulz.CompressFast(data)
	out, err := ulz.Compress(data, &ulz.CompressOptions{Level: 9})

To reuse caller-managed output memory, size it with CompressBound:

	dst := make([]byte, ulz.CompressBound(len(data)))
	n, err := ulz.CompressInto(dst, data, nil)
	// dst[:n] is the compressed stream

# Decompress

The decompressed size must be known (use DecompressOptions). From a byte
slice:

	out, err := ulz.Decompress(compressed, ulz.DefaultDecompressOptions(expectedLen))

To reuse caller-managed output memory:

	dst := make([]byte, expectedLen)
	out, err := ulz.DecompressInto(compressed, dst)

From an io.Reader (the whole stream is read first):

	out, err := ulz.DecompressFromReader(r, ulz.DefaultDecompressOptions(expectedLen))

Decoding is fully bounds-checked and fails with a sentinel error on any
truncated or corrupt stream; it never reads or writes out of range.

Match-finder positions are stored as int32; inputs of 2 GiB or more are not
supported.
*/
package ulz
