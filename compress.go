// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

// CompressBound returns the worst-case compressed size for n input bytes.
// Incompressible data costs at most one control byte per 127-byte span of
// varint payload plus a small constant of token overhead.
func CompressBound(n int) int {
	return n + n/127 + 16
}

// CompressFast compresses src with the single-probe fast encoder.
// It succeeds for any input, including empty (which yields an empty stream).
func CompressFast(src []byte) []byte {
	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)

	return compressFastCore(make([]byte, 0, CompressBound(len(src))), src, mf)
}

// CompressFastInto compresses src with the fast encoder into dst and returns
// the number of bytes written. dst must hold at least CompressBound(len(src))
// bytes; otherwise ErrOutputOverrun is returned and dst is untouched.
func CompressFastInto(dst, src []byte) (int, error) {
	if len(dst) < CompressBound(len(src)) {
		return 0, ErrOutputOverrun
	}

	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)

	out := compressFastCore(dst[:0], src, mf)
	return len(out), nil
}

// Compress compresses src with the chained encoder at opts.Level. opts may be
// nil (default level 1). Returns ErrInvalidLevel if the level is outside
// [MinLevel, MaxLevel]; it never fails otherwise.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if opts.Level < MinLevel || opts.Level > MaxLevel {
		return nil, ErrInvalidLevel
	}

	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)

	return compressLevelCore(make([]byte, 0, CompressBound(len(src))), src, mf, opts.Level), nil
}

// CompressInto compresses src into dst and returns the number of bytes
// written. Same level handling as Compress; dst must hold at least
// CompressBound(len(src)) bytes.
func CompressInto(dst, src []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if opts.Level < MinLevel || opts.Level > MaxLevel {
		return 0, ErrInvalidLevel
	}

	if len(dst) < CompressBound(len(src)) {
		return 0, ErrOutputOverrun
	}

	mf := acquireMatchFinder()
	defer releaseMatchFinder(mf)

	out := compressLevelCore(dst[:0], src, mf, opts.Level)
	return len(out), nil
}
