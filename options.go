// SPDX-License-Identifier: MIT
// Source: github.com/tomsim/ulz

package ulz

// CompressOptions configures compression.
type CompressOptions struct {
	// Level: MinLevel..MaxLevel (1-9). Higher levels search longer hash
	// chains and enable lazy matching from level 5; better ratio, slower.
	Level int
}

// DefaultCompressOptions returns options for the fastest chained level (1).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: MinLevel}
}

// DecompressOptions configures decompression.
// OutLen is required (the stream carries no size); MaxInputSize limits reads
// when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}
