package ulz

import "io"

// DecompressFromReader drains r and decompresses the result as one ULZ
// stream. The format is headerless, so the reader must yield exactly one
// compressed stream and opts.OutLen must carry its decompressed size from the
// caller's framing. With opts.MaxInputSize > 0, reading more than that many
// bytes returns ErrInputTooLarge before any decoding starts.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}
