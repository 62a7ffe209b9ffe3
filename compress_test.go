package ulz

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

// repeatAtDistance returns a buffer whose first 16 bytes recur at exactly
// dist bytes later, with seeded incompressible filler in between.
func repeatAtDistance(dist int) []byte {
	rng := rand.New(rand.NewSource(7))
	buf := make([]byte, dist+16)
	rng.Read(buf[:dist])
	copy(buf[dist:], buf[:16])
	return buf
}

func randomBytes(n int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	rng.Read(buf)
	return buf
}

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "below-min-match", data: []byte("abc")},
		{name: "short-text", data: []byte("hello world, ulz test")},
		{name: "sixteen-a", data: bytes.Repeat([]byte{'A'}, 16)},
		{name: "same-byte-1000", data: bytes.Repeat([]byte{0x42}, 1000)},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "random-10k", data: randomBytes(10000, 1)},
		{name: "multiple-of-8", data: randomBytes(4096, 2)},
		{name: "not-multiple-of-8", data: randomBytes(4097, 3)},
		{name: "window-edge-inside", data: repeatAtDistance(WindowSize - 1)},
		{name: "window-edge-outside", data: repeatAtDistance(WindowSize)},
	}
}

func TestCompressDecompress_RoundTripAcrossLevels(t *testing.T) {
	for _, in := range testInputSet() {
		for level := MinLevel; level <= MaxLevel; level++ {
			name := fmt.Sprintf("%s/level-%d", in.name, level)
			t.Run(name, func(t *testing.T) {
				cmp, err := Compress(in.data, &CompressOptions{Level: level})
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}
				if len(cmp) > CompressBound(len(in.data)) {
					t.Fatalf("compressed size %d exceeds CompressBound %d", len(cmp), CompressBound(len(in.data)))
				}

				out, err := Decompress(cmp, DefaultDecompressOptions(len(in.data)))
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
				}

				outReader, err := DecompressFromReader(bytes.NewReader(cmp), DefaultDecompressOptions(len(in.data)))
				if err != nil {
					t.Fatalf("DecompressFromReader failed: %v", err)
				}
				if !bytes.Equal(outReader, in.data) {
					t.Fatalf("reader round-trip mismatch: got=%d want=%d", len(outReader), len(in.data))
				}
			})
		}
	}
}

func TestCompressFast_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp := CompressFast(in.data)
			if len(cmp) > CompressBound(len(in.data)) {
				t.Fatalf("compressed size %d exceeds CompressBound %d", len(cmp), CompressBound(len(in.data)))
			}

			out, err := Decompress(cmp, DefaultDecompressOptions(len(in.data)))
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
			}
		})
	}
}

func TestCompress_InvalidLevels(t *testing.T) {
	data := []byte("level check payload")

	for _, level := range []int{-1000, -1, 0, 10, 11, 100} {
		if _, err := Compress(data, &CompressOptions{Level: level}); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("Compress level=%d: got %v, want ErrInvalidLevel", level, err)
		}
		if _, err := CompressInto(make([]byte, CompressBound(len(data))), data, &CompressOptions{Level: level}); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("CompressInto level=%d: got %v, want ErrInvalidLevel", level, err)
		}
	}

	for level := MinLevel; level <= MaxLevel; level++ {
		if _, err := Compress(data, &CompressOptions{Level: level}); err != nil {
			t.Errorf("Compress level=%d: unexpected error %v", level, err)
		}
	}
}

func TestCompress_Deterministic(t *testing.T) {
	data := append(randomBytes(8000, 4), bytes.Repeat([]byte("determinism"), 300)...)

	for level := MinLevel; level <= MaxLevel; level++ {
		a, err := Compress(data, &CompressOptions{Level: level})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}
		b, err := Compress(data, &CompressOptions{Level: level})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("level %d: repeated compression not byte-identical", level)
		}
	}

	if !bytes.Equal(CompressFast(data), CompressFast(data)) {
		t.Fatal("repeated fast compression not byte-identical")
	}
}

func TestCompress_EmptyInputYieldsEmptyStream(t *testing.T) {
	if got := CompressFast(nil); len(got) != 0 {
		t.Fatalf("CompressFast(nil) = %d bytes, want 0", len(got))
	}

	cmp, err := Compress(nil, &CompressOptions{Level: 5})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(cmp) != 0 {
		t.Fatalf("Compress(nil) = %d bytes, want 0", len(cmp))
	}

	out, err := Decompress(nil, DefaultDecompressOptions(0))
	if err != nil {
		t.Fatalf("Decompress of empty stream failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("Decompress of empty stream wrote %d bytes, want 0", len(out))
	}
}

func TestCompress_BelowMinMatchIsSingleLiteralToken(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30}
	want := []byte{3 << 5, 0x10, 0x20, 0x30}

	cmp, err := Compress(data, &CompressOptions{Level: 9})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !bytes.Equal(cmp, want) {
		t.Fatalf("compressed stream = % x, want % x", cmp, want)
	}
	if !bytes.Equal(CompressFast(data), want) {
		t.Fatalf("fast stream = % x, want % x", CompressFast(data), want)
	}

	out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch for literal-only stream")
	}
}

func TestCompress_SixteenRepeatedBytesLevel5(t *testing.T) {
	data := bytes.Repeat([]byte{'A'}, 16)

	cmp, err := Compress(data, &CompressOptions{Level: 5})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(cmp, DefaultDecompressOptions(16))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch: got % x", out)
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(1))
	f.Add([]byte("hello world"), uint8(5))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(9))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(7))

	f.Fuzz(func(t *testing.T, data []byte, level uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		lvl := MinLevel + int(level)%(MaxLevel-MinLevel+1)
		cmp, err := Compress(data, &CompressOptions{Level: lvl})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}

		fast := CompressFast(data)
		out, err = Decompress(fast, DefaultDecompressOptions(len(data)))
		if err != nil {
			t.Fatalf("Decompress of fast stream failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("fast round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
