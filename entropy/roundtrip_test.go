package entropy_test

import (
	"bytes"
	"testing"

	"biowave/entropy"
	"biowave/entropy/brotli"
	"biowave/entropy/flate"
	"biowave/entropy/gozstd"
	"biowave/entropy/huffman"
	"biowave/entropy/lz4"
	"biowave/entropy/rle"
	"biowave/entropy/simple8b"
	"biowave/entropy/snappy"
	"biowave/entropy/xz"
	"biowave/entropy/zstd"
)

func allCodecs() []entropy.Codec {
	return []entropy.Codec{
		zstd.Codec{},
		gozstd.Codec{},
		flate.Codec{},
		snappy.Codec{},
		lz4.Codec{},
		brotli.Codec{},
		xz.Codec{},
		huffman.Codec{},
		simple8b.Codec{},
		rle.Codec{},
	}
}

func lcgBytes(n int) []byte {
	out := make([]byte, n)
	x := uint32(0x2545f491)
	for i := range out {
		x = x*1664525 + 1013904223
		out[i] = byte(x >> 24)
	}
	return out
}

func runHeavy(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte((i / 97) % 7)
	}
	return out
}

func TestCodecRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":     {},
		"one byte":  {0x5a},
		"zeros":     make([]byte, 4096),
		"noise":     lcgBytes(4096),
		"run heavy": runHeavy(4096),
	}
	for _, c := range allCodecs() {
		for name, in := range inputs {
			compressed, err := c.Compress(nil, in)
			if err != nil {
				t.Errorf("%q compress %s: %v", c.Tag(), name, err)
				continue
			}
			out, err := c.Decompress(nil, compressed)
			if err != nil {
				t.Errorf("%q decompress %s: %v", c.Tag(), name, err)
				continue
			}
			if !bytes.Equal(in, out) {
				t.Errorf("%q round trip of %s: got %d bytes, want %d, content mismatch",
					c.Tag(), name, len(out), len(in))
			}
		}
	}
}

func TestCodecAppendsToDst(t *testing.T) {
	prefix := []byte("keep")
	in := lcgBytes(256)
	for _, c := range allCodecs() {
		compressed, err := c.Compress(append([]byte(nil), prefix...), in)
		if err != nil {
			t.Fatalf("%q compress: %v", c.Tag(), err)
		}
		if !bytes.HasPrefix(compressed, prefix) {
			t.Errorf("%q compress overwrote dst prefix", c.Tag())
		}
		out, err := c.Decompress(append([]byte(nil), prefix...), compressed[len(prefix):])
		if err != nil {
			t.Fatalf("%q decompress: %v", c.Tag(), err)
		}
		if !bytes.HasPrefix(out, prefix) {
			t.Errorf("%q decompress overwrote dst prefix", c.Tag())
		}
		if !bytes.Equal(out[len(prefix):], in) {
			t.Errorf("%q round trip with non-empty dst mismatch", c.Tag())
		}
	}
}

func TestCodecTags(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range allCodecs() {
		tag := c.Tag()
		if len(tag) != 4 {
			t.Errorf("tag %q is %d bytes, want 4", tag, len(tag))
		}
		if seen[tag] {
			t.Errorf("tag %q registered twice", tag)
		}
		seen[tag] = true
	}
}
