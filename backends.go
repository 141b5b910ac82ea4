package biowave

import (
	"sort"

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

// backends maps container tags to entropy codecs. Read-only after init.
var backends = map[string]entropy.Codec{}

func init() {
	for _, c := range []entropy.Codec{
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
	} {
		backends[c.Tag()] = c
	}
}

func resolveBackend(tag string) (entropy.Codec, bool) {
	c, ok := backends[tag]
	return c, ok
}

// Backends returns the registered entropy backend tags, sorted.
func Backends() []string {
	tags := make([]string, 0, len(backends))
	for tag := range backends {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
