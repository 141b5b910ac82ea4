// Package lz4 wraps github.com/bkaradzic/go-lz4. The library frames its output
// with the uncompressed length, so no extra bookkeeping is needed here.
package lz4

import (
	lz4 "github.com/bkaradzic/go-lz4"
)

type Codec struct{}

func (Codec) Tag() string { return "lz4 " }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	out, err := lz4.Encode(nil, src)
	if err != nil {
		return dst, err
	}
	return append(dst, out...), nil
}

func (Codec) Decompress(dst, src []byte) ([]byte, error) {
	out, err := lz4.Decode(nil, src)
	if err != nil {
		return dst, err
	}
	return append(dst, out...), nil
}
