// Package snappy wraps the snappy block format from
// github.com/klauspost/compress.
package snappy

import (
	"github.com/klauspost/compress/snappy"
)

type Codec struct{}

func (Codec) Tag() string { return "snpy" }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	return append(dst, snappy.Encode(nil, src)...), nil
}

func (Codec) Decompress(dst, src []byte) ([]byte, error) {
	raw, err := snappy.Decode(nil, src)
	if err != nil {
		return dst, err
	}
	return append(dst, raw...), nil
}
