// Package zstd wraps the pure-Go Zstandard implementation from
// github.com/klauspost/compress. It is the default payload backend.
package zstd

import (
	"github.com/klauspost/compress/zstd"
)

type Codec struct{}

func (Codec) Tag() string { return "zstd" }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return dst, err
	}
	defer enc.Close()
	return enc.EncodeAll(src, dst), nil
}

func (Codec) Decompress(dst, src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return dst, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, dst)
}
