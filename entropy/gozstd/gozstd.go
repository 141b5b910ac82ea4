// Package gozstd wraps the cgo libzstd bindings from github.com/valyala/gozstd.
// Faster than the pure-Go backend on large payloads, at the cost of cgo.
package gozstd

import (
	"github.com/valyala/gozstd"
)

type Codec struct{}

func (Codec) Tag() string { return "zstc" }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	return gozstd.Compress(dst, src), nil
}

func (Codec) Decompress(dst, src []byte) ([]byte, error) {
	return gozstd.Decompress(dst, src)
}
