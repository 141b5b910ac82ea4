// Package brotli wraps github.com/andybalholm/brotli.
package brotli

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

type Codec struct{}

func (Codec) Tag() string { return "brot" }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		w.Close()
		return dst, err
	}
	if err := w.Close(); err != nil {
		return dst, err
	}
	return append(dst, buf.Bytes()...), nil
}

func (Codec) Decompress(dst, src []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(src))
	raw, err := io.ReadAll(r)
	if err != nil {
		return dst, err
	}
	return append(dst, raw...), nil
}
