// Package flate wraps the DEFLATE implementation from
// github.com/klauspost/compress.
package flate

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

type Codec struct{}

func (Codec) Tag() string { return "defl" }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return dst, err
	}
	if _, err := zw.Write(src); err != nil {
		zw.Close()
		return dst, err
	}
	if err := zw.Close(); err != nil {
		return dst, err
	}
	return append(dst, buf.Bytes()...), nil
}

func (Codec) Decompress(dst, src []byte) ([]byte, error) {
	zr := flate.NewReader(bytes.NewReader(src))
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return dst, err
	}
	return append(dst, raw...), nil
}
