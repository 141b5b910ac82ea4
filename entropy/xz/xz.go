// Package xz wraps github.com/ulikunitz/xz. Slowest backend, best ratio on
// highly regular payloads.
package xz

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

type Codec struct{}

func (Codec) Tag() string { return "xz  " }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := xz.NewWriter(&buf)
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
	zr, err := xz.NewReader(bytes.NewReader(src))
	if err != nil {
		return dst, err
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return dst, err
	}
	return append(dst, raw...), nil
}
