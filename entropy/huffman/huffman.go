// Package huffman wraps the adaptive Huffman coder from
// github.com/icza/huffman. Blocks that do not shrink are stored raw behind a
// one-byte marker so the codec stays lossless on incompressible input.
package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/huffman/hufio"
)

type Codec struct{}

const (
	markerRaw     = 0
	markerEncoded = 1
)

func (Codec) Tag() string { return "huff" }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := hufio.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return dst, err
	}
	if err := w.Close(); err != nil {
		return dst, err
	}
	if buf.Len() >= len(src) {
		dst = append(dst, markerRaw)
		return append(dst, src...), nil
	}
	dst = append(dst, markerEncoded)
	return append(dst, buf.Bytes()...), nil
}

func (Codec) Decompress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, fmt.Errorf("huffman: missing block marker")
	}
	switch src[0] {
	case markerRaw:
		return append(dst, src[1:]...), nil
	case markerEncoded:
		r := hufio.NewReader(bytes.NewReader(src[1:]))
		raw, err := io.ReadAll(r)
		if err != nil {
			return dst, err
		}
		return append(dst, raw...), nil
	default:
		return dst, fmt.Errorf("huffman: unknown block marker %d", src[0])
	}
}
