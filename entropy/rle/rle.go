// Package rle implements byte-level run-length coding as (value, count) pairs.
// Thresholding leaves long zero runs in the payload, which is the case this
// backend targets; anything else it handles losslessly but without gain.
package rle

import (
	"fmt"
)

type Codec struct{}

func (Codec) Tag() string { return "rle " }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	for i := 0; i < len(src); {
		v := src[i]
		n := 1
		for i+n < len(src) && src[i+n] == v && n < 255 {
			n++
		}
		dst = append(dst, v, byte(n))
		i += n
	}
	return dst, nil
}

func (Codec) Decompress(dst, src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return dst, fmt.Errorf("rle: odd stream length %d", len(src))
	}
	for i := 0; i < len(src); i += 2 {
		v, n := src[i], int(src[i+1])
		if n == 0 {
			return dst, fmt.Errorf("rle: zero run length at offset %d", i)
		}
		for j := 0; j < n; j++ {
			dst = append(dst, v)
		}
	}
	return dst, nil
}
