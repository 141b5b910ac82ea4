// Package simple8b packs bytes as uint64 values with the simple8b integer
// packer from github.com/jwilder/encoding. It shines on thresholded payloads
// that are mostly small values and long zero runs. A four-byte length prefix
// records the original size, since simple8b words do not.
package simple8b

import (
	"encoding/binary"
	"fmt"

	"github.com/jwilder/encoding/simple8b"
)

type Codec struct{}

func (Codec) Tag() string { return "s8b " }

func (Codec) Compress(dst, src []byte) ([]byte, error) {
	enc := simple8b.NewEncoder()
	for _, b := range src {
		if err := enc.Write(uint64(b)); err != nil {
			return dst, err
		}
	}
	words, err := enc.Bytes()
	if err != nil {
		return dst, err
	}
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(src)))
	dst = append(dst, n[:]...)
	return append(dst, words...), nil
}

func (Codec) Decompress(dst, src []byte) ([]byte, error) {
	if len(src) < 4 {
		return dst, fmt.Errorf("simple8b: truncated stream (%d bytes)", len(src))
	}
	want := binary.LittleEndian.Uint32(src[:4])
	dec := simple8b.NewDecoder(src[4:])
	got := uint32(0)
	for got < want && dec.Next() {
		v := dec.Read()
		if v > 0xff {
			return dst, fmt.Errorf("simple8b: value %d exceeds byte range", v)
		}
		dst = append(dst, byte(v))
		got++
	}
	if got != want {
		return dst, fmt.Errorf("simple8b: expected %d bytes, decoded %d", want, got)
	}
	return dst, nil
}
