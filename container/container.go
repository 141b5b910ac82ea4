// Package container implements the versioned binary envelope around the
// quantized coefficient payload. The header is self-describing: band layout,
// normalization and quantization parameters are all declared up front, so
// arbitrary byte input is rejected before the payload is ever touched, and
// nothing needed for inversion is implicit in the payload size.
//
// Layout (all integers little-endian):
//
//	0   4  magic "BWAV"
//	4   2  format version
//	6   2  reserved
//	8   4  lifting kernel tag ("cf53" | "cf97")
//	12  4  entropy backend tag ("zstd", "lz4 ", ...)
//	16  1  achieved decomposition levels
//	17  1  quantization scale
//	18  1  cutoff policy tag
//	19  1  reserved
//	20  4  original signal length N
//	24  4  padded working length (total coefficient count)
//	28  8  normalization mean (float64 bits)
//	36  8  normalization divisor (float64 bits)
//	44  4  compressed payload size
//	48  4*(levels+1) band counts: approximation first, then details
//	       coarsest to finest
//	...    entropy-compressed payload: little-endian int16 coefficients in
//	       the same band order as the counts
package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"biowave/entropy"
)

var magic = [4]byte{'B', 'W', 'A', 'V'}

// Version is the current container format version. Decoders reject anything
// else so the header can evolve.
const Version uint16 = 1

const (
	baseHeaderSize = 48
	maxLevels      = 10
	minScale       = 1
	maxScale       = 15
	maxCutoff      = 3
)

var (
	ErrCorrupt              = errors.New("container: corrupt container")
	ErrUnsupportedVersion   = errors.New("container: unsupported version")
	ErrPayloadDecompression = errors.New("container: payload decompression failed")
	ErrLengthMismatch       = errors.New("container: payload length mismatch")
)

// Header carries every parameter needed to invert the pipeline.
type Header struct {
	KernelTag  string  // four-byte lifting kernel tag
	BackendTag string  // four-byte entropy backend tag
	Levels     int     // achieved decomposition depth
	Scale      int     // quantization scale exponent
	Cutoff     uint8   // thresholding policy tag
	SignalLen  int     // original sample count
	PaddedLen  int     // total coefficient count across all bands
	Mean       float64 // normalization mean
	Divisor    float64 // normalization divisor
	Counts     []int   // per-band counts: approximation, then details coarsest to finest
}

// Resolver maps a backend tag from the header to its codec. Decode depends
// only on this and on entropy.Codec, keeping backends swappable.
type Resolver func(tag string) (entropy.Codec, bool)

// Encode serializes the header, runs the raw coefficient payload through the
// entropy codec and appends the result.
func Encode(h *Header, payload []byte, codec entropy.Codec) ([]byte, error) {
	if len(h.KernelTag) != 4 || len(h.BackendTag) != 4 {
		return nil, fmt.Errorf("container: tags must be four bytes, got %q and %q", h.KernelTag, h.BackendTag)
	}
	if h.Levels < 0 || h.Levels > maxLevels {
		return nil, fmt.Errorf("container: %d levels outside [0, %d]", h.Levels, maxLevels)
	}
	if len(h.Counts) != h.Levels+1 {
		return nil, fmt.Errorf("container: %d levels need %d band counts, got %d", h.Levels, h.Levels+1, len(h.Counts))
	}
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != h.PaddedLen || 2*total != len(payload) {
		return nil, fmt.Errorf("container: band counts sum %d does not match payload of %d bytes", total, len(payload))
	}

	compressed, err := codec.Compress(nil, payload)
	if err != nil {
		return nil, fmt.Errorf("container: payload compression: %w", err)
	}

	headerSize := baseHeaderSize + 4*len(h.Counts)
	buf := make([]byte, headerSize, headerSize+len(compressed))
	copy(buf[0:4], magic[:])
	binary.LittleEndian.PutUint16(buf[4:6], Version)
	copy(buf[8:12], h.KernelTag)
	copy(buf[12:16], h.BackendTag)
	buf[16] = uint8(h.Levels)
	buf[17] = uint8(h.Scale)
	buf[18] = h.Cutoff
	binary.LittleEndian.PutUint32(buf[20:24], uint32(h.SignalLen))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(h.PaddedLen))
	binary.LittleEndian.PutUint64(buf[28:36], math.Float64bits(h.Mean))
	binary.LittleEndian.PutUint64(buf[36:44], math.Float64bits(h.Divisor))
	binary.LittleEndian.PutUint32(buf[44:48], uint32(len(compressed)))
	for i, c := range h.Counts {
		binary.LittleEndian.PutUint32(buf[baseHeaderSize+4*i:], uint32(c))
	}
	return append(buf, compressed...), nil
}

// Decode validates the header, entropy-decodes the payload and checks it
// against the declared band counts. Safe on arbitrary input: malformed data
// yields a typed error, never a panic.
func Decode(data []byte, resolve Resolver) (*Header, []byte, error) {
	h, compressed, err := DecodeHeader(data)
	if err != nil {
		return nil, nil, err
	}
	codec, ok := resolve(h.BackendTag)
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown entropy backend %q", ErrCorrupt, h.BackendTag)
	}
	payload, err := codec.Decompress(nil, compressed)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPayloadDecompression, err)
	}
	if len(payload) != 2*h.PaddedLen {
		return nil, nil, fmt.Errorf("%w: header declares %d coefficients, payload decompressed to %d bytes",
			ErrLengthMismatch, h.PaddedLen, len(payload))
	}
	return h, payload, nil
}

// DecodeHeader parses and validates the header only, returning the still
// compressed payload bytes. Magic and version are checked before anything
// else is interpreted.
func DecodeHeader(data []byte) (*Header, []byte, error) {
	if len(data) < baseHeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", ErrCorrupt, len(data), baseHeaderSize)
	}
	if !bytes.Equal(data[0:4], magic[:]) {
		return nil, nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, data[0:4])
	}
	if v := binary.LittleEndian.Uint16(data[4:6]); v != Version {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	h := &Header{
		KernelTag:  string(data[8:12]),
		BackendTag: string(data[12:16]),
		Levels:     int(data[16]),
		Scale:      int(data[17]),
		Cutoff:     data[18],
		SignalLen:  int(binary.LittleEndian.Uint32(data[20:24])),
		PaddedLen:  int(binary.LittleEndian.Uint32(data[24:28])),
		Mean:       math.Float64frombits(binary.LittleEndian.Uint64(data[28:36])),
		Divisor:    math.Float64frombits(binary.LittleEndian.Uint64(data[36:44])),
	}
	if h.Levels > maxLevels {
		return nil, nil, fmt.Errorf("%w: %d levels exceeds the maximum of %d", ErrCorrupt, h.Levels, maxLevels)
	}
	if h.Scale < minScale || h.Scale > maxScale {
		return nil, nil, fmt.Errorf("%w: quantization scale %d outside [%d, %d]", ErrCorrupt, h.Scale, minScale, maxScale)
	}
	if h.Cutoff > maxCutoff {
		return nil, nil, fmt.Errorf("%w: unknown cutoff tag %d", ErrCorrupt, h.Cutoff)
	}
	if !isFinite(h.Mean) || !isFinite(h.Divisor) {
		return nil, nil, fmt.Errorf("%w: non-finite normalization parameters", ErrCorrupt)
	}
	if h.Divisor == 0 {
		return nil, nil, fmt.Errorf("%w: zero normalization divisor", ErrCorrupt)
	}

	countsEnd := baseHeaderSize + 4*(h.Levels+1)
	if len(data) < countsEnd {
		return nil, nil, fmt.Errorf("%w: truncated band counts", ErrCorrupt)
	}
	total := 0
	h.Counts = make([]int, h.Levels+1)
	for i := range h.Counts {
		c := int(binary.LittleEndian.Uint32(data[baseHeaderSize+4*i:]))
		if c <= 0 || c > h.PaddedLen {
			return nil, nil, fmt.Errorf("%w: band %d declares %d coefficients", ErrCorrupt, i, c)
		}
		h.Counts[i] = c
		total += c
	}
	if total != h.PaddedLen {
		return nil, nil, fmt.Errorf("%w: band counts sum to %d, padded length is %d", ErrCorrupt, total, h.PaddedLen)
	}

	size := int(binary.LittleEndian.Uint32(data[44:48]))
	if len(data)-countsEnd < size {
		return nil, nil, fmt.Errorf("%w: %d payload bytes declared, %d available", ErrCorrupt, size, len(data)-countsEnd)
	}
	return h, data[countsEnd : countsEnd+size], nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
