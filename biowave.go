// Package biowave compresses one-dimensional physiological time series (ECG,
// PPG, accelerometry) with a lossy wavelet pipeline: non-finite substitution
// and range normalization, a multi-level lifting DWT (CDF 5/3 or CDF 9/7),
// int16 quantization, detail thresholding, and a self-describing binary
// container whose coefficient payload runs through a pluggable lossless byte
// compressor.
//
// Compress and Decompress are pure functions over their inputs: no shared
// state, no I/O, safe to call concurrently from independent goroutines.
package biowave

import (
	"encoding/binary"
	"fmt"
	"math"

	"biowave/container"
	"biowave/quant"
	"biowave/wavelet"
)

const maxSignalLen = math.MaxInt32

// Compress encodes signal into a self-contained byte container. The signal is
// left untouched. Quantization saturation and cutoff thresholding lose
// information without producing errors.
func Compress(signal []float64, opts Options) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(signal) > maxSignalLen {
		return nil, fmt.Errorf("%w: %d samples, limit %d", ErrSignalTooLong, len(signal), maxSignalLen)
	}

	normalized, params := normalize(signal)
	pyr, err := wavelet.Forward(normalized, opts.Kernel, wavelet.LevelsFor(len(signal)))
	if err != nil {
		return nil, err
	}
	qp := quant.Quantize(pyr, opts.Scale)
	quant.Threshold(qp, opts.Cutoff)

	counts, payload := packBands(qp)
	h := &container.Header{
		KernelTag:  opts.Kernel.Tag(),
		BackendTag: opts.Backend,
		Levels:     pyr.Levels(),
		Scale:      opts.Scale,
		Cutoff:     uint8(opts.Cutoff),
		SignalLen:  len(signal),
		PaddedLen:  len(payload) / 2,
		Mean:       params.mean,
		Divisor:    params.divisor,
		Counts:     counts,
	}
	codec, _ := resolveBackend(opts.Backend)
	return container.Encode(h, payload, codec)
}

// Decompress decodes a container produced by Compress back into samples. It is
// safe on arbitrary byte input: malformed data yields a typed error, never a
// panic. The reconstruction is lossy; see Compress.
func Decompress(data []byte) ([]float64, error) {
	h, payload, err := container.Decode(data, resolveBackend)
	if err != nil {
		return nil, err
	}
	kernel, err := wavelet.KernelFromTag(h.KernelTag)
	if err != nil {
		return nil, err
	}
	if err := checkBandLayout(h); err != nil {
		return nil, err
	}

	pyr := quant.Dequantize(unpackBands(h, payload))
	out, err := wavelet.Inverse(pyr, kernel)
	if err != nil {
		return nil, err
	}
	return denormalize(out, normParams{mean: h.Mean, divisor: h.Divisor}), nil
}

// packBands serializes the quantized bands little-endian: approximation first,
// then detail bands from coarsest to finest. Count order matches byte order.
func packBands(q *quant.Pyramid) ([]int, []byte) {
	levels := len(q.Details)
	counts := make([]int, 0, levels+1)
	counts = append(counts, len(q.Approx))
	total := len(q.Approx)
	for i := levels - 1; i >= 0; i-- {
		counts = append(counts, len(q.Details[i]))
		total += len(q.Details[i])
	}

	payload := make([]byte, 0, 2*total)
	payload = appendBand(payload, q.Approx)
	for i := levels - 1; i >= 0; i-- {
		payload = appendBand(payload, q.Details[i])
	}
	return counts, payload
}

func appendBand(dst []byte, band []int16) []byte {
	for _, v := range band {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
	}
	return dst
}

// unpackBands rebuilds the quantized pyramid from a validated header and its
// decompressed payload.
func unpackBands(h *container.Header, payload []byte) *quant.Pyramid {
	q := &quant.Pyramid{
		N:       h.SignalLen,
		Scale:   h.Scale,
		Details: make([][]int16, h.Levels),
	}
	off := 0
	read := func(n int) []int16 {
		band := make([]int16, n)
		for i := range band {
			band[i] = int16(binary.LittleEndian.Uint16(payload[off:]))
			off += 2
		}
		return band
	}
	q.Approx = read(h.Counts[0])
	// counts after the approximation run coarsest to finest; Details is
	// finest-first
	for i := h.Levels - 1; i >= 0; i-- {
		q.Details[i] = read(h.Counts[1+(h.Levels-1-i)])
	}
	return q
}

// checkBandLayout cross-checks the declared band counts against what the
// transform actually produces for the declared length and depth, so a crafted
// header cannot smuggle an inconsistent layout past the inverse transform.
func checkBandLayout(h *container.Header) error {
	approx, details := wavelet.BandCounts(h.SignalLen, h.Levels)
	if h.Counts[0] != approx {
		return fmt.Errorf("%w: approximation band declares %d coefficients, transform expects %d",
			container.ErrCorrupt, h.Counts[0], approx)
	}
	for i, want := range details {
		got := h.Counts[len(h.Counts)-1-i]
		if got != want {
			return fmt.Errorf("%w: level %d detail band declares %d coefficients, transform expects %d",
				container.ErrCorrupt, i+1, got, want)
		}
	}
	return nil
}
