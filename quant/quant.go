// Package quant converts wavelet coefficients between float64 and fixed-point
// int16, and applies the detail-thresholding policy that trades fidelity for
// payload entropy.
package quant

import (
	"math"

	"biowave/wavelet"
)

// Scale bounds for the quantization exponent: coefficients are multiplied by
// 1<<scale before the int16 conversion.
const (
	MinScale     = 1
	MaxScale     = 15
	DefaultScale = 11
)

// Pyramid mirrors wavelet.Pyramid with int16 coefficients at a fixed scale.
type Pyramid struct {
	N       int
	Scale   int
	Approx  []int16
	Details [][]int16
}

// Quantize maps every coefficient to round(c * 2^scale) clamped to the int16
// range. Rounding is half away from zero (math.Round). Overflow saturates
// rather than erroring: outliers lose amplitude instead of failing the call.
func Quantize(p *wavelet.Pyramid, scale int) *Pyramid {
	mult := float64(int64(1) << uint(scale))
	q := &Pyramid{
		N:       p.N,
		Scale:   scale,
		Approx:  quantizeBand(p.Approx, mult),
		Details: make([][]int16, len(p.Details)),
	}
	for i, band := range p.Details {
		q.Details[i] = quantizeBand(band, mult)
	}
	return q
}

func quantizeBand(band []float64, mult float64) []int16 {
	out := make([]int16, len(band))
	for i, c := range band {
		v := math.Round(c * mult)
		switch {
		case v > math.MaxInt16:
			out[i] = math.MaxInt16
		case v < math.MinInt16:
			out[i] = math.MinInt16
		default:
			out[i] = int16(v)
		}
	}
	return out
}

// Dequantize maps int16 coefficients back to float64 via q / 2^scale.
func Dequantize(q *Pyramid) *wavelet.Pyramid {
	rcp := 1.0 / float64(int64(1)<<uint(q.Scale))
	p := &wavelet.Pyramid{
		N:       q.N,
		Approx:  dequantizeBand(q.Approx, rcp),
		Details: make([][]float64, len(q.Details)),
	}
	for i, band := range q.Details {
		p.Details[i] = dequantizeBand(band, rcp)
	}
	return p
}

func dequantizeBand(band []int16, rcp float64) []float64 {
	out := make([]float64, len(band))
	for i, v := range band {
		out[i] = float64(v) * rcp
	}
	return out
}
