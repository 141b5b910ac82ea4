package biowave

import "math"

// normParams records how a signal was rescaled so decompression can invert it.
type normParams struct {
	mean    float64
	divisor float64
}

// Signals whose centered amplitude falls below this are treated as constant.
const constantSignalEps = 1e-12

// normalize substitutes non-finite samples, removes the mean and rescales into
// [-1, 1]. NaN and -Inf collapse to 0, +Inf to 1, sample by sample before any
// statistics run, so a stray non-finite value never skews the mean of the
// rest. The substitution is lossy: which samples were non-finite
// is not recoverable.
func normalize(signal []float64) ([]float64, normParams) {
	out := make([]float64, len(signal))
	sum := 0.0
	for i, v := range signal {
		switch {
		case math.IsNaN(v):
			v = 0
		case math.IsInf(v, 1):
			v = 1
		case math.IsInf(v, -1):
			v = 0
		}
		out[i] = v
		sum += v
	}
	mean := sum / float64(len(out))

	maxAbs := 0.0
	for i := range out {
		out[i] -= mean
		if a := math.Abs(out[i]); a > maxAbs {
			maxAbs = a
		}
	}
	divisor := maxAbs
	if divisor < constantSignalEps {
		divisor = 1
	}
	for i := range out {
		out[i] /= divisor
	}
	return out, normParams{mean: mean, divisor: divisor}
}

// denormalize inverts normalize for finite inputs up to float rounding.
func denormalize(signal []float64, p normParams) []float64 {
	out := make([]float64, len(signal))
	for i, v := range signal {
		out[i] = v*p.divisor + p.mean
	}
	return out
}
