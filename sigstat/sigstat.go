// Package sigstat provides the quality and size metrics used to judge a lossy
// round-trip: PRD and SNR against the original signal, plain error measures,
// and compression ratio.
package sigstat

import "math"

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range signal {
		sum += v
	}
	return sum / float64(len(signal))
}

// StdDev returns the population standard deviation.
func StdDev(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	mean := Mean(signal)
	sum := 0.0
	for _, v := range signal {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(signal)))
}

// PRD returns the percentage root-mean-square difference between a signal and
// its reconstruction, the standard distortion measure for compressed
// biosignals. The denominator is the original's energy around its mean.
// Returns NaN when lengths differ or the inputs are empty.
func PRD(original, reconstructed []float64) float64 {
	if len(original) == 0 || len(original) != len(reconstructed) {
		return math.NaN()
	}
	mean := Mean(original)
	num, den := 0.0, 0.0
	for i, v := range original {
		d := v - reconstructed[i]
		num += d * d
		c := v - mean
		den += c * c
	}
	if den == 0 {
		return 0
	}
	return math.Sqrt(num/den) * 100
}

// SNR returns the signal-to-noise ratio of the reconstruction in decibels.
// Returns NaN when lengths differ or the inputs are empty, +Inf for an exact
// reconstruction.
func SNR(original, reconstructed []float64) float64 {
	if len(original) == 0 || len(original) != len(reconstructed) {
		return math.NaN()
	}
	mean := Mean(original)
	num, den := 0.0, 0.0
	for i, v := range original {
		c := v - mean
		num += c * c
		d := v - reconstructed[i]
		den += d * d
	}
	if den == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(num/den)
}

// MSE returns the mean squared error between two equal-length signals, NaN
// otherwise.
func MSE(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return math.NaN()
	}
	sum := 0.0
	for i, v := range a {
		d := v - b[i]
		sum += d * d
	}
	return sum / float64(len(a))
}

// MaxAbsError returns the largest per-sample absolute difference, NaN on
// length mismatch.
func MaxAbsError(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.NaN()
	}
	maxErr := 0.0
	for i, v := range a {
		if d := math.Abs(v - b[i]); d > maxErr {
			maxErr = d
		}
	}
	return maxErr
}

// CompressionRatio returns the ratio of the raw float64 signal size to the
// compressed size, 0 when compressedBytes is 0.
func CompressionRatio(samples, compressedBytes int) float64 {
	if compressedBytes == 0 {
		return 0
	}
	return float64(samples*8) / float64(compressedBytes)
}
