package wavelet

// CDF 9/7 lifting constants (Cohen-Daubechies-Feauveau), fixed at full float64
// precision so independent encoders and decoders agree bit for bit.
const (
	alpha97 = -1.586134342059924 // predict 1
	beta97  = -0.052980118572961 // update 1
	gamma97 = 0.882911075530934  // predict 2
	delta97 = 0.443506852043971  // update 2

	scaleLow97  = 1.230174104914001 // low-pass gain
	scaleHigh97 = 1.0 / scaleLow97  // high-pass gain
)

// predict applies high[i] += w * (low[i] + low[i+1]), mirroring the right
// neighbor at the band edge. With w negative this is the classic prediction
// from the even-neighbor average; the same pass with -w undoes it.
func predict(low, high []float64, w float64) {
	n := len(high)
	for i := 0; i < n-1; i++ {
		high[i] += w * (low[i] + low[i+1])
	}
	high[n-1] += w * 2 * low[n-1]
}

// update applies low[i] += w * (high[i-1] + high[i]), mirroring the left
// neighbor at the band edge.
func update(low, high []float64, w float64) {
	low[0] += w * 2 * high[0]
	for i := 1; i < len(low); i++ {
		low[i] += w * (high[i-1] + high[i])
	}
}

// CDF 5/3: one predict pass from the even-neighbor average, one quarter-weight
// update pass. Each step is undone by the same pass with the sign flipped, so
// the float path reconstructs to rounding error.
func forward53(low, high []float64) {
	predict(low, high, -0.5)
	update(low, high, 0.25)
}

func inverse53(low, high []float64) {
	update(low, high, -0.25)
	predict(low, high, 0.5)
}

// CDF 9/7: four alternating predict/update passes, then the fixed even/odd
// rescale.
func forward97(low, high []float64) {
	predict(low, high, alpha97)
	update(low, high, beta97)
	predict(low, high, gamma97)
	update(low, high, delta97)
	for i := range low {
		low[i] *= scaleLow97
	}
	for i := range high {
		high[i] *= scaleHigh97
	}
}

func inverse97(low, high []float64) {
	for i := range low {
		low[i] /= scaleLow97
	}
	for i := range high {
		high[i] /= scaleHigh97
	}
	update(low, high, -delta97)
	predict(low, high, -gamma97)
	update(low, high, -beta97)
	predict(low, high, -alpha97)
}
