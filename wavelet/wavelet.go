// Package wavelet implements the multi-level lifting-scheme discrete wavelet
// transforms behind the codec: the integer-friendly CDF 5/3 kernel and the
// smoother CDF 9/7 kernel known from image-coding standards. Bands of odd
// length are extended by symmetric reflection before each split; the padding
// is rederived from the original length during inversion, never stored.
package wavelet

import (
	"errors"
	"fmt"
)

// Kernel selects the biorthogonal lifting kernel. The set is closed: lifting
// constants stay inlinable behind a switch instead of an interface.
type Kernel int

const (
	CDF53 Kernel = iota
	CDF97
)

// ErrUnsupportedKernel is returned for any kernel value outside the closed set.
var ErrUnsupportedKernel = errors.New("wavelet: unsupported kernel")

// Tag returns the four-byte identifier stored in the container header.
func (k Kernel) Tag() string {
	switch k {
	case CDF53:
		return "cf53"
	case CDF97:
		return "cf97"
	}
	return "????"
}

func (k Kernel) String() string {
	switch k {
	case CDF53:
		return "CDF 5/3"
	case CDF97:
		return "CDF 9/7"
	}
	return fmt.Sprintf("Kernel(%d)", int(k))
}

func (k Kernel) valid() bool { return k == CDF53 || k == CDF97 }

// KernelFromTag maps a header tag back to its kernel.
func KernelFromTag(tag string) (Kernel, error) {
	switch tag {
	case "cf53":
		return CDF53, nil
	case "cf97":
		return CDF97, nil
	}
	return 0, fmt.Errorf("%w: tag %q", ErrUnsupportedKernel, tag)
}

// Pyramid holds one multi-level decomposition. Approx is the final low-pass
// band. Details[0] is the finest detail band (level 1), Details[len-1] the
// coarsest, matching the order the forward transform produces them. N is the
// signal length before any padding.
type Pyramid struct {
	N       int
	Approx  []float64
	Details [][]float64
}

// Levels returns the achieved decomposition depth.
func (p *Pyramid) Levels() int { return len(p.Details) }

// LevelsFor returns the decomposition depth requested for a signal of length
// n. Short signals get shallower pyramids so every level keeps at least a few
// coefficients.
func LevelsFor(n int) int {
	switch {
	case n < 20:
		return 1
	case n < 40:
		return 2
	case n < 60:
		return 3
	case n < 80:
		return 4
	default:
		return 5
	}
}

// Forward computes up to maxLevels of decomposition. Decomposition stops early
// once a band is shorter than two samples; the achieved depth is recorded in
// the pyramid and must be consumed by the caller, not assumed.
func Forward(signal []float64, k Kernel, maxLevels int) (*Pyramid, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedKernel, int(k))
	}
	p := &Pyramid{N: len(signal)}
	cur := append([]float64(nil), signal...)
	for level := 0; level < maxLevels && len(cur) >= 2; level++ {
		cur = padEven(cur)
		low, high := split(cur)
		switch k {
		case CDF53:
			forward53(low, high)
		case CDF97:
			forward97(low, high)
		}
		p.Details = append(p.Details, high)
		cur = low
	}
	p.Approx = cur
	return p, nil
}

// Inverse reconstructs the signal from a pyramid. Band lengths at every level
// are rederived from p.N, so the padding applied during Forward is cropped
// without ever having been stored.
func Inverse(p *Pyramid, k Kernel) ([]float64, error) {
	if !k.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedKernel, int(k))
	}
	levels := p.Levels()
	cur := append([]float64(nil), p.Approx...)
	if levels == 0 {
		if len(cur) > p.N {
			cur = cur[:p.N]
		}
		return cur, nil
	}
	lens := bandInputLengths(p.N, levels)
	for level := levels - 1; level >= 0; level-- {
		high := append([]float64(nil), p.Details[level]...)
		if len(cur) != len(high) {
			return nil, fmt.Errorf("wavelet: level %d band mismatch: %d approximation vs %d detail coefficients",
				level+1, len(cur), len(high))
		}
		switch k {
		case CDF53:
			inverse53(cur, high)
		case CDF97:
			inverse97(cur, high)
		}
		merged := merge(cur, high)
		// drop the reflection pad introduced at this level
		cur = merged[:lens[level]]
	}
	return cur, nil
}

// BandCounts returns the coefficient count of the final approximation band and
// of each detail band (index 0 = finest) for a signal of length n decomposed
// levels deep. It mirrors Forward exactly and lets a decoder cross-check the
// counts a container header declares.
func BandCounts(n, levels int) (approx int, details []int) {
	details = make([]int, levels)
	cur := n
	for i := 0; i < levels; i++ {
		cur = (cur + cur&1) / 2
		details[i] = cur
	}
	return cur, details
}

// bandInputLengths returns the pre-padding band length entering each level:
// index 0 is the original signal, index i the approximation entering level i+1.
func bandInputLengths(n, levels int) []int {
	lens := make([]int, levels)
	lens[0] = n
	for i := 1; i < levels; i++ {
		lens[i] = (lens[i-1] + lens[i-1]&1) / 2
	}
	return lens
}

// padEven extends an odd-length band by one sample of whole-sample symmetric
// reflection so the even/odd split pairs up.
func padEven(band []float64) []float64 {
	if len(band)%2 == 0 {
		return band
	}
	return append(band, band[len(band)-2])
}

func split(band []float64) (low, high []float64) {
	n := len(band) / 2
	low = make([]float64, n)
	high = make([]float64, n)
	for i := 0; i < n; i++ {
		low[i] = band[2*i]
		high[i] = band[2*i+1]
	}
	return low, high
}

func merge(low, high []float64) []float64 {
	out := make([]float64, len(low)*2)
	for i := range low {
		out[2*i] = low[i]
		out[2*i+1] = high[i]
	}
	return out
}
