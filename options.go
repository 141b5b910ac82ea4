package biowave

import (
	"fmt"

	"biowave/quant"
	"biowave/wavelet"
)

// Options selects the transform kernel, quantization scale, detail cutoff and
// entropy backend for one compression call. Options are plain values; invalid
// combinations are rejected when Compress first uses them.
type Options struct {
	// Kernel is the lifting kernel, wavelet.CDF53 or wavelet.CDF97.
	Kernel wavelet.Kernel
	// Scale is the quantization exponent: coefficients are multiplied by
	// 1<<Scale before the int16 conversion. Valid range 1..15.
	Scale int
	// Cutoff controls how aggressively small detail coefficients are zeroed.
	Cutoff quant.Cutoff
	// Backend is the entropy backend tag, one of Backends().
	Backend string
}

// DefaultOptions returns the CDF 9/7 kernel at scale 11 with the low cutoff
// and the zstd backend.
func DefaultOptions() Options {
	return Options{
		Kernel:  wavelet.CDF97,
		Scale:   quant.DefaultScale,
		Cutoff:  quant.CutoffLow,
		Backend: "zstd",
	}
}

// OptionsForKernel returns DefaultOptions with the kernel replaced.
func OptionsForKernel(k wavelet.Kernel) Options {
	o := DefaultOptions()
	o.Kernel = k
	return o
}

func (o Options) validate() error {
	if _, err := wavelet.KernelFromTag(o.Kernel.Tag()); err != nil {
		return err
	}
	if o.Scale < quant.MinScale || o.Scale > quant.MaxScale {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidScale, o.Scale, quant.MinScale, quant.MaxScale)
	}
	if !o.Cutoff.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCutoff, o.Cutoff)
	}
	if _, ok := resolveBackend(o.Backend); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, o.Backend)
	}
	return nil
}
