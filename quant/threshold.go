package quant

// Cutoff selects how aggressively small detail coefficients are zeroed before
// byte-level compression.
type Cutoff uint8

const (
	CutoffNone Cutoff = iota
	CutoffLow
	CutoffMedium
	CutoffHigh
)

// Valid reports whether c is a known policy tag.
func (c Cutoff) Valid() bool { return c <= CutoffHigh }

func (c Cutoff) String() string {
	switch c {
	case CutoffNone:
		return "none"
	case CutoffLow:
		return "low"
	case CutoffMedium:
		return "medium"
	case CutoffHigh:
		return "high"
	}
	return "invalid"
}

// Threshold zeroes detail coefficients whose magnitude falls below the policy
// floor. The approximation band carries the signal's coarse shape and is never
// touched. Encode-only and lossy: the decoder just sees zeros, so the policy
// never needs inverting. It is still versioned with the container format, since
// changing the table changes the bytes an encoder emits.
//
// Policy v1: base floor keyed by scale (≤7:1, 8-9:2, 10-11:3, ≥12:4), times a
// cutoff multiplier (low ×1, medium ×3, high ×7). CutoffNone disables the
// stage entirely.
func Threshold(q *Pyramid, cutoff Cutoff) {
	if cutoff == CutoffNone {
		return
	}
	floor := baseFloor(q.Scale) * cutoffMultiplier(cutoff)
	for _, band := range q.Details {
		for i, v := range band {
			m := int(v)
			if m < 0 {
				m = -m
			}
			if m < floor {
				band[i] = 0
			}
		}
	}
}

func baseFloor(scale int) int {
	switch {
	case scale <= 7:
		return 1
	case scale <= 9:
		return 2
	case scale <= 11:
		return 3
	default:
		return 4
	}
}

func cutoffMultiplier(c Cutoff) int {
	switch c {
	case CutoffMedium:
		return 3
	case CutoffHigh:
		return 7
	default:
		return 1
	}
}
