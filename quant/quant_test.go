package quant

import (
	"math"
	"testing"

	"biowave/wavelet"
)

func TestQuantizeRoundTrip(t *testing.T) {
	p := &wavelet.Pyramid{
		N:      8,
		Approx: []float64{0.5, -0.25, 0.123456, -0.987},
		Details: [][]float64{
			{0.001, -0.002, 0.5, 0},
			{0.25, -0.75},
		},
	}
	for _, scale := range []int{MinScale, 6, 11, MaxScale} {
		q := Quantize(p, scale)
		back := Dequantize(q)
		step := 1.0 / float64(int64(1)<<uint(scale))
		checkBand := func(name string, orig, got []float64) {
			if len(orig) != len(got) {
				t.Fatalf("scale %d %s: length %d, want %d", scale, name, len(got), len(orig))
			}
			for i := range orig {
				if d := math.Abs(orig[i] - got[i]); d > step/2+1e-12 {
					t.Errorf("scale %d %s[%d]: error %g exceeds half step %g", scale, name, i, d, step/2)
				}
			}
		}
		checkBand("approx", p.Approx, back.Approx)
		for l := range p.Details {
			checkBand("detail", p.Details[l], back.Details[l])
		}
	}
}

func TestRoundingHalfAwayFromZero(t *testing.T) {
	// 0.3125 * 2^3 = 2.5 exactly; half away from zero gives 3
	p := &wavelet.Pyramid{N: 2, Approx: []float64{0.3125, -0.3125}}
	q := Quantize(p, 3)
	if q.Approx[0] != 3 || q.Approx[1] != -3 {
		t.Errorf("got %d, %d; want 3, -3", q.Approx[0], q.Approx[1])
	}
}

func TestSaturation(t *testing.T) {
	p := &wavelet.Pyramid{N: 2, Approx: []float64{10, -10}}
	q := Quantize(p, 15)
	if q.Approx[0] != math.MaxInt16 {
		t.Errorf("positive overflow: got %d, want %d", q.Approx[0], math.MaxInt16)
	}
	if q.Approx[1] != math.MinInt16 {
		t.Errorf("negative overflow: got %d, want %d", q.Approx[1], math.MinInt16)
	}
}

func TestThresholdFloors(t *testing.T) {
	details := []int16{0, 1, -1, 2, -2, 3, -3, 8, -8, 9, 20, -20, 21, 100, math.MinInt16}
	cases := []struct {
		cutoff Cutoff
		floor  int
	}{
		{CutoffLow, 3},
		{CutoffMedium, 9},
		{CutoffHigh, 21},
	}
	for _, c := range cases {
		q := &Pyramid{
			N:       4,
			Scale:   11,
			Approx:  []int16{1, -2},
			Details: [][]int16{append([]int16(nil), details...)},
		}
		Threshold(q, c.cutoff)
		for i, orig := range details {
			m := int(orig)
			if m < 0 {
				m = -m
			}
			got := q.Details[0][i]
			if m < c.floor && got != 0 {
				t.Errorf("%s: |%d| below floor %d survived as %d", c.cutoff, orig, c.floor, got)
			}
			if m >= c.floor && got != orig {
				t.Errorf("%s: %d at or above floor %d was changed to %d", c.cutoff, orig, c.floor, got)
			}
		}
		if q.Approx[0] != 1 || q.Approx[1] != -2 {
			t.Errorf("%s: approximation band was modified", c.cutoff)
		}
	}
}

func TestThresholdNone(t *testing.T) {
	q := &Pyramid{N: 2, Scale: 11, Approx: []int16{5}, Details: [][]int16{{1, -1, 2}}}
	Threshold(q, CutoffNone)
	want := []int16{1, -1, 2}
	for i, v := range want {
		if q.Details[0][i] != v {
			t.Fatalf("CutoffNone modified detail %d", i)
		}
	}
}

func TestBaseFloorByScale(t *testing.T) {
	cases := map[int]int{1: 1, 6: 1, 7: 1, 8: 2, 9: 2, 10: 3, 11: 3, 12: 4, 15: 4}
	for scale, want := range cases {
		if got := baseFloor(scale); got != want {
			t.Errorf("baseFloor(%d) = %d, want %d", scale, got, want)
		}
	}
}

func TestCutoffValid(t *testing.T) {
	for _, c := range []Cutoff{CutoffNone, CutoffLow, CutoffMedium, CutoffHigh} {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if Cutoff(4).Valid() {
		t.Error("Cutoff(4) should be invalid")
	}
}
