package sigstat

import (
	"math"
	"testing"
)

func TestMeanStdDev(t *testing.T) {
	signal := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if m := Mean(signal); m != 5 {
		t.Errorf("Mean = %v, want 5", m)
	}
	if sd := StdDev(signal); math.Abs(sd-2) > 1e-12 {
		t.Errorf("StdDev = %v, want 2", sd)
	}
	if m := Mean(nil); m != 0 {
		t.Errorf("Mean(nil) = %v, want 0", m)
	}
	if sd := StdDev(nil); sd != 0 {
		t.Errorf("StdDev(nil) = %v, want 0", sd)
	}
}

func TestPRD(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	if prd := PRD(a, a); prd != 0 {
		t.Errorf("PRD of identical signals = %v, want 0", prd)
	}
	b := []float64{1, 2, 3, 4, 6}
	if prd := PRD(a, b); prd <= 0 {
		t.Errorf("PRD of differing signals = %v, want > 0", prd)
	}
	if prd := PRD(a, a[:4]); !math.IsNaN(prd) {
		t.Errorf("PRD with length mismatch = %v, want NaN", prd)
	}
	if prd := PRD(nil, nil); !math.IsNaN(prd) {
		t.Errorf("PRD of empty signals = %v, want NaN", prd)
	}
}

func TestSNR(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	if snr := SNR(a, a); !math.IsInf(snr, 1) {
		t.Errorf("SNR of exact reconstruction = %v, want +Inf", snr)
	}
	b := []float64{1.1, 2, 3, 4, 5}
	if snr := SNR(a, b); math.IsInf(snr, 0) || math.IsNaN(snr) {
		t.Errorf("SNR = %v, want a finite value", snr)
	}
	if snr := SNR(a, a[:2]); !math.IsNaN(snr) {
		t.Errorf("SNR with length mismatch = %v, want NaN", snr)
	}
}

func TestErrorMeasures(t *testing.T) {
	a := []float64{0, 1, 2, 3}
	b := []float64{0, 1.5, 2, 2}
	if e := MaxAbsError(a, b); e != 1 {
		t.Errorf("MaxAbsError = %v, want 1", e)
	}
	if e := MSE(a, b); math.Abs(e-0.3125) > 1e-12 {
		t.Errorf("MSE = %v, want 0.3125", e)
	}
	if e := MaxAbsError(a, b[:3]); !math.IsNaN(e) {
		t.Errorf("MaxAbsError with length mismatch = %v, want NaN", e)
	}
	if e := MSE(nil, nil); !math.IsNaN(e) {
		t.Errorf("MSE of empty signals = %v, want NaN", e)
	}
}

func TestCompressionRatio(t *testing.T) {
	if r := CompressionRatio(100, 200); r != 4 {
		t.Errorf("CompressionRatio(100, 200) = %v, want 4", r)
	}
	if r := CompressionRatio(100, 0); r != 0 {
		t.Errorf("CompressionRatio with zero size = %v, want 0", r)
	}
}
