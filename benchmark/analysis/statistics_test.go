package analysis

import (
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDescribe(t *testing.T) {
	s := Describe([]float64{5, 1, 3, 2, 4})

	if s.N != 5 {
		t.Errorf("N = %d, want 5", s.N)
	}
	if !almost(s.Mean, 3) {
		t.Errorf("Mean = %v, want 3", s.Mean)
	}
	if !almost(s.Median, 3) {
		t.Errorf("Median = %v, want 3", s.Median)
	}
	if !almost(s.Min, 1) || !almost(s.Max, 5) {
		t.Errorf("Min/Max = %v/%v, want 1/5", s.Min, s.Max)
	}
	if !almost(s.StdDev, math.Sqrt(2.5)) {
		t.Errorf("StdDev = %v, want %v", s.StdDev, math.Sqrt(2.5))
	}
}

func TestDescribe_Empty(t *testing.T) {
	s := Describe(nil)
	if s.N != 0 || s.Mean != 0 {
		t.Errorf("Describe(nil) = %+v, want zero summary", s)
	}
}

func TestDescribe_DoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Describe(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("Describe() reordered its input: %v", in)
	}
}

func TestMannWhitneyU_SeparatedSamples(t *testing.T) {
	low := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	high := make([]float64, 10)
	for i := range high {
		high[i] = float64(101 + i)
	}

	r := MannWhitneyU(low, high)
	if r.U != 0 {
		t.Errorf("U = %v, want 0 for fully separated samples", r.U)
	}
	if !r.Significant {
		t.Errorf("Significant = false, p = %v", r.PValue)
	}
}

func TestMannWhitneyU_IdenticalSamples(t *testing.T) {
	sample := []float64{10, 20, 30, 40, 50}

	r := MannWhitneyU(sample, sample)
	if r.Significant {
		t.Errorf("identical samples reported significant, p = %v", r.PValue)
	}
	if math.Abs(r.Z) > 1e-9 {
		t.Errorf("Z = %v, want 0", r.Z)
	}
}

func TestMannWhitneyU_EmptySample(t *testing.T) {
	r := MannWhitneyU(nil, []float64{1, 2, 3})
	if r.U != 0 || r.Significant {
		t.Errorf("MannWhitneyU(nil, ...) = %+v, want zero result", r)
	}
}
