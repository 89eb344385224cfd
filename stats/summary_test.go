package stats

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.75, 4},
		{1, 5},
		{0.1, 1.4},
	}
	for _, tt := range tests {
		got := Quantile(sorted, tt.p)
		if math.Abs(got-tt.want) > 1e-10 {
			t.Errorf("Quantile(%v, %g) = %g, want %g", sorted, tt.p, got, tt.want)
		}
	}

	if !math.IsNaN(Quantile(nil, 0.5)) {
		t.Error("Quantile of empty slice should be NaN")
	}
	if !math.IsNaN(Quantile(sorted, 1.5)) {
		t.Error("Quantile with p > 1 should be NaN")
	}
	if Quantile([]float64{7}, 0.9) != 7 {
		t.Error("Quantile of single value should be that value")
	}
}

func TestSummarize(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 100}

	s := Summarize(values)

	if s.Count != 9 {
		t.Errorf("Count = %d, want 9", s.Count)
	}
	if s.Q1 != 3 || s.Median != 5 || s.Q3 != 7 {
		t.Errorf("quartiles = %g/%g/%g, want 3/5/7", s.Q1, s.Median, s.Q3)
	}
	if s.LowerFence != -3 || s.UpperFence != 13 {
		t.Errorf("fences = %g/%g, want -3/13", s.LowerFence, s.UpperFence)
	}
	if s.AdjLow != 1 || s.AdjHigh != 8 {
		t.Errorf("whiskers = %g/%g, want 1/8", s.AdjLow, s.AdjHigh)
	}
	if len(s.Outliers) != 1 || s.Outliers[0] != 100 {
		t.Errorf("Outliers = %v, want [100]", s.Outliers)
	}
	if s.Min != 1 || s.Max != 100 {
		t.Errorf("Min/Max = %g/%g, want 1/100", s.Min, s.Max)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Count != 0 {
		t.Errorf("Count = %d, want 0", s.Count)
	}
	if !math.IsNaN(s.Median) {
		t.Errorf("Median of empty sample should be NaN, got %g", s.Median)
	}
	if len(s.Outliers) != 0 {
		t.Errorf("Expected no outliers, got %v", s.Outliers)
	}
}

func TestSummarizeConstant(t *testing.T) {
	s := Summarize([]float64{2, 2, 2})
	if s.IQR() != 0 || s.AdjLow != 2 || s.AdjHigh != 2 || len(s.Outliers) != 0 {
		t.Errorf("constant sample summarized as %+v", s)
	}
}
