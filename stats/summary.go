package stats

import (
	"math"
	"sort"
)

// WhiskerFactor is the Tukey fence multiplier: whiskers reach the most
// extreme points within WhiskerFactor*IQR of the quartiles.
const WhiskerFactor = 1.5

// Summary represents the five-number summary of a sample plus its outliers.
type Summary struct {
	Count      int
	Min        float64
	Q1         float64
	Median     float64
	Q3         float64
	Max        float64
	LowerFence float64   // Q1 - 1.5 IQR
	UpperFence float64   // Q3 + 1.5 IQR
	AdjLow     float64   // lowest point inside the fences (lower whisker end)
	AdjHigh    float64   // highest point inside the fences (upper whisker end)
	Outliers   []float64 // points outside the fences, ascending
}

// IQR returns the interquartile range.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

// Quantile returns the p-quantile of sorted using linear interpolation
// between closest ranks. sorted must be in ascending order.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Summarize computes the box summary of values. An empty sample yields a
// Summary with Count 0 and NaN statistics.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{
			Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan,
			LowerFence: nan, UpperFence: nan, AdjLow: nan, AdjHigh: nan,
		}
	}

	sorted := sortedCopy(values)
	n := len(sorted)

	s := Summary{
		Count:  n,
		Min:    sorted[0],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    sorted[n-1],
	}
	iqr := s.IQR()
	s.LowerFence = s.Q1 - WhiskerFactor*iqr
	s.UpperFence = s.Q3 + WhiskerFactor*iqr

	s.AdjLow = math.Inf(1)
	s.AdjHigh = math.Inf(-1)
	for _, v := range sorted {
		if v < s.LowerFence || v > s.UpperFence {
			s.Outliers = append(s.Outliers, v)
			continue
		}
		if v < s.AdjLow {
			s.AdjLow = v
		}
		if v > s.AdjHigh {
			s.AdjHigh = v
		}
	}

	return s
}

func sortedCopy(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted
}
