package stat

import (
	"math"
	"sort"
)

// Quantile returns the p-quantile of the ascending sorted values using
// linear interpolation between order statistics (method R-7 of Hyndman
// and Fan, the default of R). It returns NaN for no values and
// clamps p to [0,1].
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	if p <= 0 || n == 1 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// Summary is the five number summary of a distribution.
type Summary struct {
	Min, Q1, Median, Q3, Max float64
}

// FiveNumber computes the five number summary of values. values is not
// modified. All fields are NaN if values is empty.
func FiveNumber(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{nan, nan, nan, nan, nan}
	}
	d := append([]float64(nil), values...)
	sort.Float64s(d)
	return Summary{
		Min:    d[0],
		Q1:     Quantile(d, 0.25),
		Median: Quantile(d, 0.5),
		Q3:     Quantile(d, 0.75),
		Max:    d[len(d)-1],
	}
}

// IQR is the inter quartile range.
func (s Summary) IQR() float64 { return s.Q3 - s.Q1 }
