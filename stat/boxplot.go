package stat

import (
	"sort"

	plot "github.com/vdobler/socialplot"
)

// BoxOptions controls the whiskers of a box plot.
type BoxOptions struct {
	// Coef is the length of the whiskers in multiples of the IQR
	// (Tukey uses 1.5). Values outside are reported as outliers. Zero
	// lets the whiskers reach from min to max without outliers.
	Coef float64
}

// Box is the box plot summary of one group.
type Box struct {
	Key Key
	N   int
	Summary

	// Low and High are the ends of the whiskers.
	Low, High float64
	Outliers  []float64
}

// BoxPlot computes one Box per group of df keyed by keyFields over the
// numeric field value.
func BoxPlot(df *plot.DataFrame, value string, opts BoxOptions, keyFields ...string) ([]Box, error) {
	if err := requireNumeric(df, value); err != nil {
		return nil, err
	}
	groups, err := GroupBy(df, keyFields...)
	if err != nil {
		return nil, err
	}

	boxes := make([]Box, len(groups))
	for i, g := range groups {
		boxes[i] = computeBox(g.Key, g.values(df, value), opts.Coef)
	}
	return boxes, nil
}

func computeBox(key Key, d []float64, coef float64) (b Box) {
	sort.Float64s(d)
	b.Key, b.N = key, len(d)
	b.Summary = FiveNumber(d)
	b.Low, b.High = b.Min, b.Max
	if coef <= 0 {
		return b
	}

	iqr := b.IQR()
	lo, hi := b.Q1-coef*iqr, b.Q3+coef*iqr
	b.Low, b.High = b.Max, b.Min

	// Whiskers end at the most extreme values inside the fences.
	for _, y := range d {
		if y >= lo && y < b.Low {
			b.Low = y
		}
		if y <= hi && y > b.High {
			b.High = y
		}
		if y < lo || y > hi {
			b.Outliers = append(b.Outliers, y)
		}
	}
	return b
}
