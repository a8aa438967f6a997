package stat

import (
	"github.com/aclements/go-moremath/stats"
	plot "github.com/vdobler/socialplot"
)

// Mean is the arithmetic mean of one group.
type Mean struct {
	Key   Key
	N     int
	Value float64
}

// Means computes the mean of the numeric field value for every group of
// df keyed by keyFields. Key combinations without records are absent
// from the result.
func Means(df *plot.DataFrame, value string, keyFields ...string) ([]Mean, error) {
	if err := requireNumeric(df, value); err != nil {
		return nil, err
	}
	groups, err := GroupBy(df, keyFields...)
	if err != nil {
		return nil, err
	}

	means := make([]Mean, len(groups))
	for i, g := range groups {
		sample := stats.Sample{Xs: g.values(df, value)}
		means[i] = Mean{Key: g.Key, N: len(g.Rows), Value: sample.Mean()}
	}
	return means, nil
}

// Lookup finds the mean for the key made of parts.
func Lookup(means []Mean, parts ...string) (Mean, bool) {
	key := Key(parts)
	for _, m := range means {
		if m.Key.Equal(key) {
			return m, true
		}
	}
	return Mean{}, false
}

// Extent returns the smallest and largest mean. It returns NaN, NaN
// for no means.
func Extent(means []Mean) (min, max float64) {
	vs := make([]float64, len(means))
	for i, m := range means {
		vs[i] = m.Value
	}
	return stats.Bounds(vs)
}
