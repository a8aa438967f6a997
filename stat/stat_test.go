package stat

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plot "github.com/vdobler/socialplot"
)

var columns = []string{"Platform", "PostType", "Likes"}

func frame(t *testing.T, rows ...plot.Row) *plot.DataFrame {
	t.Helper()
	df, err := plot.Normalize(plot.FromRows("test", columns, rows), plot.FailOnInvalid, "Likes")
	require.NoError(t, err)
	return df
}

func TestQuantile(t *testing.T) {
	d := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tests := []struct{ p, want float64 }{
		{0, 1}, {0.25, 3.25}, {0.5, 5.5}, {0.75, 7.75}, {1, 10}, {-1, 1}, {2, 10},
	}
	for _, tc := range tests {
		if got := Quantile(d, tc.p); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Quantile(%g) = %g, want %g", tc.p, got, tc.want)
		}
	}
	if q := Quantile(nil, 0.5); !math.IsNaN(q) {
		t.Errorf("Got %g for no values", q)
	}
	if q := Quantile([]float64{42}, 0.3); q != 42 {
		t.Errorf("Got %g for single value", q)
	}
}

func TestFiveNumber(t *testing.T) {
	s := FiveNumber([]float64{30, 10, 20})
	want := Summary{10, 15, 20, 25, 30}
	if s != want {
		t.Errorf("Got %+v, want %+v", s, want)
	}
	assert.Equal(t, 10.0, s.IQR())

	in := []float64{3, 1, 2}
	FiveNumber(in)
	assert.Equal(t, []float64{3, 1, 2}, in, "input must not be sorted in place")
}

func TestFiveNumberOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n < 40; n++ {
		values := make([]float64, n)
		for i := range values {
			values[i] = math.Round(rng.NormFloat64()*50 + 400)
		}
		s := FiveNumber(values)
		assert.True(t, s.Min <= s.Q1 && s.Q1 <= s.Median && s.Median <= s.Q3 && s.Q3 <= s.Max,
			"n=%d: %+v", n, s)
	}
}

func TestGroupBy(t *testing.T) {
	df := frame(t,
		plot.Row{"Platform": "B", "PostType": "x", "Likes": "1"},
		plot.Row{"Platform": "A", "PostType": "y", "Likes": "2"},
		plot.Row{"Platform": "B", "PostType": "y", "Likes": "3"},
		plot.Row{"Platform": "B", "PostType": "x", "Likes": "4"},
	)

	groups, err := GroupBy(df, "Platform")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "B", groups[0].Key.String())
	assert.Equal(t, []int{0, 2, 3}, groups[0].Rows)
	assert.Equal(t, []int{1}, groups[1].Rows)

	groups, err = GroupBy(df, "Platform", "PostType")
	require.NoError(t, err)
	var keys []string
	total := 0
	for _, g := range groups {
		keys = append(keys, g.Key.String())
		total += len(g.Rows)
	}
	assert.Equal(t, []string{"B/x", "A/y", "B/y"}, keys)
	assert.Equal(t, df.N, total, "every record in exactly one group")

	_, err = GroupBy(df)
	assert.Error(t, err)
	_, err = GroupBy(df, "Shares")
	assert.ErrorIs(t, err, plot.ErrSchema)
}

func TestBoxPlot(t *testing.T) {
	df := frame(t,
		plot.Row{"Platform": "Instagram", "Likes": "10"},
		plot.Row{"Platform": "Facebook", "Likes": "5"},
		plot.Row{"Platform": "Instagram", "Likes": "30"},
		plot.Row{"Platform": "Instagram", "Likes": "20"},
	)
	boxes, err := BoxPlot(df, "Likes", BoxOptions{}, "Platform")
	require.NoError(t, err)
	require.Len(t, boxes, 2)

	insta := boxes[0]
	assert.Equal(t, Key{"Instagram"}, insta.Key)
	assert.Equal(t, 3, insta.N)
	assert.Equal(t, Summary{10, 15, 20, 25, 30}, insta.Summary)
	assert.Equal(t, 10.0, insta.Low)
	assert.Equal(t, 30.0, insta.High)
	assert.Empty(t, insta.Outliers)

	fb := boxes[1]
	assert.Equal(t, Summary{5, 5, 5, 5, 5}, fb.Summary)
}

func TestBoxPlotOrdered(t *testing.T) {
	var rows []plot.Row
	for _, v := range []string{"7", "3", "100", "1", "4", "4", "-80", "5", "2"} {
		rows = append(rows, plot.Row{"Platform": "P", "Likes": v})
	}
	boxes, err := BoxPlot(frame(t, rows...), "Likes", BoxOptions{Coef: 1.5}, "Platform")
	require.NoError(t, err)
	b := boxes[0]
	assert.True(t, b.Min <= b.Q1 && b.Q1 <= b.Median && b.Median <= b.Q3 && b.Q3 <= b.Max, "%+v", b.Summary)
	assert.Equal(t, []float64{-80, 100}, b.Outliers)
	assert.Equal(t, 1.0, b.Low)
	assert.Equal(t, 7.0, b.High)
}

func TestBoxPlotNotNumeric(t *testing.T) {
	df := plot.FromRows("raw", columns, []plot.Row{{"Platform": "A", "Likes": "1"}})
	_, err := BoxPlot(df, "Likes", BoxOptions{}, "Platform")
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestMeans(t *testing.T) {
	df := frame(t,
		plot.Row{"Platform": "A", "PostType": "Image", "Likes": "100"},
		plot.Row{"Platform": "A", "PostType": "Image", "Likes": "200"},
		plot.Row{"Platform": "A", "PostType": "Video", "Likes": "50"},
		plot.Row{"Platform": "B", "PostType": "Video", "Likes": "10"},
	)
	means, err := Means(df, "Likes", "Platform", "PostType")
	require.NoError(t, err)
	require.Len(t, means, 3)

	m, ok := Lookup(means, "A", "Image")
	require.True(t, ok)
	assert.Equal(t, 150.0, m.Value)
	assert.Equal(t, 2, m.N)

	m, ok = Lookup(means, "B", "Video")
	require.True(t, ok)
	assert.Equal(t, 10.0, m.Value, "single record mean is exact")
	assert.Equal(t, 1, m.N)

	_, ok = Lookup(means, "B", "Image")
	assert.False(t, ok, "absent combination")

	min, max := Extent(means)
	assert.Equal(t, 10.0, min)
	assert.Equal(t, 150.0, max)
}
