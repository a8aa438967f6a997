package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/stat"
)

func TestNaturalSpline(t *testing.T) {
	pts := []plot.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	segs := NaturalSpline(pts)
	require.Len(t, segs, 3)
	assert.Equal(t, plot.MoveTo, segs[0].Op)

	want := [][3]float64{{1.0 / 3, 2.0 / 3, 1}, {4.0 / 3, 5.0 / 3, 2}}
	for i, w := range want {
		s := segs[i+1]
		require.Equal(t, plot.CubeTo, s.Op)
		for j := range w {
			assert.InDelta(t, w[j], s.Pts[j].X, 1e-9, "segment %d point %d", i, j)
			// Collinear input gives a straight spline.
			assert.InDelta(t, s.Pts[j].X, s.Pts[j].Y, 1e-9)
		}
	}
}

func TestNaturalSplineDegenerate(t *testing.T) {
	assert.Nil(t, NaturalSpline(nil))

	one := NaturalSpline([]plot.Point{{X: 3, Y: 4}})
	require.Len(t, one, 1)
	assert.Equal(t, plot.MoveTo, one[0].Op)

	two := NaturalSpline([]plot.Point{{X: 0, Y: 0}, {X: 5, Y: 5}})
	require.Len(t, two, 2)
	assert.Equal(t, plot.LineTo, two[1].Op)
}

func TestNaturalSplineInterpolates(t *testing.T) {
	pts := []plot.Point{{X: 10, Y: 50}, {X: 20, Y: 10}, {X: 30, Y: 40}, {X: 40, Y: 20}, {X: 50, Y: 30}}
	segs := NaturalSpline(pts)
	require.Len(t, segs, len(pts))
	for i := 1; i < len(segs); i++ {
		assert.Equal(t, pts[i], segs[i].Pts[2], "segment %d ends at data point", i)
	}
}

func scales() (plot.BandScale, plot.LinearScale) {
	x := plot.NewBandScale(plot.BandConfig{Domain: []string{"A", "B"}, Range: [2]float64{0, 200}})
	y := plot.NewLinearScale(plot.ScaleConfig{Domain: [2]float64{0, 100}, Range: [2]float64{100, 0}})
	return x, y
}

func TestLine(t *testing.T) {
	x, y := scales()
	means := []stat.Mean{
		{Key: stat.Key{"A"}, Value: 25},
		{Key: stat.Key{"B"}, Value: 75},
		{Key: stat.Key{"C"}, Value: 50},
	}
	grobs := Line{X: x, Y: y}.Render(means)
	require.Len(t, grobs, 1)
	path := grobs[0].(plot.GrobPath)
	assert.Equal(t, "M50.00,75.00 L150.00,25.00", path.SVG())
	assert.Equal(t, plot.DefaultTheme.LineStyle, path.Style)

	grobs = Line{X: x, Y: y, Markers: &Points{}}.Render(means)
	assert.Len(t, grobs, 3)

	assert.Nil(t, Line{X: x, Y: y}.Render(nil))
}

func TestBoxRender(t *testing.T) {
	x, y := scales()
	boxes := []stat.Box{{
		Key:     stat.Key{"B"},
		Summary: stat.Summary{Min: 10, Q1: 20, Median: 40, Q3: 60, Max: 90},
		Low:     10, High: 90,
	}}
	grobs := Box{X: x, Y: y}.Render(boxes)
	require.Len(t, grobs, 4)

	lower := grobs[0].(plot.GrobLine)
	assert.Equal(t, plot.GrobLine{X0: 150, Y0: 90, X1: 150, Y1: 80, Style: plot.DefaultTheme.WhiskerStyle}, lower)
	upper := grobs[1].(plot.GrobLine)
	assert.Equal(t, 40.0, upper.Y0)
	assert.Equal(t, 10.0, upper.Y1)

	rect := grobs[2].(plot.GrobRect)
	assert.Equal(t, 100.0, rect.X)
	assert.Equal(t, 40.0, rect.Y)
	assert.Equal(t, 100.0, rect.W)
	assert.Equal(t, 40.0, rect.H)

	median := grobs[3].(plot.GrobLine)
	assert.Equal(t, 60.0, median.Y0)
	assert.Equal(t, 60.0, median.Y1)
	assert.Equal(t, plot.DefaultTheme.MedianStyle, median.Style)

	boxes[0].Key = stat.Key{"Z"}
	assert.Empty(t, Box{X: x, Y: y}.Render(boxes))
}

func TestBoxOutliers(t *testing.T) {
	x, y := scales()
	boxes := []stat.Box{{
		Key:      stat.Key{"A"},
		Summary:  stat.Summary{Min: 0, Q1: 20, Median: 30, Q3: 40, Max: 100},
		Low:      10, High: 50,
		Outliers: []float64{0, 100},
	}}
	grobs := Box{X: x, Y: y}.Render(boxes)
	require.Len(t, grobs, 6)
	p := grobs[5].(plot.GrobPoint)
	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 0.0, p.Y)
}

func TestBars(t *testing.T) {
	x0 := plot.NewBandScale(plot.BandConfig{Domain: []string{"P", "Q"}, Range: [2]float64{0, 400}})
	x1 := x0.Inner(plot.BandConfig{Domain: []string{"img", "vid"}})
	y := plot.NewLinearScale(plot.ScaleConfig{Domain: [2]float64{0, 100}, Range: [2]float64{100, 0}})
	colors := plot.NewOrdinalColors([]string{"img", "vid"}, []string{"#1f77b4", "#ff7f0e"})

	means := []stat.Mean{
		{Key: stat.Key{"Q", "vid"}, Value: 50},
		{Key: stat.Key{"P", "img"}, Value: 80},
		{Key: stat.Key{"P", "vid"}, Value: 20},
	}
	grobs := Bars{X0: x0, X1: x1, Y: y, Colors: colors}.Render(means)
	require.Len(t, grobs, 3)

	var got []plot.GrobRect
	for _, g := range grobs {
		got = append(got, g.(plot.GrobRect))
	}
	// Group P first, Q/img missing leaves a gap.
	assert.Equal(t, 0.0, got[0].X)
	assert.Equal(t, 100.0, got[1].X)
	assert.Equal(t, 300.0, got[2].X)
	for _, r := range got {
		assert.Equal(t, 100.0, r.W)
		assert.InDelta(t, 100, r.Y+r.H, 1e-9, "bars start at zero")
	}
	assert.Equal(t, 20.0, got[0].Y)
	assert.Equal(t, "#1f77b4", plot.Hex(got[0].Style.Fill))
	assert.Equal(t, "#ff7f0e", plot.Hex(got[1].Style.Fill))
}

func TestBarsNegative(t *testing.T) {
	x0 := plot.NewBandScale(plot.BandConfig{Domain: []string{"P"}, Range: [2]float64{0, 100}})
	x1 := x0.Inner(plot.BandConfig{Domain: []string{"a"}})
	y := plot.NewLinearScale(plot.ScaleConfig{Domain: [2]float64{-50, 50}, Range: [2]float64{100, 0}})
	grobs := Bars{X0: x0, X1: x1, Y: y, Colors: plot.NewOrdinalColors([]string{"a"}, nil)}.Render(
		[]stat.Mean{{Key: stat.Key{"P", "a"}, Value: -25}})
	r := grobs[0].(plot.GrobRect)
	assert.Equal(t, 50.0, r.Y)
	assert.Equal(t, 25.0, r.H)
}

func TestAxis(t *testing.T) {
	x, y := scales()

	left := Axis{Side: Left, At: 0}.Linear(y)
	require.NotEmpty(t, left)
	domain := left[0].(plot.GrobLine)
	assert.Equal(t, 100.0, domain.Y0)
	assert.Equal(t, 0.0, domain.Y1)
	// Domain line plus tick line and label per tick.
	assert.Equal(t, 1+2*len(y.Ticks()), len(left))

	bottom := Axis{Side: Bottom, At: 100, Text: plot.TextStyle{Angle: -20}}.Band(x)
	require.Len(t, bottom, 5)
	label := bottom[2].(plot.GrobText)
	assert.Equal(t, "A", label.Text)
	assert.Equal(t, 50.0, label.X)
	assert.Equal(t, plot.AnchorEnd, label.Style.Anchor)
	assert.Equal(t, -20.0, label.Style.Angle)
}

func TestLegend(t *testing.T) {
	colors := plot.NewOrdinalColors([]string{"Image", "Video", "Text"}, nil)
	grobs := Legend{X: 500, Y: 60}.Render(colors)
	require.Len(t, grobs, 6)
	third := grobs[4].(plot.GrobRect)
	assert.Equal(t, 100.0, third.Y)
	text := grobs[5].(plot.GrobText)
	assert.Equal(t, "Text", text.Text)
	assert.Equal(t, 520.0, text.X)
}

func TestLabels(t *testing.T) {
	l := Labels{Title: "T", X: "Date", Y: "Likes", Width: 600, Height: 500}
	l.Panel.Left, l.Panel.Top, l.Panel.Right, l.Panel.Bottom = 50, 50, 550, 450
	grobs := l.Render()
	require.Len(t, grobs, 3)
	title := grobs[0].(plot.GrobText)
	assert.Equal(t, 300.0, title.X)
	assert.Equal(t, 25.0, title.Y)
	ylab := grobs[2].(plot.GrobText)
	assert.Equal(t, -90.0, ylab.Style.Angle)

	assert.Empty(t, Labels{}.Render())
}

func TestParseCurve(t *testing.T) {
	assert.Equal(t, Natural, ParseCurve("natural"))
	assert.Equal(t, Linear, ParseCurve("linear"))
	assert.Equal(t, Linear, ParseCurve(""))
}
