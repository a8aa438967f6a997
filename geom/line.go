package geom

import (
	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/stat"
)

// Curve selects how the points of a Line are connected.
type Curve int

const (
	Linear Curve = iota
	Natural
)

// ParseCurve converts "linear" or "natural".
func ParseCurve(s string) Curve {
	if s == "natural" {
		return Natural
	}
	return Linear
}

// Line connects the means, placed at the centre of their x band, by a
// single path.
type Line struct {
	X     plot.BandScale
	Y     plot.LinearScale
	Curve Curve
	Style plot.Style

	// Markers draws a point at each mean if non-nil.
	Markers *Points
}

func (l Line) Render(means []stat.Mean) []plot.Grob {
	pts := make([]plot.Point, 0, len(means))
	for _, m := range means {
		x, ok := l.X.Center(m.Key.String())
		if !ok {
			continue
		}
		pts = append(pts, plot.Point{X: x, Y: l.Y.Map(m.Value)})
	}
	if len(pts) == 0 {
		return nil
	}

	style := orStyle(l.Style, plot.DefaultTheme.LineStyle)
	var path plot.GrobPath
	if l.Curve == Natural {
		path = plot.GrobPath{Segs: NaturalSpline(pts), Style: style}
	} else {
		path = plot.Polyline(pts, style)
	}
	grobs := []plot.Grob{path}
	if l.Markers != nil {
		grobs = append(grobs, l.Markers.Render(pts)...)
	}
	return grobs
}

// NaturalSpline returns path segments of the natural cubic spline
// through pts: a MoveTo followed by one CubeTo per interval. Two points
// are joined by a straight line.
func NaturalSpline(pts []plot.Point) []plot.PathSeg {
	if len(pts) == 0 {
		return nil
	}
	segs := []plot.PathSeg{{Op: plot.MoveTo, Pts: []plot.Point{pts[0]}}}
	switch len(pts) {
	case 1:
		return segs
	case 2:
		return append(segs, plot.PathSeg{Op: plot.LineTo, Pts: []plot.Point{pts[1]}})
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	ax, bx := controlPoints(xs)
	ay, by := controlPoints(ys)
	for i := 0; i+1 < len(pts); i++ {
		segs = append(segs, plot.PathSeg{Op: plot.CubeTo, Pts: []plot.Point{
			{X: ax[i], Y: ay[i]},
			{X: bx[i], Y: by[i]},
			pts[i+1],
		}})
	}
	return segs
}

// controlPoints solves the tridiagonal system of a natural cubic spline
// for one coordinate. It returns the first and second Bézier control
// value of each of the len(x)-1 intervals. len(x) must be at least 3.
func controlPoints(x []float64) (a, b []float64) {
	n := len(x) - 1
	a = make([]float64, n)
	b = make([]float64, n)
	r := make([]float64, n)

	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]

	// Forward elimination and back substitution.
	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}

	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}
