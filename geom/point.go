package geom

import (
	plot "github.com/vdobler/socialplot"
)

// Points draws a marker at each position.
type Points struct {
	Size  float64
	Shape plot.PointShape
	Style plot.Style
}

func (p Points) Render(pts []plot.Point) []plot.Grob {
	size := p.Size
	if size <= 0 {
		size = 4
	}
	shape := p.Shape
	if shape == plot.BlankPoint {
		shape = plot.CirclePoint
	}
	style := orStyle(p.Style, plot.DefaultTheme.PointStyle)

	grobs := make([]plot.Grob, len(pts))
	for i, pt := range pts {
		grobs[i] = plot.GrobPoint{X: pt.X, Y: pt.Y, Size: size, Shape: shape, Style: style}
	}
	return grobs
}
