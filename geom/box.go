// Package geom turns summaries and scales into grobs.
//
// Every geom is a small configuration struct with a Render method. The
// zero value of a style field means "use plot.DefaultTheme".
package geom

import (
	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/stat"
)

type Box struct {
	X plot.BandScale
	Y plot.LinearScale

	Style, Whisker, Median plot.Style
	Outlier                Points
}

// Render draws for each box the lower and upper whisker, the box from
// Q1 to Q3 and the median line, in this order. Boxes whose key is not
// in the x scale are skipped.
func (b Box) Render(boxes []stat.Box) []plot.Grob {
	style := orStyle(b.Style, plot.DefaultTheme.BoxStyle)
	whisker := orStyle(b.Whisker, plot.DefaultTheme.WhiskerStyle)
	median := orStyle(b.Median, plot.DefaultTheme.MedianStyle)

	w := b.X.Bandwidth()
	grobs := make([]plot.Grob, 0, 4*len(boxes))
	for _, box := range boxes {
		x, ok := b.X.Map(box.Key.String())
		if !ok {
			continue
		}
		xc := x + w/2
		yq1, yq3 := b.Y.Map(box.Q1), b.Y.Map(box.Q3)
		ylo, yhi := b.Y.Map(box.Low), b.Y.Map(box.High)
		ymed := b.Y.Map(box.Median)

		top, height := yq3, yq1-yq3
		if height < 0 {
			top, height = yq1, -height
		}

		grobs = append(grobs,
			plot.GrobLine{X0: xc, Y0: ylo, X1: xc, Y1: yq1, Style: whisker},
			plot.GrobLine{X0: xc, Y0: yq3, X1: xc, Y1: yhi, Style: whisker},
			plot.GrobRect{X: x, Y: top, W: w, H: height, Style: style},
			plot.GrobLine{X0: x, Y0: ymed, X1: x + w, Y1: ymed, Style: median},
		)

		if len(box.Outliers) > 0 {
			pts := make([]plot.Point, len(box.Outliers))
			for i, o := range box.Outliers {
				pts[i] = plot.Point{X: xc, Y: b.Y.Map(o)}
			}
			grobs = append(grobs, b.Outlier.Render(pts)...)
		}
	}
	return grobs
}

// orStyle returns s unless it is the zero Style.
func orStyle(s, def plot.Style) plot.Style {
	if s == (plot.Style{}) {
		return def
	}
	return s
}
