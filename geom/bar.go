package geom

import (
	"math"

	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/stat"
)

// Bars draws grouped (dodged) bars: X0 positions the groups given by
// the first key part, X1 the bars inside a group given by the second
// key part. X1 must be a scale nested in X0 (see BandScale.Inner).
type Bars struct {
	X0, X1 plot.BandScale
	Y      plot.LinearScale
	Colors plot.OrdinalColors
	Style  plot.Style
}

// Render emits one rectangle per mean, group by group in the order of
// X0. Bars grow from zero, or from the domain end nearest to zero if
// zero is not part of the y domain. Missing combinations leave a gap.
func (b Bars) Render(means []stat.Mean) []plot.Grob {
	style := orStyle(b.Style, plot.DefaultTheme.BarStyle)
	zero := math.Min(math.Max(0, b.Y.Min), b.Y.Max)
	base := b.Y.Map(zero)
	w := b.X1.Bandwidth()

	grobs := make([]plot.Grob, 0, len(means))
	for _, group := range b.X0.Domain() {
		x0, _ := b.X0.Map(group)
		for _, m := range means {
			if len(m.Key) < 2 || m.Key[0] != group {
				continue
			}
			x1, ok := b.X1.Map(m.Key[1])
			if !ok {
				continue
			}
			y := b.Y.Map(m.Value)
			top, height := y, base-y
			if height < 0 {
				top, height = base, -height
			}
			grobs = append(grobs, plot.GrobRect{
				X: x0 + x1, Y: top, W: w, H: height,
				Style: style.Filled(b.Colors.Color(m.Key[1])),
			})
		}
	}
	return grobs
}
