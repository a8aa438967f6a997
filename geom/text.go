package geom

import (
	plot "github.com/vdobler/socialplot"
)

// Labels places the title and the axis titles around a panel.
type Labels struct {
	Title, X, Y string

	// Panel is the rectangle (in pixel) spanned by the scales.
	Panel struct{ Left, Top, Right, Bottom float64 }

	Width, Height float64 // canvas size
}

func (l Labels) Render() []plot.Grob {
	th := plot.DefaultTheme
	var grobs []plot.Grob
	cx := (l.Panel.Left + l.Panel.Right) / 2
	if l.Title != "" {
		grobs = append(grobs, plot.GrobText{
			X: l.Width / 2, Y: l.Panel.Top / 2, Text: l.Title,
			Style: plot.TextStyle{Size: th.TitleSize, Color: th.TextColor, Anchor: plot.AnchorMiddle},
		})
	}
	if l.X != "" {
		grobs = append(grobs, plot.GrobText{
			X: cx, Y: l.Height - 10, Text: l.X,
			Style: plot.TextStyle{Size: th.FontSize + 2, Color: th.TextColor, Anchor: plot.AnchorMiddle},
		})
	}
	if l.Y != "" {
		grobs = append(grobs, plot.GrobText{
			X: 18, Y: (l.Panel.Top + l.Panel.Bottom) / 2, Text: l.Y,
			Style: plot.TextStyle{Size: th.FontSize + 2, Color: th.TextColor, Anchor: plot.AnchorMiddle, Angle: -90},
		})
	}
	return grobs
}
