package geom

import (
	plot "github.com/vdobler/socialplot"
)

// Legend lists the categories of a color scale as swatch and label,
// one per line, starting at X,Y.
type Legend struct {
	X, Y    float64
	Swatch  float64 // side of the colored square, default 15
	Spacing float64 // distance between lines, default 20
	Style   plot.Style
	Text    plot.TextStyle
}

func (l Legend) Render(colors plot.OrdinalColors) []plot.Grob {
	if l.Swatch == 0 {
		l.Swatch = 15
	}
	if l.Spacing == 0 {
		l.Spacing = 20
	}
	style := orStyle(l.Style, plot.DefaultTheme.LegendStyle)
	text := l.Text
	if text.Size == 0 {
		text.Size = plot.DefaultTheme.FontSize
	}
	if text.Color == nil {
		text.Color = plot.DefaultTheme.TextColor
	}

	var grobs []plot.Grob
	for i, c := range colors.Domain() {
		y := l.Y + float64(i)*l.Spacing
		grobs = append(grobs,
			plot.GrobRect{X: l.X, Y: y, W: l.Swatch, H: l.Swatch, Style: style.Filled(colors.Color(c))},
			plot.GrobText{X: l.X + l.Swatch + 5, Y: y + 12, Text: c, Style: text},
		)
	}
	return grobs
}
