package geom

import (
	"fmt"

	plot "github.com/vdobler/socialplot"
)

// Side on which an axis is drawn.
type Side int

const (
	Left Side = iota
	Bottom
)

// Axis draws the domain line, tick marks and tick labels of a scale.
type Axis struct {
	Side Side

	// At is the x position of a left axis or the y position of a
	// bottom axis.
	At float64

	TickSize float64 // default 6
	Format   string  // format of numeric labels, default "%g"
	Style    plot.Style
	Text     plot.TextStyle
}

func (a Axis) defaults() Axis {
	if a.TickSize == 0 {
		a.TickSize = 6
	}
	if a.Format == "" {
		a.Format = "%g"
	}
	a.Style = orStyle(a.Style, plot.DefaultTheme.AxisStyle)
	if a.Text.Size == 0 {
		a.Text.Size = plot.DefaultTheme.FontSize
	}
	if a.Text.Color == nil {
		a.Text.Color = plot.DefaultTheme.TextColor
	}
	return a
}

// Linear draws an axis for a continuous scale with ticks at the scale's
// major tick values.
func (a Axis) Linear(s plot.LinearScale) []plot.Grob {
	a = a.defaults()
	grobs := []plot.Grob{a.domain(s.Lo, s.Hi)}
	for _, t := range s.Ticks() {
		grobs = append(grobs, a.tick(s.Map(t), fmt.Sprintf(a.Format, t))...)
	}
	return grobs
}

// Band draws an axis for a band scale with a tick at the centre of
// every band.
func (a Axis) Band(s plot.BandScale) []plot.Grob {
	a = a.defaults()
	lo, hi := s.Range()
	grobs := []plot.Grob{a.domain(lo, hi)}
	for _, level := range s.Domain() {
		c, _ := s.Center(level)
		grobs = append(grobs, a.tick(c, level)...)
	}
	return grobs
}

func (a Axis) domain(lo, hi float64) plot.Grob {
	if a.Side == Left {
		return plot.GrobLine{X0: a.At, Y0: lo, X1: a.At, Y1: hi, Style: a.Style}
	}
	return plot.GrobLine{X0: lo, Y0: a.At, X1: hi, Y1: a.At, Style: a.Style}
}

func (a Axis) tick(pos float64, label string) []plot.Grob {
	text := a.Text
	if a.Side == Left {
		text.Anchor = plot.AnchorEnd
		return []plot.Grob{
			plot.GrobLine{X0: a.At - a.TickSize, Y0: pos, X1: a.At, Y1: pos, Style: a.Style},
			plot.GrobText{X: a.At - a.TickSize - 3, Y: pos + text.Size/3, Text: label, Style: text},
		}
	}
	if text.Angle == 0 {
		text.Anchor = plot.AnchorMiddle
	} else {
		text.Anchor = plot.AnchorEnd
	}
	return []plot.Grob{
		plot.GrobLine{X0: pos, Y0: a.At, X1: pos, Y1: a.At + a.TickSize, Style: a.Style},
		plot.GrobText{X: pos, Y: a.At + a.TickSize + text.Size, Text: label, Style: text},
	}
}
