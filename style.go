package plot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Style collects the fixed aesthetics of a grob. A nil color means
// "none", i.e. no stroke or no fill.
type Style struct {
	Stroke   color.Color
	Fill     color.Color
	Width    float64 // stroke width in pixel
	LineType LineType
}

// Stroked returns a copy of s with the given stroke color and width.
func (s Style) Stroked(c color.Color, width float64) Style {
	s.Stroke, s.Width = c, width
	if s.LineType == BlankLine {
		s.LineType = SolidLine
	}
	return s
}

// Filled returns a copy of s with fill color c.
func (s Style) Filled(c color.Color) Style {
	s.Fill = c
	return s
}

// SetAlpha returns c with opacity a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// Opacity of c in [0,1]; 0 for nil.
func Opacity(c color.Color) float64 {
	if c == nil {
		return 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.A) / 0xff
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	SolidCirclePoint
	SolidSquarePoint
)

// String2PointShape converts "circle", "square", "solid-circle" or
// "solid-square"; anything else is BlankPoint.
func String2PointShape(s string) PointShape {
	switch s {
	case "circle":
		return CirclePoint
	case "square":
		return SquarePoint
	case "solid-circle":
		return SolidCirclePoint
	case "solid-square":
		return SolidSquarePoint
	}
	return BlankPoint
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
)

// String2LineType converts "solid", "dashed", "dotted" or a number;
// anything else is BlankLine.
func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(DottedLine) + 1))
	}
	switch s {
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	default:
		return BlankLine
	}
}

// Dashes returns the on/off pattern of lt for a line of width w.
// Solid and blank lines have no pattern.
func (lt LineType) Dashes(w float64) []float64 {
	switch lt {
	case DashedLine:
		return []float64{4 * w, 2 * w}
	case DottedLine:
		return []float64{w, 2 * w}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     color.RGBA{0xff, 0x00, 0x00, 0xff},
	"green":   color.RGBA{0x00, 0xff, 0x00, 0xff},
	"blue":    color.RGBA{0x00, 0x00, 0xff, 0xff},
	"white":   color.RGBA{0xff, 0xff, 0xff, 0xff},
	"gray20":  color.RGBA{0x33, 0x33, 0x33, 0xff},
	"gray":    color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	"gray80":  color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	"black":   color.RGBA{0x00, 0x00, 0x00, 0xff},
	"pink":    color.RGBA{0xff, 0xc0, 0xcb, 0xff},
	"thistle": color.RGBA{0xd8, 0xbf, 0xd8, 0xff},
	"crimson": color.RGBA{0xdc, 0x14, 0x3c, 0xff},
}

// String2Color parses #rrggbb, #rrggbbaa, #rgb or a builtin color name.
// "none" and the empty string yield nil. Unknown names give a
// conspicuous semi transparent pink.
func String2Color(s string) color.Color {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
