package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	plot "github.com/vdobler/socialplot"
)

// SVGCanvas is a plot.Target writing SVG elements as they are drawn.
// Coordinates are written with two decimals.
type SVGCanvas struct {
	svg  *svg.SVG
	w, h float64
}

var _ plot.Target = (*SVGCanvas)(nil)

// NewSVG starts an SVG document of the given size on w. End must be
// called once all drawing is done.
func NewSVG(w io.Writer, width, height float64) *SVGCanvas {
	s := &SVGCanvas{svg: svg.New(w), w: width, h: height}
	s.svg.Start(width, height,
		`font-family="Helvetica,Arial,sans-serif"`)
	return s
}

// End closes the document.
func (s *SVGCanvas) End() { s.svg.End() }

func (s *SVGCanvas) Size() (float64, float64) { return s.w, s.h }

func (s *SVGCanvas) Line(x0, y0, x1, y1 float64, style plot.Style) {
	s.svg.Line(x0, y0, x1, y1, strokeAttr(style))
}

func (s *SVGCanvas) Rect(x, y, w, h float64, style plot.Style) {
	s.svg.Rect(x, y, w, h, fillAttr(style.Fill), strokeAttr(style))
}

func (s *SVGCanvas) Path(segs []plot.PathSeg, style plot.Style) {
	s.svg.Path(plot.GrobPath{Segs: segs}.SVG(), fillAttr(style.Fill), strokeAttr(style))
}

func (s *SVGCanvas) Point(x, y, size float64, shape plot.PointShape, style plot.Style) {
	r := size / 2
	switch shape {
	case plot.BlankPoint:
	case plot.CirclePoint:
		s.svg.Circle(x, y, r, fillAttr(style.Fill), strokeAttr(style))
	case plot.SolidCirclePoint:
		s.svg.Circle(x, y, r, fillAttr(style.Stroke))
	case plot.SquarePoint:
		s.svg.Rect(x-r, y-r, size, size, fillAttr(style.Fill), strokeAttr(style))
	case plot.SolidSquarePoint:
		s.svg.Rect(x-r, y-r, size, size, fillAttr(style.Stroke))
	}
}

func (s *SVGCanvas) Text(x, y float64, text string, style plot.TextStyle) {
	attrs := []string{
		fmt.Sprintf(`font-size="%.6gpx"`, style.Size),
		fillAttr(style.Color),
		fmt.Sprintf(`text-anchor="%s"`, anchor(style.Anchor)),
	}
	if style.Angle != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%.6g %.2f %.2f)"`, style.Angle, x, y))
	}
	s.svg.Text(x, y, text, attrs...)
}

func anchor(a plot.Anchor) string {
	switch a {
	case plot.AnchorMiddle:
		return "middle"
	case plot.AnchorEnd:
		return "end"
	}
	return "start"
}

func fillAttr(c color.Color) string {
	if c == nil {
		return `fill="none"`
	}
	if op := plot.Opacity(c); op < 1 {
		return fmt.Sprintf(`fill="%s" fill-opacity="%.3g"`, plot.Hex(c), op)
	}
	return fmt.Sprintf(`fill="%s"`, plot.Hex(c))
}

func strokeAttr(style plot.Style) string {
	if style.Stroke == nil || style.LineType == plot.BlankLine {
		return `stroke="none"`
	}
	attr := fmt.Sprintf(`stroke="%s" stroke-width="%.6g"`, plot.Hex(style.Stroke), style.Width)
	if dashes := style.LineType.Dashes(style.Width); len(dashes) > 0 {
		parts := make([]string, len(dashes))
		for i, d := range dashes {
			parts[i] = fmt.Sprintf("%.6g", d)
		}
		attr += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	return attr
}
