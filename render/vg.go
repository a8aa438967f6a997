package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	plot "github.com/vdobler/socialplot"
)

// VGCanvas is a plot.Target drawing onto a gonum vg canvas. One pixel
// is one point; the y axis is flipped as vg's origin is bottom left.
type VGCanvas struct {
	c    vg.Canvas
	out  io.WriterTo
	w, h float64
	font vg.Font
}

// Font is the typeface of all text drawn on a VGCanvas.
const Font = "Helvetica"

var _ plot.Target = (*VGCanvas)(nil)

// NewVG creates a canvas for format f, which must be PNG, PDF or VGSVG.
func NewVG(width, height float64, f Format) (*VGCanvas, error) {
	return newVG(width, height, f, Font)
}

func newVG(width, height float64, f Format, fontName string) (*VGCanvas, error) {
	font, err := vg.MakeFont(fontName, 10)
	if err != nil {
		return nil, fmt.Errorf("vg canvas font %q: %w", fontName, err)
	}
	w, h := vg.Length(width), vg.Length(height)
	vc := &VGCanvas{w: width, h: height, font: font}
	switch f {
	case PNG:
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))
		vc.c, vc.out = c, vgimg.PngCanvas{Canvas: c}
	case PDF:
		c := vgpdf.New(w, h)
		vc.c, vc.out = c, c
	case VGSVG:
		c := vgsvg.New(w, h)
		vc.c, vc.out = c, c
	default:
		return nil, fmt.Errorf("vg canvas %q: %w", f, ErrFormat)
	}
	return vc, nil
}

// WriteTo encodes the canvas.
func (vc *VGCanvas) WriteTo(w io.Writer) (int64, error) { return vc.out.WriteTo(w) }

func (vc *VGCanvas) Size() (float64, float64) { return vc.w, vc.h }

func (vc *VGCanvas) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(vc.h - y)}
}

// stroke sets up line width, dashes and color; it reports false if
// nothing is to be stroked.
func (vc *VGCanvas) stroke(style plot.Style) bool {
	if style.Stroke == nil || style.LineType == plot.BlankLine || style.Width <= 0 {
		return false
	}
	vc.c.SetLineWidth(vg.Length(style.Width))
	var dashes []vg.Length
	for _, d := range style.LineType.Dashes(style.Width) {
		dashes = append(dashes, vg.Length(d))
	}
	vc.c.SetLineDash(dashes, 0)
	vc.c.SetColor(style.Stroke)
	return true
}

func (vc *VGCanvas) fill(c color.Color, p vg.Path) {
	if c == nil {
		return
	}
	vc.c.SetColor(c)
	vc.c.Fill(p)
}

func (vc *VGCanvas) Line(x0, y0, x1, y1 float64, style plot.Style) {
	if !vc.stroke(style) {
		return
	}
	var p vg.Path
	p.Move(vc.pt(x0, y0))
	p.Line(vc.pt(x1, y1))
	vc.c.Stroke(p)
}

func (vc *VGCanvas) rect(x, y, w, h float64) vg.Path {
	var p vg.Path
	p.Move(vc.pt(x, y))
	p.Line(vc.pt(x+w, y))
	p.Line(vc.pt(x+w, y+h))
	p.Line(vc.pt(x, y+h))
	p.Close()
	return p
}

func (vc *VGCanvas) Rect(x, y, w, h float64, style plot.Style) {
	p := vc.rect(x, y, w, h)
	vc.fill(style.Fill, p)
	if vc.stroke(style) {
		vc.c.Stroke(p)
	}
}

func (vc *VGCanvas) Path(segs []plot.PathSeg, style plot.Style) {
	var p vg.Path
	for _, s := range segs {
		switch s.Op {
		case plot.MoveTo:
			p.Move(vc.pt(s.Pts[0].X, s.Pts[0].Y))
		case plot.LineTo:
			p.Line(vc.pt(s.Pts[0].X, s.Pts[0].Y))
		case plot.CubeTo:
			p.CubeTo(vc.pt(s.Pts[0].X, s.Pts[0].Y), vc.pt(s.Pts[1].X, s.Pts[1].Y), vc.pt(s.Pts[2].X, s.Pts[2].Y))
		case plot.ClosePath:
			p.Close()
		}
	}
	vc.fill(style.Fill, p)
	if vc.stroke(style) {
		vc.c.Stroke(p)
	}
}

func (vc *VGCanvas) Point(x, y, size float64, shape plot.PointShape, style plot.Style) {
	r := size / 2
	var p vg.Path
	switch shape {
	case plot.BlankPoint:
		return
	case plot.CirclePoint, plot.SolidCirclePoint:
		p.Move(vc.pt(x+r, y))
		p.Arc(vc.pt(x, y), vg.Length(r), 0, 2*math.Pi)
		p.Close()
	case plot.SquarePoint, plot.SolidSquarePoint:
		p = vc.rect(x-r, y-r, size, size)
	}
	if shape == plot.SolidCirclePoint || shape == plot.SolidSquarePoint {
		vc.fill(style.Stroke, p)
		return
	}
	vc.fill(style.Fill, p)
	if vc.stroke(style) {
		vc.c.Stroke(p)
	}
}

func (vc *VGCanvas) Text(x, y float64, text string, style plot.TextStyle) {
	if style.Color == nil {
		return
	}
	font := vc.font
	font.Size = vg.Length(style.Size)
	var dx vg.Length
	switch style.Anchor {
	case plot.AnchorMiddle:
		dx = -font.Width(text) / 2
	case plot.AnchorEnd:
		dx = -font.Width(text)
	}
	vc.c.Push()
	defer vc.c.Pop()
	vc.c.SetColor(style.Color)
	vc.c.Translate(vc.pt(x, y))
	if style.Angle != 0 {
		vc.c.Rotate(-style.Angle * math.Pi / 180)
	}
	vc.c.FillString(font, vg.Point{X: dx}, text)
}
