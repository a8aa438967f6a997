package plot

import (
	"fmt"
	"image/color"
	"strings"
)

// Grob is a graphical object, the fundamental draw command. All
// coordinates are pixels with the origin in the top left corner.
type Grob interface {
	Draw(t Target)
	String() string
}

// Point is a position in pixel coordinates.
type Point struct{ X, Y float64 }

// -------------------------------------------------------------------------
// Grob Point

type GrobPoint struct {
	X, Y  float64
	Size  float64
	Shape PointShape
	Style Style
}

func (point GrobPoint) Draw(t Target) {
	t.Point(point.X, point.Y, point.Size, point.Shape, point.Style)
}

func (point GrobPoint) String() string {
	return fmt.Sprintf("Point(%.1f,%.1f | %.1f %d %s)",
		point.X, point.Y, point.Size, point.Shape, Hex(point.Style.Stroke))
}

// -------------------------------------------------------------------------
// Grob Line

type GrobLine struct {
	X0, Y0, X1, Y1 float64
	Style          Style
}

func (line GrobLine) Draw(t Target) {
	t.Line(line.X0, line.Y0, line.X1, line.Y1, line.Style)
}

func (line GrobLine) String() string {
	return fmt.Sprintf("Line(%.1f,%.1f -- %.1f,%.1f | %.1f %s)",
		line.X0, line.Y0, line.X1, line.Y1, line.Style.Width, Hex(line.Style.Stroke))
}

// -------------------------------------------------------------------------
// Grob Rect

// GrobRect is an axis parallel rectangle with top left corner X,Y.
type GrobRect struct {
	X, Y, W, H float64
	Style      Style
}

func (rect GrobRect) Draw(t Target) {
	t.Rect(rect.X, rect.Y, rect.W, rect.H, rect.Style)
}

func (rect GrobRect) String() string {
	return fmt.Sprintf("Rect(%.1f,%.1f %.1fx%.1f | fill %s)",
		rect.X, rect.Y, rect.W, rect.H, Hex(rect.Style.Fill))
}

// -------------------------------------------------------------------------
// Grob Path

// PathOp is the kind of a path segment.
type PathOp int

const (
	MoveTo PathOp = iota // one point
	LineTo               // one point
	CubeTo               // two control points and the end point
	ClosePath            // no points
)

// PathSeg is one segment of a GrobPath.
type PathSeg struct {
	Op  PathOp
	Pts []Point
}

type GrobPath struct {
	Segs  []PathSeg
	Style Style
}

// Polyline returns a path connecting pts by straight lines.
func Polyline(pts []Point, style Style) GrobPath {
	path := GrobPath{Style: style}
	for i, p := range pts {
		op := LineTo
		if i == 0 {
			op = MoveTo
		}
		path.Segs = append(path.Segs, PathSeg{Op: op, Pts: []Point{p}})
	}
	return path
}

func (path GrobPath) Draw(t Target) {
	if len(path.Segs) == 0 {
		return
	}
	t.Path(path.Segs, path.Style)
}

// SVG returns the path in SVG path data syntax.
func (path GrobPath) SVG() string {
	var b strings.Builder
	for _, s := range path.Segs {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case MoveTo:
			fmt.Fprintf(&b, "M%.2f,%.2f", s.Pts[0].X, s.Pts[0].Y)
		case LineTo:
			fmt.Fprintf(&b, "L%.2f,%.2f", s.Pts[0].X, s.Pts[0].Y)
		case CubeTo:
			fmt.Fprintf(&b, "C%.2f,%.2f,%.2f,%.2f,%.2f,%.2f",
				s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y, s.Pts[2].X, s.Pts[2].Y)
		case ClosePath:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func (path GrobPath) String() string {
	return fmt.Sprintf("Path(%d segments | %.1f %s)",
		len(path.Segs), path.Style.Width, Hex(path.Style.Stroke))
}

// -------------------------------------------------------------------------
// Grob Text

// Anchor is the horizontal alignment of text relative to its position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// TextStyle controls rendering of a GrobText.
type TextStyle struct {
	Size   float64
	Color  color.Color
	Anchor Anchor
	Angle  float64 // rotation in degrees, clockwise
}

type GrobText struct {
	X, Y  float64
	Text  string
	Style TextStyle
}

func (text GrobText) Draw(t Target) {
	t.Text(text.X, text.Y, text.Text, text.Style)
}

func (text GrobText) String() string {
	return fmt.Sprintf("Text(%.1f,%.1f %q)", text.X, text.Y, text.Text)
}
