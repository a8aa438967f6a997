package plot

import (
	"fmt"
	"image/color"
	"log/slog"
)

// Margin is the space between the outer border of a plot and its panel.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Plot is a finished chart: a canvas size and an ordered list of
// layers, each a list of grobs.
type Plot struct {
	Title         string
	Width, Height float64

	// Background fills the whole canvas if non-nil.
	Background color.Color

	// Layers are drawn in order; later layers paint over earlier ones.
	Layers []*Layer

	// Logger receives debug output during rendering. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// Layer is a named group of grobs, e.g. "boxes" or "axis y".
type Layer struct {
	Name  string
	Grobs []Grob
}

// Target is the surface a plot is rendered onto. Implementations
// live in package render; Recorder is a Target for tests.
type Target interface {
	// Size returns the canvas size in pixel.
	Size() (width, height float64)

	Line(x0, y0, x1, y1 float64, style Style)
	Rect(x, y, w, h float64, style Style)
	Path(segs []PathSeg, style Style)
	Point(x, y, size float64, shape PointShape, style Style)
	Text(x, y float64, text string, style TextStyle)
}

// Add appends a new layer with the given grobs and returns it.
func (p *Plot) Add(name string, grobs ...Grob) *Layer {
	layer := &Layer{Name: name, Grobs: grobs}
	p.Layers = append(p.Layers, layer)
	return layer
}

// Layer returns the first layer called name or nil.
func (p *Plot) Layer(name string) *Layer {
	for _, l := range p.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Render draws the background and all layers onto t.
func (p *Plot) Render(t Target) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if p.Background != nil {
		w, h := t.Size()
		t.Rect(0, 0, w, h, Style{Fill: p.Background})
	}
	for _, layer := range p.Layers {
		logger.Debug("render layer",
			slog.String("plot", p.Title),
			slog.String("layer", layer.Name),
			slog.Int("grobs", len(layer.Grobs)))
		for _, g := range layer.Grobs {
			g.Draw(t)
		}
	}
}

// -------------------------------------------------------------------------
// Recorder

// Recorder is a Target which remembers every draw call as a line of
// text. It is used to test plots without a real canvas.
type Recorder struct {
	W, H  float64
	Calls []string
}

var _ Target = (*Recorder)(nil)

func NewRecorder(w, h float64) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Line(x0, y0, x1, y1 float64, style Style) {
	r.Calls = append(r.Calls, fmt.Sprintf("line %.2f %.2f %.2f %.2f %s", x0, y0, x1, y1, Hex(style.Stroke)))
}

func (r *Recorder) Rect(x, y, w, h float64, style Style) {
	r.Calls = append(r.Calls, fmt.Sprintf("rect %.2f %.2f %.2f %.2f %s", x, y, w, h, Hex(style.Fill)))
}

func (r *Recorder) Path(segs []PathSeg, style Style) {
	r.Calls = append(r.Calls, fmt.Sprintf("path %s %s", GrobPath{Segs: segs}.SVG(), Hex(style.Stroke)))
}

func (r *Recorder) Point(x, y, size float64, shape PointShape, style Style) {
	r.Calls = append(r.Calls, fmt.Sprintf("point %.2f %.2f %.2f %d", x, y, size, shape))
}

func (r *Recorder) Text(x, y float64, text string, style TextStyle) {
	r.Calls = append(r.Calls, fmt.Sprintf("text %.2f %.2f %q", x, y, text))
}
