package plot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// DefaultTickCount is the number of axis ticks a linear scale aims
// for when finding a nice domain and tick values.
const DefaultTickCount = 10

// -------------------------------------------------------------------------
// Linear Scale

// ScaleConfig describes a continuous position scale.
type ScaleConfig struct {
	// Domain is the data interval [min, max].
	Domain [2]float64

	// Range is the pixel interval Domain is mapped onto. Range[0] may be
	// larger than Range[1] for an inverted (y) axis.
	Range [2]float64

	// Nice extends Domain outward to round tick values.
	Nice bool

	// NiceStep forces the rounding step used by Nice. Zero chooses a
	// 1, 2 or 5 times power of ten step for TickCount ticks.
	NiceStep float64

	// TickCount is the approximate number of major ticks. Zero means
	// DefaultTickCount.
	TickCount int
}

// LinearScale maps a numeric domain linearly to a pixel range.
// A LinearScale is a value; copies are independent.
type LinearScale struct {
	Min, Max float64 // the (possibly nice) domain
	Lo, Hi   float64 // the range

	lin   scale.Linear
	count int
}

// NewLinearScale sets up the scale described by cfg. A degenerate or
// reversed domain is repaired: min > max are swapped and min == max is
// widened by one on each side.
func NewLinearScale(cfg ScaleConfig) LinearScale {
	min, max := cfg.Domain[0], cfg.Domain[1]
	if min > max {
		min, max = max, min
	}
	if min == max {
		min -= 1
		max += 1
	}
	s := LinearScale{
		Lo:    cfg.Range[0],
		Hi:    cfg.Range[1],
		count: cfg.TickCount,
	}
	if s.count <= 0 {
		s.count = DefaultTickCount
	}

	if cfg.Nice {
		if cfg.NiceStep > 0 {
			min, max = RoundDown(min, cfg.NiceStep), RoundUp(max, cfg.NiceStep)
		} else {
			min, max = NiceDomain(min, max, s.count)
		}
	}
	s.lin = scale.Linear{Min: min, Max: max}
	s.Min, s.Max = min, max
	return s
}

// Map converts the domain value x into a pixel coordinate.
func (s LinearScale) Map(x float64) float64 {
	return lerp(s.Lo, s.Hi, s.lin.Map(x))
}

// Ticks returns the multiples of TickIncrement(Min, Max, count) inside
// the domain.
func (s LinearScale) Ticks() []float64 {
	return TickValues(s.Min, s.Max, s.count)
}

func (s LinearScale) String() string {
	return fmt.Sprintf("linear [%g,%g] => [%g,%g]", s.Min, s.Max, s.Lo, s.Hi)
}

// -------------------------------------------------------------------------
// Band Scale

// BandConfig describes a discrete position scale.
type BandConfig struct {
	// Domain lists the categories; duplicates are ignored, first
	// occurrence decides the order.
	Domain []string

	// Range is the pixel interval to divide into bands.
	Range [2]float64

	// Padding sets both PaddingInner and PaddingOuter unless those are
	// given explicitly.
	Padding float64

	// PaddingInner is the fraction of a step left blank between bands,
	// PaddingOuter the blank space before the first and after the last
	// band in units of a step.
	PaddingInner, PaddingOuter float64

	// Align positions the bands inside the range if there is outer
	// space to distribute: 0 left, 1 right. Nil means 0.5.
	Align *float64
}

// BandScale divides a pixel range into equal bands, one per category.
type BandScale struct {
	levels    *StringPool
	start     float64
	step      float64
	bandwidth float64
	lo, hi    float64
}

// NewBandScale sets up the scale described by cfg.
func NewBandScale(cfg BandConfig) BandScale {
	inner, outer := cfg.PaddingInner, cfg.PaddingOuter
	if inner == 0 && outer == 0 {
		inner, outer = cfg.Padding, cfg.Padding
	}
	inner = math.Min(math.Max(inner, 0), 1)
	outer = math.Max(outer, 0)
	align := 0.5
	if cfg.Align != nil {
		align = math.Min(math.Max(*cfg.Align, 0), 1)
	}

	s := BandScale{
		levels: NewStringPoolFrom(cfg.Domain),
		lo:     cfg.Range[0],
		hi:     cfg.Range[1],
	}
	n := float64(s.levels.Len())
	start, stop := cfg.Range[0], cfg.Range[1]
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	s.step = (stop - start) / math.Max(1, n-inner+2*outer)
	start += (stop - start - s.step*(n-inner)) * align
	s.bandwidth = s.step * (1 - inner)
	if reverse {
		// Bands are laid out from the high end.
		s.start = start + s.step*(n-1)
		s.step = -s.step
	} else {
		s.start = start
	}
	return s
}

// Map returns the start coordinate of the band of x. ok is false if x
// is not in the domain.
func (s BandScale) Map(x string) (pos float64, ok bool) {
	i := s.levels.Find(x)
	if i < 0 {
		return math.NaN(), false
	}
	return s.start + float64(i)*s.step, true
}

// Center returns the middle of the band of x.
func (s BandScale) Center(x string) (float64, bool) {
	pos, ok := s.Map(x)
	return pos + s.bandwidth/2, ok
}

// Bandwidth is the width of each band.
func (s BandScale) Bandwidth() float64 { return s.bandwidth }

// Step is the distance between the starts of adjacent bands.
func (s BandScale) Step() float64 { return math.Abs(s.step) }

// Domain returns the categories in band order.
func (s BandScale) Domain() []string { return s.levels.Strings() }

// Range returns the pixel interval of s.
func (s BandScale) Range() (lo, hi float64) { return s.lo, s.hi }

// Inner constructs a band scale nested inside a single band of s.
// cfg.Range is replaced by [0, Bandwidth].
func (s BandScale) Inner(cfg BandConfig) BandScale {
	cfg.Range = [2]float64{0, s.bandwidth}
	return NewBandScale(cfg)
}

func (s BandScale) String() string {
	return fmt.Sprintf("band %d levels => [%g,%g] bandwidth %g", s.levels.Len(), s.lo, s.hi, s.bandwidth)
}

// -------------------------------------------------------------------------
// Ordinal Colors

// OrdinalColors assigns colors from a palette to categories, cycling
// the palette if there are more categories than colors.
type OrdinalColors struct {
	levels  *StringPool
	palette []color.Color
}

// Category10 is the default categorical palette.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// NewOrdinalColors builds the color scale for domain. An empty palette
// means Category10.
func NewOrdinalColors(domain []string, palette []string) OrdinalColors {
	if len(palette) == 0 {
		palette = Category10
	}
	oc := OrdinalColors{levels: NewStringPoolFrom(domain)}
	for _, p := range palette {
		oc.palette = append(oc.palette, String2Color(p))
	}
	return oc
}

// Unknown is the color of categories outside the domain.
var Unknown = color.RGBA{0x7f, 0x7f, 0x7f, 0xff}

// Color returns the color of category x.
func (oc OrdinalColors) Color(x string) color.Color {
	i := oc.levels.Find(x)
	if i < 0 {
		return Unknown
	}
	return oc.palette[i%len(oc.palette)]
}

// Domain returns the categories in order.
func (oc OrdinalColors) Domain() []string { return oc.levels.Strings() }
