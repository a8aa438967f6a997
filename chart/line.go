package chart

import (
	"context"
	"log/slog"

	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/geom"
	"github.com/vdobler/socialplot/stat"
)

// LineConfig configures a line chart of the mean Value per Category,
// categories in order of first occurrence (e.g. dates).
type LineConfig struct {
	Common

	Category string
	Value    string

	// Domain fixes the y domain; nil uses the nice data range.
	Domain *[2]float64

	Padding    float64
	Curve      geom.Curve
	LabelAngle float64

	// LineType overrides the solid line of the theme.
	LineType plot.LineType

	// Marker draws a point of this shape at each mean; BlankPoint draws
	// none.
	Marker plot.PointShape
}

// DefaultLineConfig plots average likes per date on the fixed domain
// [400, 560].
func DefaultLineConfig() LineConfig {
	return LineConfig{
		Common: Common{
			Title:      "Line Plot for Average Number of Likes per Date",
			XLabel:     "Date",
			YLabel:     "Average Number of Likes",
			Width:      600,
			Height:     500,
			Margin:     plot.Margin{Top: 50, Right: 50, Bottom: 50, Left: 50},
			Background: "thistle",
		},
		Category:   "Date",
		Value:      "Likes",
		Domain:     &[2]float64{400, 560},
		Padding:    0.5,
		Curve:      geom.Natural,
		LabelAngle: -20,
	}
}

// Line loads source and draws the line chart.
func Line(ctx context.Context, source string, cfg LineConfig) (*plot.Plot, error) {
	logger := cfg.logger("line")
	df, err := prepare(ctx, logger, source, cfg.OnInvalid, cfg.Value, cfg.Category)
	if err != nil {
		return nil, &Error{Chart: "line", Err: err}
	}
	return lineChart(logger, df, cfg)
}

// LineFrame draws the line chart of an already loaded data frame.
func LineFrame(df *plot.DataFrame, cfg LineConfig) (*plot.Plot, error) {
	logger := cfg.logger("line")
	ndf, err := normalize(logger, df, cfg.OnInvalid, cfg.Value, cfg.Category)
	if err != nil {
		return nil, &Error{Chart: "line", Err: err}
	}
	return lineChart(logger, ndf, cfg)
}

func lineChart(logger *slog.Logger, df *plot.DataFrame, cfg LineConfig) (*plot.Plot, error) {
	means, err := stat.Means(df, cfg.Value, cfg.Category)
	if err != nil {
		return nil, &Error{Chart: "line", Err: err}
	}

	left, top, right, bottom := cfg.panel()
	min, max := stat.Extent(means)
	ycfg := plot.ScaleConfig{
		Domain: [2]float64{min, max},
		Range:  [2]float64{bottom, top},
		Nice:   true,
	}
	if cfg.Domain != nil {
		ycfg.Domain, ycfg.Nice = *cfg.Domain, false
	}
	y := plot.NewLinearScale(ycfg)
	if cfg.Domain != nil && (min < y.Min || max > y.Max) {
		logger.Warn("data outside fixed domain",
			slog.Float64("min", min), slog.Float64("max", max),
			slog.Float64("domain_min", y.Min), slog.Float64("domain_max", y.Max))
	}
	x := plot.NewBandScale(plot.BandConfig{
		Domain:  df.Levels(cfg.Category),
		Range:   [2]float64{left, right},
		Padding: cfg.Padding,
	})

	line := geom.Line{X: x, Y: y, Curve: cfg.Curve}
	if cfg.LineType != plot.BlankLine {
		line.Style = plot.DefaultTheme.LineStyle
		line.Style.LineType = cfg.LineType
	}
	if cfg.Marker != plot.BlankPoint {
		line.Markers = &geom.Points{Shape: cfg.Marker}
	}

	p := cfg.newPlot(logger)
	p.Add("axis y", geom.Axis{Side: geom.Left, At: left}.Linear(y)...)
	p.Add("axis x", geom.Axis{Side: geom.Bottom, At: bottom, Text: plot.TextStyle{Angle: cfg.LabelAngle}}.Band(x)...)
	p.Add("labels", cfg.labels().Render()...)
	p.Add("line", line.Render(means)...)
	return p, nil
}
