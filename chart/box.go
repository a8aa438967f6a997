package chart

import (
	"context"
	"image/color"
	"log/slog"

	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/geom"
	"github.com/vdobler/socialplot/stat"
)

// BoxConfig configures a box plot of Value per Category.
type BoxConfig struct {
	Common

	Category string
	Value    string

	// Padding between the boxes as fraction of a band step.
	Padding float64

	// Coef is the whisker length in IQRs; 0 draws whiskers to min/max.
	Coef float64
}

// DefaultBoxConfig is the distribution of likes across platforms.
func DefaultBoxConfig() BoxConfig {
	return BoxConfig{
		Common: Common{
			Title:      "Box Plot for Likes Distributions across Platforms",
			XLabel:     "Platform",
			YLabel:     "Number of Likes",
			Width:      750,
			Height:     400,
			Margin:     plot.Margin{Top: 50, Right: 50, Bottom: 50, Left: 50},
			Background: "pink",
		},
		Category: "Platform",
		Value:    "Likes",
		Padding:  0.5,
	}
}

// Box loads source and draws the box plot.
func Box(ctx context.Context, source string, cfg BoxConfig) (*plot.Plot, error) {
	logger := cfg.logger("box")
	df, err := prepare(ctx, logger, source, cfg.OnInvalid, cfg.Value, cfg.Category)
	if err != nil {
		return nil, &Error{Chart: "box", Err: err}
	}
	return boxPlot(logger, df, cfg)
}

// BoxFrame draws the box plot of an already loaded data frame.
func BoxFrame(df *plot.DataFrame, cfg BoxConfig) (*plot.Plot, error) {
	logger := cfg.logger("box")
	ndf, err := normalize(logger, df, cfg.OnInvalid, cfg.Value, cfg.Category)
	if err != nil {
		return nil, &Error{Chart: "box", Err: err}
	}
	return boxPlot(logger, ndf, cfg)
}

func boxPlot(logger *slog.Logger, df *plot.DataFrame, cfg BoxConfig) (*plot.Plot, error) {
	boxes, err := stat.BoxPlot(df, cfg.Value, stat.BoxOptions{Coef: cfg.Coef}, cfg.Category)
	if err != nil {
		return nil, &Error{Chart: "box", Err: err}
	}

	left, top, right, bottom := cfg.panel()
	min, max, _, _ := df.MinMax(cfg.Value)
	y := plot.NewLinearScale(plot.ScaleConfig{
		Domain: [2]float64{min, max},
		Range:  [2]float64{bottom, top},
		Nice:   true,
	})
	x := plot.NewBandScale(plot.BandConfig{
		Domain:  df.Levels(cfg.Category),
		Range:   [2]float64{left, right},
		Padding: cfg.Padding,
	})
	logger.Debug("scales", slog.String("x", x.String()), slog.String("y", y.String()))

	p := cfg.newPlot(logger)
	p.Add("axis y", geom.Axis{Side: geom.Left, At: left}.Linear(y)...)
	p.Add("axis x", geom.Axis{Side: geom.Bottom, At: bottom}.Band(x)...)
	p.Add("labels", cfg.labels().Render()...)
	outlier := geom.Points{Style: plot.DefaultTheme.PointStyle.Stroked(plot.SetAlpha(color.Black, 0.6), 1)}
	p.Add("boxes", geom.Box{X: x, Y: y, Outlier: outlier}.Render(boxes)...)

	for _, b := range boxes {
		logger.Info("box",
			slog.String("group", b.Key.String()),
			slog.Int("n", b.N),
			slog.Float64("min", b.Min),
			slog.Float64("q1", b.Q1),
			slog.Float64("median", b.Median),
			slog.Float64("q3", b.Q3),
			slog.Float64("max", b.Max))
	}
	return p, nil
}
