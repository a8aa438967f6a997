package chart

import (
	"context"
	"log/slog"

	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/geom"
	"github.com/vdobler/socialplot/stat"
)

// BarConfig configures a grouped bar chart showing the mean Value per
// (Group, Category) combination.
type BarConfig struct {
	Common

	Group    string
	Category string
	Value    string

	// Padding between groups and between bars inside a group.
	Padding, InnerPadding float64

	// Palette colors the categories; empty means the theme palette.
	Palette []string

	Legend bool
}

// DefaultBarConfig shows average likes per post type and platform.
func DefaultBarConfig() BarConfig {
	return BarConfig{
		Common: Common{
			Title:  "Bar Chart for Average Number of Likes for each Post Type across Platforms",
			XLabel: "Platforms",
			YLabel: "Average Likes",
			Width:  730,
			Height: 500,
			Margin: plot.Margin{Top: 50, Right: 50, Bottom: 50, Left: 80},
		},
		Group:        "Platform",
		Category:     "PostType",
		Value:        "Likes",
		Padding:      0.2,
		InnerPadding: 0.05,
		Legend:       true,
	}
}

// Bar loads source and draws the grouped bar chart.
func Bar(ctx context.Context, source string, cfg BarConfig) (*plot.Plot, error) {
	logger := cfg.logger("bar")
	df, err := prepare(ctx, logger, source, cfg.OnInvalid, cfg.Value, cfg.Group, cfg.Category)
	if err != nil {
		return nil, &Error{Chart: "bar", Err: err}
	}
	return barChart(logger, df, cfg)
}

// BarFrame draws the grouped bar chart of an already loaded data frame.
func BarFrame(df *plot.DataFrame, cfg BarConfig) (*plot.Plot, error) {
	logger := cfg.logger("bar")
	ndf, err := normalize(logger, df, cfg.OnInvalid, cfg.Value, cfg.Group, cfg.Category)
	if err != nil {
		return nil, &Error{Chart: "bar", Err: err}
	}
	return barChart(logger, ndf, cfg)
}

func barChart(logger *slog.Logger, df *plot.DataFrame, cfg BarConfig) (*plot.Plot, error) {
	means, err := stat.Means(df, cfg.Value, cfg.Group, cfg.Category)
	if err != nil {
		return nil, &Error{Chart: "bar", Err: err}
	}

	left, top, right, bottom := cfg.panel()
	groups, categories := df.Levels(cfg.Group), df.Levels(cfg.Category)
	x0 := plot.NewBandScale(plot.BandConfig{
		Domain:  groups,
		Range:   [2]float64{left, right},
		Padding: cfg.Padding,
	})
	x1 := x0.Inner(plot.BandConfig{Domain: categories, Padding: cfg.InnerPadding})

	_, max := stat.Extent(means)
	y := plot.NewLinearScale(plot.ScaleConfig{
		Domain: [2]float64{0, max},
		Range:  [2]float64{bottom, top},
		Nice:   true,
	})
	palette := cfg.Palette
	if len(palette) == 0 {
		palette = plot.DefaultTheme.Palette
	}
	colors := plot.NewOrdinalColors(categories, palette)

	if missing := len(groups)*len(categories) - len(means); missing > 0 {
		logger.Info("combinations without data", slog.Int("missing", missing))
	}

	p := cfg.newPlot(logger)
	p.Add("axis y", geom.Axis{Side: geom.Left, At: left}.Linear(y)...)
	p.Add("axis x", geom.Axis{Side: geom.Bottom, At: bottom}.Band(x0)...)
	p.Add("labels", cfg.labels().Render()...)
	p.Add("bars", geom.Bars{X0: x0, X1: x1, Y: y, Colors: colors}.Render(means)...)
	if cfg.Legend {
		p.Add("legend", geom.Legend{X: right - 120, Y: top + cfg.Margin.Top}.Render(colors)...)
	}
	return p, nil
}
