package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/chart"
	"github.com/vdobler/socialplot/geom"
	"github.com/vdobler/socialplot/internal/config"
	"github.com/vdobler/socialplot/render"
)

func (a *app) newChartCmd(kind, short string) *cobra.Command {
	var (
		cc         config.ChartConfig
		background string
	)
	cmd := &cobra.Command{
		Use:   kind + " <source.csv|url|->",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc.Kind, cc.Source = kind, args[0]
			if cc.Output == "" {
				cc.Output = kind + ".svg"
			}
			if cmd.Flags().Changed("background") {
				cc.Background = &background
			}
			if err := config.ValidateChart(cc); err != nil {
				return err
			}
			return a.renderChart(cmd.Context(), cc)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cc.Output, "output", "o", "", "output file (default "+kind+".svg)")
	f.StringVar(&cc.Format, "format", "", "svg, vgsvg, png or pdf (default from file extension)")
	f.StringVar(&cc.OnInvalid, "on-invalid", "fail", "fail or drop records with invalid numbers")
	f.StringVar(&cc.Title, "title", "", "chart title")
	f.Float64Var(&cc.Width, "width", 0, "canvas width in pixel")
	f.Float64Var(&cc.Height, "height", 0, "canvas height in pixel")
	f.StringVar(&background, "background", "", "background color, none for transparent")
	if kind == "line" {
		f.StringVar(&cc.Curve, "curve", "natural", "linear or natural")
		f.StringVar(&cc.LineType, "line-type", "", "solid, dashed or dotted")
		f.StringVar(&cc.Marker, "marker", "", "mark the data points: circle, square, solid-circle or solid-square")
		f.Float64SliceVar(&cc.YDomain, "y-domain", nil, "fixed y domain min,max")
	}
	return cmd
}

// renderChart builds the chart described by cc and writes it.
func (a *app) renderChart(ctx context.Context, cc config.ChartConfig) error {
	logger := a.logger.With(slog.String("output", cc.Output))
	p, err := buildChart(ctx, cc, logger)
	if err != nil {
		return err
	}
	format := render.Format(cc.Format)
	if format == "" {
		format = render.Format(a.cfg.Render.Format)
	}
	if err := render.WriteFile(p, cc.Output, format); err != nil {
		return fmt.Errorf("write %s: %w", cc.Output, err)
	}
	logger.Info("chart written", slog.String("kind", cc.Kind))
	return nil
}

func buildChart(ctx context.Context, cc config.ChartConfig, logger *slog.Logger) (*plot.Plot, error) {
	switch cc.Kind {
	case "box":
		c := chart.DefaultBoxConfig()
		applyCommon(&c.Common, cc, logger)
		return chart.Box(ctx, cc.Source, c)
	case "bar":
		c := chart.DefaultBarConfig()
		applyCommon(&c.Common, cc, logger)
		return chart.Bar(ctx, cc.Source, c)
	case "line":
		c := chart.DefaultLineConfig()
		applyCommon(&c.Common, cc, logger)
		if cc.Curve != "" {
			c.Curve = geom.ParseCurve(cc.Curve)
		}
		c.LineType = plot.String2LineType(cc.LineType)
		c.Marker = plot.String2PointShape(cc.Marker)
		if len(cc.YDomain) == 2 {
			c.Domain = &[2]float64{cc.YDomain[0], cc.YDomain[1]}
		}
		return chart.Line(ctx, cc.Source, c)
	}
	return nil, fmt.Errorf("unknown chart kind %q", cc.Kind)
}

func applyCommon(c *chart.Common, cc config.ChartConfig, logger *slog.Logger) {
	c.Logger = logger
	c.OnInvalid = plot.ParseInvalidPolicy(cc.OnInvalid)
	if cc.Title != "" {
		c.Title = cc.Title
	}
	if cc.Width > 0 {
		c.Width = cc.Width
	}
	if cc.Height > 0 {
		c.Height = cc.Height
	}
	if cc.Background != nil {
		c.Background = *cc.Background
	}
}
