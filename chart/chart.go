// Package chart wires loading, normalization, aggregation, scales and
// geoms into the three chart pipelines: Box, Bar and Line.
//
// A pipeline either returns a complete plot or an error; nothing is
// rendered partially.
package chart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/geom"
)

// ErrEmpty is returned if no records are left to plot.
var ErrEmpty = errors.New("no data to plot")

// Error attributes a pipeline failure to a chart.
type Error struct {
	Chart string
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("chart %s: %v", e.Chart, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Common holds the settings shared by all charts.
type Common struct {
	Title          string
	XLabel, YLabel string

	Width, Height float64
	Margin        plot.Margin

	// Background is a color like "pink" or "#ffc0cb"; empty means none.
	Background string

	// OnInvalid decides about records with a non numeric value.
	OnInvalid plot.InvalidPolicy

	Logger *slog.Logger
}

func (c Common) logger(kind string) *slog.Logger {
	l := c.Logger
	if l == nil {
		l = slog.Default()
	}
	return l.With(slog.String("chart", kind), slog.String("run_id", uuid.NewString()))
}

// panel returns the pixel rectangle inside the margins.
func (c Common) panel() (left, top, right, bottom float64) {
	return c.Margin.Left, c.Margin.Top, c.Width - c.Margin.Right, c.Height - c.Margin.Bottom
}

func (c Common) newPlot(logger *slog.Logger) *plot.Plot {
	return &plot.Plot{
		Title:      c.Title,
		Width:      c.Width,
		Height:     c.Height,
		Background: plot.String2Color(c.Background),
		Logger:     logger,
	}
}

func (c Common) labels() geom.Labels {
	l := geom.Labels{Title: c.Title, X: c.XLabel, Y: c.YLabel, Width: c.Width, Height: c.Height}
	l.Panel.Left, l.Panel.Top, l.Panel.Right, l.Panel.Bottom = c.panel()
	return l
}

// prepare loads source and normalizes value after checking that all
// fields are present.
func prepare(ctx context.Context, logger *slog.Logger, source string, policy plot.InvalidPolicy, value string, fields ...string) (*plot.DataFrame, error) {
	df, err := plot.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded data", slog.String("source", source), slog.Int("records", df.N))
	return normalize(logger, df, policy, value, fields...)
}

func normalize(logger *slog.Logger, df *plot.DataFrame, policy plot.InvalidPolicy, value string, fields ...string) (*plot.DataFrame, error) {
	if err := df.Require(append(fields, value)...); err != nil {
		return nil, err
	}
	ndf, err := plot.Normalize(df, policy, value)
	if err != nil {
		return nil, err
	}
	if d := ndf.Dropped(); d > 0 {
		logger.Warn("dropped records with invalid numbers",
			slog.String("field", value), slog.Int("dropped", d))
	}
	if ndf.N == 0 {
		return nil, ErrEmpty
	}
	return ndf, nil
}
