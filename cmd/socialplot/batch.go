package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) newRenderCmd() *cobra.Command {
	var failFast bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render all charts listed in the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.cfg.Charts) == 0 {
				return errors.New("no charts configured, use --config")
			}
			return a.renderAll(cmd.Context(), failFast || a.cfg.Render.FailFast)
		},
	}
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first failing chart")
	return cmd
}

// renderAll renders the configured charts concurrently. Without
// failFast every chart is attempted and all errors are reported; with
// failFast the first error cancels the charts not yet started.
func (a *app) renderAll(ctx context.Context, failFast bool) error {
	g, gctx := errgroup.WithContext(ctx)
	if n := a.cfg.Render.Concurrency; n > 0 {
		g.SetLimit(n)
	}

	errs := make([]error, len(a.cfg.Charts))
	for i, cc := range a.cfg.Charts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return err
			}
			err := a.renderChart(gctx, cc)
			if err != nil {
				name := cc.Name
				if name == "" {
					name = cc.Output
				}
				err = fmt.Errorf("%s: %w", name, err)
				a.logger.Error("chart failed", slog.String("chart", name), slog.Any("error", err))
			}
			errs[i] = err
			if failFast {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}
