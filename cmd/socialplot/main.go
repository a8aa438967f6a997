// Command socialplot draws box plots, grouped bar charts and line
// charts from CSV files of social media posts.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vdobler/socialplot/internal/config"
	"github.com/vdobler/socialplot/internal/logging"
)

type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "socialplot",
		Short: "Draw charts from social media CSV data",
		Long: `socialplot aggregates CSV data (e.g. Platform, PostType, Date, Likes)
and draws box plots, grouped bar charts and line charts as SVG, PNG or PDF.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.closer != nil {
				a.closer.Close()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		a.newChartCmd("box", "Box plot of Likes per Platform"),
		a.newChartCmd("bar", "Average Likes per PostType and Platform"),
		a.newChartCmd("line", "Average Likes per Date"),
		a.newRenderCmd(),
		a.newStatsCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level %q: %w", a.logLevel, err)
		}
	}
	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.closer = cfg, logger, closer
	return nil
}
