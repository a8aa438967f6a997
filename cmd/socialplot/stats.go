package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	plot "github.com/vdobler/socialplot"
	"github.com/vdobler/socialplot/stat"
)

func (a *app) newStatsCmd() *cobra.Command {
	var (
		by, value, onInvalid string
		coef                 float64
		where                []string
	)
	cmd := &cobra.Command{
		Use:   "stats <source.csv|url|->",
		Short: "Print the five number summary of a value per group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := plot.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, w := range where {
				field, val, ok := strings.Cut(w, "=")
				if !ok {
					return fmt.Errorf("--where %q: want field=value", w)
				}
				if df, err = df.Filter(field, val); err != nil {
					return err
				}
			}
			df, err = plot.Normalize(df, plot.ParseInvalidPolicy(onInvalid), value)
			if err != nil {
				return err
			}
			if d := df.Dropped(); d > 0 {
				a.logger.Warn("dropped records with invalid numbers",
					slog.String("field", value), slog.Int("dropped", d))
			}
			boxes, err := stat.BoxPlot(df, value, stat.BoxOptions{Coef: coef}, by)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "%s\tn\tmin\tq1\tmedian\tq3\tmax\tmean\toutliers\t\n", by)
			means, err := stat.Means(df, value, by)
			if err != nil {
				return err
			}
			for _, b := range boxes {
				m, _ := stat.Lookup(means, b.Key...)
				fmt.Fprintf(tw, "%s\t%d\t%g\t%g\t%g\t%g\t%g\t%.2f\t%d\t\n",
					b.Key, b.N, b.Min, b.Q1, b.Median, b.Q3, b.Max, m.Value, len(b.Outliers))
			}
			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&by, "by", "Platform", "grouping field")
	f.StringVar(&value, "value", "Likes", "numeric field")
	f.StringVar(&onInvalid, "on-invalid", "fail", "fail or drop records with invalid numbers")
	f.Float64Var(&coef, "coef", 1.5, "whisker length in IQRs, 0 for min/max")
	f.StringArrayVar(&where, "where", nil, "only records with field=value; repeatable")
	return cmd
}
