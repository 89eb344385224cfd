package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/rankplot/metrics"
	"github.com/sartorproj/rankplot/render"
)

func newRankTimesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranktimes <csv_path>",
		Short: "Box plot of convergence times per population size",
		Long: `Plot a population-size sweep as a grouped box plot.

The CSV has one n,step_count,labeled_count row per converged run. Each
run is bucketed by n and by its ranked fraction labeled_count / n, which
must be exactly 1/2, 3/4, 7/8 or 15/16; any other fraction is an error.

Examples:
  rankplot ranktimes geom.csv                 # writes ranktimes.pgf
  rankplot ranktimes geom.csv -o times.pdf`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("ranktimes takes <csv_path>, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := settings(cmd)
			if err != nil {
				return err
			}

			sweep, err := metrics.LoadSweep(args[0], cfg.TableOptions())
			if err != nil {
				return err
			}
			ns, labels := sweep.Groups()
			logger.Debug("loaded sweep", "path", args[0], "rows", sweep.Len(), "sizes", len(ns), "labels", len(labels))

			out := outputPath(cmd, cfg.RankTimes.Output)
			opts, err := cfg.RenderOptions(out)
			if err != nil {
				return err
			}
			if err := render.SaveSweep(out, sweep, opts); err != nil {
				return fmt.Errorf("render %s: %w", out, err)
			}
			logger.Info("wrote chart", "path", out, "rows", sweep.Len(), "format", opts.Format)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default: ranktimes.output from config, ranktimes.pgf)")
	return cmd
}
