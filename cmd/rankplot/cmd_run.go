package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sartorproj/rankplot/metrics"
	"github.com/sartorproj/rankplot/render"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <csv_path> <n>",
		Short: "Plot labeled agents and average phase of one run",
		Long: `Plot a single run trace as a dual-axis chart.

The CSV has one step_count,labeled_count,avg_phase row per sample. The
x axis is step_count / n², the left axis the number of labeled agents and
the right axis the average phase.

Examples:
  rankplot run run.csv 256                    # writes run_256.pgf
  rankplot run run.csv 256 -o run.svg         # SVG instead
  rankplot run run.csv 256 --preview run.png  # also a quick PNG preview`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageErrorf("run takes <csv_path> <n>, got %d arguments", len(args))
			}
			if _, err := parsePopulation(args[1]); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := settings(cmd)
			if err != nil {
				return err
			}
			n, _ := parsePopulation(args[1])

			run, err := metrics.LoadRun(args[0], n, cfg.TableOptions())
			if err != nil {
				return err
			}
			logger.Debug("loaded run", "path", args[0], "rows", run.Len(), "n", n)

			out := outputPath(cmd, cfg.Run.Output)
			opts, err := cfg.RenderOptions(out)
			if err != nil {
				return err
			}
			if err := render.SaveRun(out, run, opts); err != nil {
				return fmt.Errorf("render %s: %w", out, err)
			}
			logger.Info("wrote chart", "path", out, "rows", run.Len(), "format", opts.Format)

			preview, _ := cmd.Flags().GetString("preview")
			if preview == "" {
				return nil
			}
			if err := render.SavePreview(preview, run); err != nil {
				if errors.Is(err, render.ErrNoData) {
					logger.Warn("skipped preview of empty run", "path", preview)
					return nil
				}
				return fmt.Errorf("preview %s: %w", preview, err)
			}
			logger.Info("wrote preview", "path", preview)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default: run.output from config, run_256.pgf)")
	cmd.Flags().String("preview", "", "Also write a PNG or SVG preview to this file")
	return cmd
}

// parsePopulation parses the n argument; it must be a positive integer.
func parsePopulation(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, usageErrorf("n must be a positive integer, got %q", s)
	}
	return n, nil
}
