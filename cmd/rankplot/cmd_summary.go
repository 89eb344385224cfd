package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/rankplot/metrics"
	"github.com/sartorproj/rankplot/stats"
)

// groupSummary is one (n, rank label) box of the sweep chart in numbers.
type groupSummary struct {
	N        int64     `json:"n"`
	Label    string    `json:"label"`
	Count    int       `json:"count"`
	Min      float64   `json:"min"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Max      float64   `json:"max"`
	Outliers []float64 `json:"outliers"`
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <csv_path>",
		Short: "Print the box plot statistics of a sweep",
		Long: `Print, for every population size and ranked fraction, the quartiles
of the normalized convergence time that the ranktimes box plot draws.

Examples:
  rankplot summary geom.csv          # aligned table
  rankplot summary geom.csv --json   # JSON array`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("summary takes <csv_path>, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := settings(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")

			sweep, err := metrics.LoadSweep(args[0], cfg.TableOptions())
			if err != nil {
				return err
			}
			groups := summarize(sweep)
			logger.Debug("summarized sweep", "path", args[0], "rows", sweep.Len(), "groups", len(groups))

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(groups)
			}

			if len(groups) == 0 {
				fmt.Fprintln(out, "No runs found.")
				return nil
			}
			fmt.Fprintf(out, "%-8s %-6s %5s %9s %9s %9s %9s %9s %8s\n",
				"n", "rank", "runs", "min", "q1", "median", "q3", "max", "outliers")
			for _, g := range groups {
				fmt.Fprintf(out, "%-8d %-6s %5d %9.4f %9.4f %9.4f %9.4f %9.4f %8d\n",
					g.N, g.Label, g.Count, g.Min, g.Q1, g.Median, g.Q3, g.Max, len(g.Outliers))
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

// summarize returns the statistics of every non-empty group, ordered by n
// and then by rank label.
func summarize(s *metrics.Sweep) []groupSummary {
	ns, labels := s.Groups()
	groups := make([]groupSummary, 0, len(ns)*len(labels))
	for _, n := range ns {
		for _, label := range labels {
			values := s.Select(n, label)
			if len(values) == 0 {
				continue
			}
			sum := stats.Summarize(values)
			outliers := sum.Outliers
			if outliers == nil {
				outliers = []float64{}
			}
			groups = append(groups, groupSummary{
				N:        n,
				Label:    label,
				Count:    sum.Count,
				Min:      sum.Min,
				Q1:       sum.Q1,
				Median:   sum.Median,
				Q3:       sum.Q3,
				Max:      sum.Max,
				Outliers: outliers,
			})
		}
	}
	return groups
}
