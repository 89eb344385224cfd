// Command rankplot renders the CSV output of the ranking simulation as
// LaTeX-ready figures.
//
//	rankplot run run.csv 256      # dual-axis run trace -> run_256.pgf
//	rankplot ranktimes geom.csv   # grouped box plot    -> ranktimes.pgf
//	rankplot summary geom.csv     # numbers behind the boxes
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sartorproj/rankplot/config"
	"github.com/sartorproj/rankplot/logging"
	"github.com/sartorproj/rankplot/render"
)

var version = "0.1.0-dev"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rankplot: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rankplot",
		Short: "Plot ranking simulation results",
		Long: `rankplot turns the CSV files written by the ranking simulation into
figures for LaTeX documents.

Input files have no header row. Run traces carry
step_count,labeled_count,avg_phase per line; sweeps carry
n,step_count,labeled_count per line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("format", "", "Output format: pgf, tex, svg, pdf, eps, png (default: from file extension)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newRankTimesCmd(),
		newSummaryCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rankplot version %s\n", version)
		},
	}
}

// usageError marks missing or malformed command-line arguments.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, a ...any) error {
	return &usageError{err: fmt.Errorf(format, a...)}
}

// exitCode maps an error to the process exit status: 2 for usage errors,
// 1 for everything else.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	return exitError
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return usageErrorf("%s takes no arguments, got %d", cmd.Name(), len(args))
	}
	return nil
}

// settings resolves the config file, flag overrides and logger for one
// command invocation.
func settings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, nil, err
		}
	}

	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		if err := logging.CheckLevel(f.Value.String()); err != nil {
			return nil, nil, &usageError{err: err}
		}
		cfg.LogLevel = strings.ToLower(f.Value.String())
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		if _, err := render.ParseFormat(f.Value.String()); err != nil {
			return nil, nil, &usageError{err: err}
		}
		cfg.Format = f.Value.String()
	}

	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return cfg, logger, nil
}

// outputPath returns the --output flag if set, else fallback.
func outputPath(cmd *cobra.Command, fallback string) string {
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return out
	}
	return fallback
}
