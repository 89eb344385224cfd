// Package rankplot renders the CSV results of the population-protocol
// ranking simulation as figures for LaTeX documents.
//
// The simulation writes two kinds of header-less CSV files. A run trace
// records, for one population of n agents, how many agents hold a rank
// label and the average phase as the interaction count grows. A sweep
// records, for many converged runs over several population sizes, how
// long each run took to label a given fraction of its agents.
//
// # Features
//
//   - Dual-axis run chart: labeled agents and average phase over n² steps
//   - Grouped box plot of convergence time by population size and rank
//   - PGF output for \input in LaTeX, plus TeX, SVG, PDF, EPS and PNG
//   - Box plot statistics as a text table or JSON
//   - YAML configuration of figure size, fonts and output paths
//
// # Quick Start
//
// From the command line:
//
//	rankplot run run.csv 256        # writes run_256.pgf
//	rankplot ranktimes geom.csv     # writes ranktimes.pgf
//	rankplot summary geom.csv
//
// From Go:
//
//	run, _ := metrics.LoadRun("run.csv", 256, nil)
//	_ = render.SaveRun("run_256.pgf", run, render.DefaultOptions())
//
//	sweep, _ := metrics.LoadSweep("geom.csv", nil)
//	_ = render.SaveSweep("ranktimes.pgf", sweep, render.DefaultOptions())
//
// # Packages
//
// The module is organized into the following packages:
//
//   - table: Typed, header-less CSV tables
//   - metrics: Run and sweep derivations (normalized steps, rank labels)
//   - stats: Box plot statistics (quartiles, whiskers, outliers)
//   - render: Chart layout and output formats
//   - config: YAML configuration
//   - logging: Structured logger setup
//   - cmd/rankplot: Command-line interface
package rankplot
