// Package config loads the optional rankplot configuration file.
//
// Top-level keys:
//   - log_level: debug | info | warn | error (default info)
//   - format: pgf | tex | svg | pdf | eps | png; empty derives the format
//     from each output file's extension
//   - input.comment: a single character marking comment lines in CSV
//     input (default none)
//   - figure: width_in, height_in, font_size_pt (default 3.5 x 1.94 in, 9pt)
//   - run.output, ranktimes.output: chart file names (default run_256.pgf
//     and ranktimes.pgf)
//   - boxplot.box_width_pt: width of one box (default 5)
//
// Load(path) reads the YAML file, applies defaults, then validates sizes,
// names and enums. Default() returns the same defaults without a file.
package config
