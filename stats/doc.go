// Package stats provides order statistics for summarizing convergence times.
//
// The box plot of a sweep draws, for every (n, rank label) group, the
// quartiles, the median, Tukey whiskers and the outliers. This package
// computes the same numbers so they can be printed or checked:
//
//	s := stats.Summarize(values)
//	fmt.Printf("median=%.3f iqr=%.3f outliers=%d\n", s.Median, s.IQR(), len(s.Outliers))
//
// Quantiles interpolate linearly between closest ranks:
//
//	q := stats.Quantile(sorted, 0.25)
package stats
