// Package metrics turns loaded simulator tables into the quantities the
// charts plot.
//
// # Runs
//
// A run trace (step_count, labeled_count, avg_phase) is normalized by a
// caller-supplied population size:
//
//	run, err := metrics.LoadRun("run.csv", 256, nil)
//	// run.NormalizedStep[i] == float64(run.Steps[i]) / (256 * 256)
//
// # Sweeps
//
// A sweep (n, step_count, labeled_count) carries the population size per
// row. Each row gets a normalized step, a labeled fraction, and a rank
// label:
//
//	sweep, err := metrics.LoadSweep("geom.csv", nil)
//	ns, labels := sweep.Groups()
//	box := sweep.Select(ns[0], labels[0])
//
// Only the fractions 1/2, 3/4, 7/8 and 15/16 are valid. Any other fraction
// fails the sweep with a *FractionError, which matches ErrInvariantViolation:
//
//	if errors.Is(err, metrics.ErrInvariantViolation) { ... }
package metrics
