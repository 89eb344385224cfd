// Package render draws run traces and sweeps as publication figures.
//
// Two charts are provided, both built on gonum/plot:
//
//   - RunChart: labeled agents (left axis, solid) and average phase (right
//     axis, dashed) over normalized interactions.
//   - SweepChart: a box per (n, rank label) group of normalized
//     convergence times, boxes of one n side by side.
//
// The default output is PGF, a bare pgfpicture that LaTeX documents can
// \input directly:
//
//	err := render.SaveRun("run_256.pgf", run, render.DefaultOptions())
//	err = render.SaveSweep("ranktimes.pgf", sweep, render.DefaultOptions())
//
// TeX, SVG, PDF, EPS and PNG are also available through Options.Format.
// PGF, TeX and SVG output is byte-for-byte reproducible for the same input.
//
// WritePreview renders the run chart with go-chart instead, as PNG or SVG,
// for a quick look without a LaTeX toolchain.
package render
