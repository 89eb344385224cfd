package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sartorproj/rankplot/metrics"
	"github.com/sartorproj/rankplot/table"
)

// Fixed scales of the run chart. Both ranges leave 5% headroom above the
// top tick.
const (
	LabeledMax = 250 * 1.05
	PhaseMax   = 10 * 1.05
)

var (
	labeledTicks = []float64{0, 50, 100, 150, 200, 250}
	phaseTicks   = []float64{0, 2, 4, 6, 8}
)

// RunChart is the dual-axis chart of one run: labeled agents on the left
// axis, average phase on the right, normalized interactions along x.
type RunChart struct {
	Plot  *plot.Plot
	right *twinAxis
}

// NewRunChart lays out the chart for run. An empty run yields axes only.
func NewRunChart(run *metrics.Run, opts Options) (*RunChart, error) {
	opts = opts.withDefaults()

	p := newPlot(opts)
	p.X.Label.Text = normalizedStepLabel(opts.Format)
	p.Y.Label.Text = labelLabeled
	p.Y.Tick.Marker = ticks(labeledTicks...)
	p.Y.Min, p.Y.Max = 0, LabeledMax

	right := newTwinAxis(&p.Y, 0, PhaseMax)
	right.Label = labelPhase
	right.Ticks = ticks(phaseTicks...)
	right.LabelStyle.Color = TabRed
	right.TickLabel.Color = TabRed

	p.Y.Label.TextStyle.Color = TabBlue
	p.Y.Tick.Label.Color = TabBlue

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	if run.Len() > 0 {
		phase, err := plotter.NewLine(right.hostXYs(run.NormalizedStep, run.Phase))
		if err != nil {
			return nil, fmt.Errorf("phase series: %w", err)
		}
		phase.LineStyle.Color = TabRed
		phase.LineStyle.Width = vg.Points(1)
		phase.LineStyle.Dashes = []vg.Length{vg.Points(3.7), vg.Points(1.6)}

		labeled, err := plotter.NewLine(xys(run.NormalizedStep, run.LabeledFloats()))
		if err != nil {
			return nil, fmt.Errorf("labeled series: %w", err)
		}
		labeled.LineStyle.Color = TabBlue
		labeled.LineStyle.Width = vg.Points(1)

		p.Add(phase, labeled)
	}

	// Add widens the ranges to the data; the scales are fixed.
	xmax := table.Max(run.NormalizedStep)
	if !(xmax > 0) {
		xmax = 1
	}
	p.X.Min, p.X.Max = 0, xmax
	p.Y.Min, p.Y.Max = 0, LabeledMax

	return &RunChart{Plot: p, right: right}, nil
}

// Draw draws the chart, reserving room on the right for the phase axis.
func (rc *RunChart) Draw(c draw.Canvas) {
	c = inset(c)
	inner := draw.Crop(c, 0, -rc.right.size(), 0, 0)
	rc.Plot.Draw(inner)
	rc.right.draw(rc.Plot.DataCanvas(inner))
}

// WriteRun renders the run chart to w in opts.Format.
func WriteRun(w io.Writer, run *metrics.Run, opts Options) error {
	opts = opts.withDefaults()
	rc, err := NewRunChart(run, opts)
	if err != nil {
		return err
	}
	return write(w, rc, opts)
}

// SaveRun renders the run chart into the file at path, replacing it.
func SaveRun(path string, run *metrics.Run, opts Options) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteRun(w, run, opts)
	})
}

type drawer interface {
	Draw(draw.Canvas)
}

func write(w io.Writer, d drawer, opts Options) error {
	cv, err := opts.Format.newCanvas(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	d.Draw(draw.New(cv))
	if _, err := cv.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", opts.Format, err)
	}
	return nil
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}
