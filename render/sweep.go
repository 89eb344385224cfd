package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sartorproj/rankplot/metrics"
	"github.com/sartorproj/rankplot/stats"
)

// SweepChart is the grouped box plot of a sweep: one x category per
// population size, one box per rank label inside each category.
type SweepChart struct {
	Plot *plot.Plot
	// Boxes holds the boxes by x category, then by rank label. A nil
	// entry marks a combination with no rows.
	Boxes [][]*plotter.BoxPlot
}

// NewSweepChart lays out the box plot for s. An empty sweep yields axes only.
func NewSweepChart(s *metrics.Sweep, opts Options) (*SweepChart, error) {
	opts = opts.withDefaults()

	p := newPlot(opts)
	p.X.Label.Text = labelN
	p.Y.Label.Text = normalizedStepLabel(opts.Format)
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	ns, labels := s.Groups()
	boxes := make([][]*plotter.BoxPlot, len(ns))
	for gi := range boxes {
		boxes[gi] = make([]*plotter.BoxPlot, len(labels))
	}

	if len(labels) > 0 {
		p.Legend.Add(legendRankTitle)
	}
	k := float64(len(labels))
	for li, label := range labels {
		fill := Palette[li%len(Palette)]
		offset := vg.Length(float64(li)-(k-1)/2) * opts.BoxWidth

		for gi, n := range ns {
			values := s.Select(n, label)
			if len(values) == 0 {
				continue
			}
			b, err := plotter.NewBoxPlot(opts.BoxWidth, float64(gi), plotter.Values(values))
			if err != nil {
				return nil, fmt.Errorf("box n=%d %s: %w", n, label, err)
			}
			applySummary(b, stats.Summarize(values))
			styleBox(b, fill, offset)
			boxes[gi][li] = b
			p.Add(b)
		}
		p.Legend.Add(label, swatch{fill: fill, line: boxLine()})
	}

	names := make([]string, len(ns))
	for i, n := range ns {
		names[i] = strconv.FormatInt(n, 10)
	}
	if len(names) > 0 {
		p.NominalX(names...)
	} else {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Max = 1
	}

	// The y axis always starts at zero, whatever Add made of it.
	p.Y.Min = 0

	return &SweepChart{Plot: p, Boxes: boxes}, nil
}

// Draw draws the chart inside a small margin.
func (sc *SweepChart) Draw(c draw.Canvas) {
	sc.Plot.Draw(inset(c))
}

// WriteSweep renders the sweep box plot to w in opts.Format.
func WriteSweep(w io.Writer, s *metrics.Sweep, opts Options) error {
	opts = opts.withDefaults()
	sc, err := NewSweepChart(s, opts)
	if err != nil {
		return err
	}
	return write(w, sc, opts)
}

// SaveSweep renders the sweep box plot into the file at path, replacing it.
func SaveSweep(path string, s *metrics.Sweep, opts Options) error {
	return saveFile(path, func(w io.Writer) error {
		return WriteSweep(w, s, opts)
	})
}

// applySummary replaces the statistics gonum derived for b with those of
// sum, so the drawn box uses linearly interpolated quartiles and agrees
// with the summary command.
func applySummary(b *plotter.BoxPlot, sum stats.Summary) {
	b.Median = sum.Median
	b.Quartile1 = sum.Q1
	b.Quartile3 = sum.Q3
	b.AdjLow = sum.AdjLow
	b.AdjHigh = sum.AdjHigh
	b.Min = sum.Min
	b.Max = sum.Max

	b.Outside = b.Outside[:0]
	for i, v := range b.Values {
		if v < sum.LowerFence || v > sum.UpperFence {
			b.Outside = append(b.Outside, i)
		}
	}
}

func boxLine() draw.LineStyle {
	return draw.LineStyle{Color: color.Gray{Y: 0x3f}, Width: vg.Points(0.5)}
}

func styleBox(b *plotter.BoxPlot, fill color.Color, offset vg.Length) {
	line := boxLine()
	b.Offset = offset
	b.FillColor = fill
	b.BoxStyle = line
	b.MedianStyle = line
	b.WhiskerStyle = line
	b.CapWidth = b.Width / 2
	b.GlyphStyle = draw.GlyphStyle{
		Color:  line.Color,
		Radius: vg.Points(1),
		Shape:  draw.CircleGlyph{},
	}
}

// swatch is a legend thumbnail: a filled, outlined rectangle.
type swatch struct {
	fill color.Color
	line draw.LineStyle
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.fill, c.ClipPolygonY(pts))
	c.StrokeLines(s.line, c.ClipLinesY(append(pts, pts[0]))...)
}
