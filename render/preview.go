package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sartorproj/rankplot/metrics"
	"github.com/sartorproj/rankplot/table"
)

// ErrNoData is returned when a preview is requested for an empty run.
var ErrNoData = errors.New("no data to preview")

// Preview size in pixels.
const (
	PreviewWidth  = 1050
	PreviewHeight = 583
)

// WritePreview renders the run chart with go-chart, which draws a
// secondary y axis natively. It is a quick raster or SVG look at the data
// for when LaTeX is not at hand; only PNG and SVG are supported.
func WritePreview(w io.Writer, run *metrics.Run, f Format) error {
	var rp chart.RendererProvider
	switch f {
	case PNG:
		rp = chart.PNG
	case SVG:
		rp = chart.SVG
	default:
		return fmt.Errorf("%w: preview supports png and svg, not %q", ErrFormat, string(f))
	}
	if run.Len() == 0 {
		return ErrNoData
	}

	xmax := table.Max(run.NormalizedStep)
	if !(xmax > 0) {
		xmax = 1
	}

	ch := chart.Chart{
		Width:      PreviewWidth,
		Height:     PreviewHeight,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  labelNormalizedStep,
			Range: &chart.ContinuousRange{Min: 0, Max: xmax},
		},
		YAxis: chart.YAxis{
			Name:      labelLabeled,
			NameStyle: chart.Style{FontColor: previewColor(TabBlue)},
			Style:     chart.Style{FontColor: previewColor(TabBlue)},
			Range:     &chart.ContinuousRange{Min: 0, Max: LabeledMax},
			Ticks:     chartTicks(labeledTicks),
		},
		YAxisSecondary: chart.YAxis{
			Name:      labelPhase,
			NameStyle: chart.Style{FontColor: previewColor(TabRed)},
			Style:     chart.Style{FontColor: previewColor(TabRed)},
			Range:     &chart.ContinuousRange{Min: 0, Max: PhaseMax},
			Ticks:     chartTicks(phaseTicks),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    labelPhase,
				YAxis:   chart.YAxisSecondary,
				XValues: run.NormalizedStep,
				YValues: run.Phase,
				Style: chart.Style{
					StrokeColor:     previewColor(TabRed),
					StrokeWidth:     2,
					StrokeDashArray: []float64{8, 4},
				},
			},
			chart.ContinuousSeries{
				Name:    labelLabeled,
				XValues: run.NormalizedStep,
				YValues: run.LabeledFloats(),
				Style: chart.Style{
					StrokeColor: previewColor(TabBlue),
					StrokeWidth: 2,
				},
			},
		},
	}

	if err := ch.Render(rp, w); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	return nil
}

// SavePreview writes the go-chart preview into the file at path; the
// format comes from the extension.
func SavePreview(path string, run *metrics.Run) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return saveFile(path, func(w io.Writer) error {
		return WritePreview(w, run, f)
	})
}

func chartTicks(values []float64) []chart.Tick {
	t := make([]chart.Tick, len(values))
	for i, v := range values {
		t[i] = chart.Tick{Value: v, Label: formatTick(v)}
	}
	return t
}

func previewColor(c color.Color) drawing.Color {
	r, g, b, a := c.RGBA()
	return drawing.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
