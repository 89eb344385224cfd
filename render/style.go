package render

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options controls figure geometry and output format.
type Options struct {
	Format   Format
	Width    vg.Length
	Height   vg.Length
	FontSize vg.Length
	BoxWidth vg.Length // width of one box in the grouped box plot
}

// DefaultOptions returns a single-column figure (3.5in wide, aspect 1.8)
// with 9pt text, written as PGF.
func DefaultOptions() Options {
	return Options{
		Format:   PGF,
		Width:    3.5 * vg.Inch,
		Height:   3.5 / 1.8 * vg.Inch,
		FontSize: vg.Points(9),
		BoxWidth: vg.Points(5),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Format == "" {
		o.Format = d.Format
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.FontSize <= 0 {
		o.FontSize = d.FontSize
	}
	if o.BoxWidth <= 0 {
		o.BoxWidth = d.BoxWidth
	}
	return o
}

// Tableau palette, the default categorical colors of the reference figures.
var (
	TabBlue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	TabOrange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	TabGreen  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	TabRed    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	TabPurple = color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}
)

// Palette is the hue cycle for categorical groups.
var Palette = []color.Color{TabBlue, TabOrange, TabGreen, TabRed, TabPurple}

var gridColor = color.Gray{Y: 0xdd}

// Axis labels. The LaTeX variants are used for PGF and TeX output.
const (
	labelNormalizedStep    = "interactions / n²"
	labelNormalizedStepTeX = "interactions / $n^2$"
	labelLabeled           = "number of labeled agents"
	labelPhase             = "average phase"
	labelN                 = "n"
	legendRankTitle        = "ranked fraction"
)

func normalizedStepLabel(f Format) string {
	if f.LaTeX() {
		return labelNormalizedStepTeX
	}
	return labelNormalizedStep
}

// newPlot creates a plot with the shared text sizes and no axis padding,
// so both axes meet at the data corner.
func newPlot(o Options) *plot.Plot {
	p := plot.New()
	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Padding = 0
		a.Label.TextStyle.Font.Size = o.FontSize
		a.Tick.Label.Font.Size = o.FontSize
		a.Label.Padding = vg.Points(2)
	}
	p.Legend.TextStyle.Font.Size = o.FontSize
	return p
}

// ticks builds constant tick marks labeled with their %g value.
func ticks(values ...float64) plot.ConstantTicks {
	t := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		t[i] = plot.Tick{Value: v, Label: formatTick(v)}
	}
	return t
}

// margin is the blank border kept around every figure.
const margin = 2

func inset(c draw.Canvas) draw.Canvas {
	m := vg.Points(margin)
	return draw.Crop(c, m, -m, m, -m)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
