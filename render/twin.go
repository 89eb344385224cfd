package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// twinAxis is a secondary y axis drawn along the right edge of a plot's
// data area. gonum/plot only draws axes on the left and bottom, so the
// secondary series is plotted in host coordinates (see toHost) and this
// axis labels the same positions in its own units.
type twinAxis struct {
	Min, Max float64

	Label      string
	LabelStyle text.Style

	Ticks      []plot.Tick
	TickLabel  text.Style
	TickStyle  draw.LineStyle
	TickLength vg.Length

	LineStyle draw.LineStyle
	Padding   vg.Length

	host *plot.Axis
}

// newTwinAxis creates a right-hand axis styled like host's left axis.
func newTwinAxis(host *plot.Axis, min, max float64) *twinAxis {
	a := &twinAxis{
		Min:        min,
		Max:        max,
		LabelStyle: host.Label.TextStyle,
		TickLabel:  host.Tick.Label,
		TickStyle:  host.Tick.LineStyle,
		TickLength: host.Tick.Length,
		LineStyle:  host.LineStyle,
		Padding:    vg.Points(2),
		host:       host,
	}
	a.LabelStyle.Rotation = math.Pi / 2
	a.LabelStyle.XAlign = text.XCenter
	a.LabelStyle.YAlign = text.YTop
	a.TickLabel.XAlign = text.XLeft
	a.TickLabel.YAlign = text.YCenter
	return a
}

// norm maps v to [0, 1] along the axis.
func (a *twinAxis) norm(v float64) float64 {
	return (v - a.Min) / (a.Max - a.Min)
}

// toHost maps v from this axis' units into the host axis' units. The
// host range must be fixed before the plot is drawn.
func (a *twinAxis) toHost(v float64) float64 {
	return a.host.Min + a.norm(v)*(a.host.Max-a.host.Min)
}

// hostXYs pairs xs with ys mapped into host units.
func (a *twinAxis) hostXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: a.toHost(ys[i])}
	}
	return pts
}

// visibleTicks returns the ticks inside [Min, Max].
func (a *twinAxis) visibleTicks() []plot.Tick {
	var out []plot.Tick
	for _, t := range a.Ticks {
		if t.Value >= a.Min && t.Value <= a.Max {
			out = append(out, t)
		}
	}
	return out
}

// size returns the horizontal space the axis needs right of the data area.
func (a *twinAxis) size() vg.Length {
	w := a.TickLength + a.Padding
	var labels vg.Length
	for _, t := range a.visibleTicks() {
		if t.IsMinor() {
			continue
		}
		if tw := a.TickLabel.Width(t.Label); tw > labels {
			labels = tw
		}
	}
	w += labels
	if a.Label != "" {
		w += a.Padding + a.LabelStyle.Height(a.Label)
	}
	return w
}

// draw renders the axis along the right edge of the data canvas dc.
func (a *twinAxis) draw(dc draw.Canvas) {
	x := dc.Max.X
	dc.StrokeLine2(a.LineStyle, x, dc.Min.Y, x, dc.Max.Y)

	var labels vg.Length
	for _, t := range a.visibleTicks() {
		y := dc.Y(a.norm(t.Value))
		length := a.TickLength
		if t.IsMinor() {
			length /= 2
		}
		dc.StrokeLine2(a.TickStyle, x, y, x+length, y)
		if t.IsMinor() {
			continue
		}
		dc.FillText(a.TickLabel, vg.Point{X: x + a.TickLength + a.Padding, Y: y}, t.Label)
		if tw := a.TickLabel.Width(t.Label); tw > labels {
			labels = tw
		}
	}

	if a.Label == "" {
		return
	}
	lx := x + a.TickLength + a.Padding + labels + a.Padding
	ly := dc.Min.Y + (dc.Max.Y-dc.Min.Y)/2
	dc.FillText(a.LabelStyle, vg.Point{X: lx, Y: ly}, a.Label)
}
