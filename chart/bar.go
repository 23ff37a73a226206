package chart

import (
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/tufte"
	"github.com/vdobler/tufte/data"
)

// Bar is a bar chart of height Y[i] for each element of X. A categorical
// X places each bar at the position of its category, so repeated
// categories share one position. A numeric X places the i'th bar at
// position i labeled with the formatted X[i].
//
// The y axis always includes 0 and is not padded past 0. The left border
// is dropped in favor of white grid lines drawn over the bars.
type Bar struct {
	X, Y data.Series

	// Align is "center" (bars centered on their position) or "edge"
	// (bars start at their position).
	Align string

	// Width of the bars in units of the category spacing.
	Width float64
}

var _ tufte.Variant = (*Bar)(nil)

// Kind implements tufte.Variant.
func (b *Bar) Kind() string { return "Bar" }

// extent returns how far the bars reach to the left of their position
// and to the right, and the margin left and right of the outermost bars.
func (b *Bar) extent() (left, right, margin float64, err error) {
	switch strings.ToLower(b.Align) {
	case "center":
		return b.Width / 2, b.Width / 2, 0.5 - b.Width/2, nil
	case "edge":
		return 0, b.Width, 0.25, nil
	}
	return 0, 0, 0, tufte.NotOneOf("align", b.Align, "center", "edge")
}

// positions returns the x position of every bar and the tick labels of
// the positions 0, 1, ...
func (b *Bar) positions() ([]float64, []string) {
	if b.X.IsCategorical() {
		return b.X.Values, b.X.Categories
	}
	pos := make([]float64, b.X.Len())
	for i := range pos {
		pos[i] = float64(i)
	}
	return pos, b.X.Labels()
}

// AxisValues implements tufte.Variant.
func (b *Bar) AxisValues(pad float64) (tufte.AxisValues, error) {
	av := tufte.AxisValues{}
	if err := numeric("y", b.Y); err != nil {
		return av, err
	}
	left, right, margin, err := b.extent()
	if err != nil {
		return av, err
	}
	if !(b.Width > 0) {
		return av, &tufte.InvalidArgumentError{Option: "barwidth", Value: b.Width, Reason: "must be positive"}
	}
	if b.Y.Len() == 0 {
		return av, tufte.ErrEmptyInput
	}

	_, labels := b.positions()
	lo, hi := -left-margin, float64(len(labels)-1)+right+margin
	av.X = tufte.Axis{
		Range:      tufte.AxisRange{Min: lo, Lower: lo, Upper: hi, Max: hi},
		Categories: labels,
	}

	y, err := tufte.FitRange(b.Y.Values, pad)
	if err != nil {
		return av, err
	}
	y = y.Include(0, pad)
	if y.Min >= 0 {
		y.Lower = 0
	}
	if y.Max <= 0 {
		y.Upper = 0
	}
	av.Y = tufte.Axis{Range: y}
	return av, nil
}

// Plotters implements tufte.Variant. The bars are drawn in o.Color
// (default LightGray) outlined by o.EdgeColor, followed by the grid lines.
func (b *Bar) Plotters(st *tufte.Style, o *tufte.Options) ([]plot.Plotter, error) {
	left, right, _, err := b.extent()
	if err != nil {
		return nil, err
	}

	bars := &Bars{
		Rects: make([]Rect, 0, b.Y.Len()),
		Fill:  o.ColorOr("LightGray"),
		Border: draw.LineStyle{
			Color: tufte.WithAlpha(tufte.NamedColor(o.EdgeColor), o.Alpha),
			Width: vg.Points(o.LineWidth),
		},
	}
	pos, _ := b.positions()
	for i, y := range b.Y.Values {
		x := pos[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		bars.Rects = append(bars.Rects, Rect{X: x - left, Y: 0, U: x + right, V: y})
	}

	return []plot.Plotter{bars, GridLines{st.Grid}}, nil
}

// ApplyBorders implements tufte.Variant: the left border and the y tick
// marks are removed, the bottom border is lightened and the x tick labels
// are rotated if they would overlap.
func (b *Bar) ApplyBorders(s *tufte.Surface, st *tufte.Style) {
	s.Frame.Left.Visible = false
	s.Frame.Bottom.LineStyle = st.LightBorder
	s.Y.Tick.LineStyle.Width = 0
	s.Y.Tick.Length = 0

	label := &s.X.Tick.Label
	if b.overlapping(s.Width, *label) {
		label.Rotation = math.Pi / 2
		label.XAlign, label.YAlign = draw.XRight, draw.YCenter
	} else {
		label.Rotation = 0
		label.XAlign, label.YAlign = draw.XCenter, draw.YTop
	}
}

// overlapping reports whether the widest x tick label takes up 90% or
// more of the space available per bar on a surface of the given width.
func (b *Bar) overlapping(width vg.Length, sty draw.TextStyle) bool {
	_, labels := b.positions()
	n := len(labels)
	if n == 0 || sty.Font.Name() == "" {
		return false
	}
	var widest vg.Length
	for _, l := range labels {
		if w := sty.Width(l); w > widest {
			widest = w
		}
	}
	spacing := width / vg.Length(n)
	return float64(widest) >= 0.9*float64(spacing)
}
