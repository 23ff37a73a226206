package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/tufte"
	"github.com/vdobler/tufte/data"
)

// Box is a minimal box plot: the box itself is left out, only the two
// whiskers from the whisker ends to the quartiles and a dot at the
// median are drawn at x = 0. Outliers are not drawn.
type Box struct {
	Values data.Series
}

var _ tufte.Variant = (*Box)(nil)

// Kind implements tufte.Variant.
func (b *Box) Kind() string { return "Box" }

// whisker line width and median marker area
const (
	boxLineWidth  = 0.5
	boxMedianArea = 5
)

func (b *Box) summary() (tufte.Summary, error) {
	if err := numeric("values", b.Values); err != nil {
		return tufte.Summary{}, err
	}
	return tufte.Summarize(b.Values.Values)
}

// AxisValues implements tufte.Variant. The y axis spans the whiskers,
// the x axis is hidden.
func (b *Box) AxisValues(pad float64) (tufte.AxisValues, error) {
	av := tufte.AxisValues{}
	sum, err := b.summary()
	if err != nil {
		return av, err
	}
	y, err := tufte.FitRange([]float64{sum.LowerWhisker, sum.UpperWhisker}, pad)
	if err != nil {
		return av, err
	}
	av.X = tufte.Axis{Range: tufte.AxisRange{Min: 0, Lower: -1, Upper: 1, Max: 0}, Hidden: true}
	av.Y = tufte.Axis{Range: y}
	return av, nil
}

// Plotters implements tufte.Variant.
func (b *Box) Plotters(st *tufte.Style, o *tufte.Options) ([]plot.Plotter, error) {
	sum, err := b.summary()
	if err != nil {
		return nil, err
	}
	col := o.ColorOr("black")

	var ps []plot.Plotter
	for _, w := range [][2]float64{
		{sum.LowerWhisker, sum.Q1},
		{sum.Q3, sum.UpperWhisker},
	} {
		l, err := plotter.NewLine(plotter.XYs{{X: 0, Y: w[0]}, {X: 0, Y: w[1]}})
		if err != nil {
			return nil, err
		}
		l.LineStyle = draw.LineStyle{Color: col, Width: vg.Points(boxLineWidth)}
		ps = append(ps, l)
	}

	median, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: sum.Median}})
	if err != nil {
		return nil, err
	}
	median.GlyphStyle = draw.GlyphStyle{
		Color:  col,
		Radius: markerRadius(boxMedianArea),
		Shape:  draw.CircleGlyph{},
	}
	if n := len(sum.Outliers()); n > 0 {
		tufte.Logger().Debug("outliers not drawn", "n", n)
	}
	return append(ps, median), nil
}

// ApplyBorders implements tufte.Variant: the x axis and both borders are
// hidden, leaving only the y ticks.
func (b *Box) ApplyBorders(s *tufte.Surface, st *tufte.Style) {
	s.HideX()
	s.Frame.Left.Visible = false
	s.Frame.Bottom.Visible = false
}
