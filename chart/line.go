package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/tufte"
	"github.com/vdobler/tufte/data"
)

// XY is the coordinate data of charts which place one mark per (x,y)
// pair. Categorical coordinates are placed at their category position.
type XY struct {
	X, Y data.Series
}

// AxisValues fits both axes to the data, padded by pad. Neither axis is
// forced to include 0.
func (xy XY) AxisValues(pad float64) (tufte.AxisValues, error) {
	av := tufte.AxisValues{}
	for _, a := range []struct {
		name string
		s    data.Series
		axis *tufte.Axis
	}{{"x", xy.X, &av.X}, {"y", xy.Y, &av.Y}} {
		r, err := tufte.FitRange(a.s.Values, pad)
		if err != nil {
			return av, err
		}
		a.axis.Range = r
		a.axis.Categories = a.s.Categories
	}
	return av, nil
}

// ApplyBorders keeps the base borders.
func (xy XY) ApplyBorders(s *tufte.Surface, st *tufte.Style) {}

func (xy XY) points() plotter.XYs { return pointsOf(xy.X.Values, xy.Y.Values) }

// ----------------------------------------------------------------------------
// Line

// Line is a line chart. With the "tufte" style the line is interrupted
// around each data point: every point is drawn as a marker on top of a
// bigger white halo. The styles "-", "--", ":" and "-." draw a plain
// solid, dashed, dotted or dash-dotted line; "solid", "dashed", "dotted"
// and "dashdot" are their long names.
type Line struct {
	XY
	Style string
}

var _ tufte.Variant = (*Line)(nil)

// Kind implements tufte.Variant.
func (l *Line) Kind() string { return "Line" }

// Plotters implements tufte.Variant.
func (l *Line) Plotters(st *tufte.Style, o *tufte.Options) ([]plot.Plotter, error) {
	style := l.Style
	if style == "" {
		style = "tufte"
	}
	if _, ok := dashPatterns[style]; !ok && style != "tufte" {
		return nil, tufte.NotOneOf("linestyle", l.Style,
			"tufte", "-", "--", ":", "-.", "solid", "dashed", "dotted", "dashdot")
	}

	col := o.ColorOr("black")
	pts := l.points()
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle = draw.LineStyle{
		Color:  col,
		Width:  vg.Points(o.LineWidth),
		Dashes: dashes(style, o.LineWidth),
	}
	if style != "tufte" {
		if o.MarkerSize != tufte.DefaultOptions().MarkerSize {
			tufte.Logger().Warn("marker options are being ignored", "linestyle", style)
		}
		return []plot.Plotter{line}, nil
	}

	r := markerRadius(o.MarkerSize)
	halo, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	halo.GlyphStyle = draw.GlyphStyle{
		Color:  st.Background,
		Radius: vg.Length(st.HaloScale) * r,
		Shape:  draw.CircleGlyph{},
	}
	marks, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	marks.GlyphStyle = draw.GlyphStyle{Color: col, Radius: r, Shape: draw.CircleGlyph{}}

	return []plot.Plotter{line, halo, marks}, nil
}

// ----------------------------------------------------------------------------
// Scatter

// Scatter is a scatter plot: a single layer of markers.
type Scatter struct {
	XY
}

var _ tufte.Variant = (*Scatter)(nil)

// Kind implements tufte.Variant.
func (sc *Scatter) Kind() string { return "Scatter" }

// Plotters implements tufte.Variant.
func (sc *Scatter) Plotters(st *tufte.Style, o *tufte.Options) ([]plot.Plotter, error) {
	if o.LineStyle != "" && o.LineStyle != "tufte" {
		tufte.Logger().Warn("line style is ignored by scatter plots", "linestyle", o.LineStyle)
	}
	marks, err := plotter.NewScatter(sc.points())
	if err != nil {
		return nil, err
	}
	marks.GlyphStyle = draw.GlyphStyle{
		Color:  o.ColorOr("black"),
		Radius: markerRadius(o.MarkerSize),
		Shape:  draw.CircleGlyph{},
	}
	return []plot.Plotter{marks}, nil
}
