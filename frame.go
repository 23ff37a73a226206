package tufte

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Frame

// A Spine is one border of the data area.
type Spine struct {
	Visible bool
	draw.LineStyle

	// Bounds restricts the drawn border to the data interval
	// [Bounds.Min, Bounds.Max]. An unset (NaN) interval spans the whole
	// data area.
	Bounds Interval
}

// Frame draws the borders of the data area of a plot. Unlike the axis
// lines of gonum/plot each border may be hidden and may cover only the
// range of the data (a "range frame").
//
// Frame implements plot.Plotter but not plot.DataRanger, so adding it to
// a plot does not change the axis ranges.
type Frame struct {
	Left, Bottom, Top, Right Spine
}

// NewFrame returns a Frame with all four borders visible and unbounded.
func NewFrame() *Frame {
	sp := Spine{
		Visible:   true,
		LineStyle: draw.LineStyle{Color: Foreground, Width: vg.Length(0.75)},
		Bounds:    unsetInterval(),
	}
	return &Frame{Left: sp, Bottom: sp, Top: sp, Right: sp}
}

// Plot implements plot.Plotter.
func (f *Frame) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)

	span := func(b Interval, tr func(float64) vg.Length, min, max vg.Length) (vg.Length, vg.Length) {
		if !b.Valid() {
			return min, max
		}
		lo, hi := tr(b.Min), tr(b.Max)
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo < min {
			lo = min
		}
		if hi > max {
			hi = max
		}
		return lo, hi
	}

	for _, h := range []struct {
		sp *Spine
		y  vg.Length
	}{{&f.Bottom, c.Min.Y}, {&f.Top, c.Max.Y}} {
		if !h.sp.drawn() {
			continue
		}
		x0, x1 := span(h.sp.Bounds, trX, c.Min.X, c.Max.X)
		if x0 > x1 {
			continue // bounds lie outside of the data area
		}
		c.StrokeLine2(h.sp.LineStyle, x0, h.y, x1, h.y)
	}

	for _, v := range []struct {
		sp *Spine
		x  vg.Length
	}{{&f.Left, c.Min.X}, {&f.Right, c.Max.X}} {
		if !v.sp.drawn() {
			continue
		}
		y0, y1 := span(v.sp.Bounds, trY, c.Min.Y, c.Max.Y)
		if y0 > y1 {
			continue
		}
		c.StrokeLine2(v.sp.LineStyle, v.x, y0, v.x, y1)
	}
}

func (sp *Spine) drawn() bool {
	return sp.Visible && sp.Color != nil && sp.Width > 0
}
