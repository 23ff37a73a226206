package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Bars

// A Rect is a rectangle in data coordinates with corners (X,Y) and (U,V).
type Rect struct{ X, Y, U, V float64 }

// Bars draws rectangles. The coordinates are the outside coordinates,
// i.e. if the border is drawn for the rectangle then this border is drawn
// inside the rectangle given by the coordinates.
type Bars struct {
	Rects []Rect

	Fill   color.Color
	Border draw.LineStyle
}

var (
	_ plot.Plotter    = (*Bars)(nil)
	_ plot.DataRanger = (*Bars)(nil)
)

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// clipRect clips rect to canvas. The returned rectangle is in the canonical form.
func clipRect(rect vg.Rectangle, canvas draw.Canvas) vg.Rectangle {
	rect = CanonicRectangle(rect)
	limit := CanonicRectangle(canvas.Rectangle)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}
	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	return rect
}

// Plot implements plot.Plotter.
func (b *Bars) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, r := range b.Rects {
		if v := r.X + r.Y + r.U + r.V; math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rect := vg.Rectangle{
			Min: vg.Point{X: trX(r.X), Y: trY(r.Y)},
			Max: vg.Point{X: trX(r.U), Y: trY(r.V)},
		}
		rect = clipRect(rect, c)
		if rect.Min.X >= rect.Max.X || rect.Min.Y >= rect.Max.Y {
			continue // completely outside or empty
		}

		if b.Fill != nil {
			c.SetColor(b.Fill)
			c.Fill(rect.Path())
		}
		if b.Border.Color == nil || b.Border.Width <= 0 {
			continue
		}
		w := 0.499 * b.Border.Width
		rect.Min.X += w
		rect.Min.Y += w
		rect.Max.X -= w
		rect.Max.Y -= w
		c.SetColor(b.Border.Color)
		c.SetLineWidth(b.Border.Width)
		c.SetLineDash(b.Border.Dashes, b.Border.DashOffs)
		c.Stroke(rect.Path())
	}
}

// DataRange implements plot.DataRanger.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, r := range b.Rects {
		xmin, xmax = math.Min(xmin, math.Min(r.X, r.U)), math.Max(xmax, math.Max(r.X, r.U))
		ymin, ymax = math.Min(ymin, math.Min(r.Y, r.V)), math.Max(ymax, math.Max(r.Y, r.V))
	}
	return xmin, xmax, ymin, ymax
}

// ----------------------------------------------------------------------------
// Grid

// GridLines draws horizontal lines across the whole data area at the
// major y ticks of the plot. A tick at the lower y limit is skipped so
// that the bottom border stays visible.
type GridLines struct {
	draw.LineStyle
}

// Plot implements plot.Plotter.
func (g GridLines) Plot(c draw.Canvas, p *plot.Plot) {
	if g.Color == nil || g.Width <= 0 || p.Y.Tick.Marker == nil {
		return
	}
	_, trY := p.Transforms(&c)
	for _, t := range p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max) {
		if t.IsMinor() || t.Value <= p.Y.Min || t.Value > p.Y.Max {
			continue
		}
		y := trY(t.Value)
		c.StrokeLine2(g.LineStyle, c.Min.X, y, c.Max.X, y)
	}
}

// ----------------------------------------------------------------------------
// Helpers

// markerRadius converts a marker area in square points to the radius of
// a circle glyph: the area is the square of the marker's diameter.
func markerRadius(area float64) vg.Length {
	return vg.Points(math.Sqrt(area) / 2)
}

// pointsOf pairs xs and ys, dropping pairs with a NaN or infinite
// coordinate.
func pointsOf(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		x, y := xs[i], ys[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

// dashPatterns are the dash patterns of the plain line styles in
// multiples of the line width.
var dashPatterns = map[string][]float64{
	"-":       nil,
	"--":      {3.7, 1.6},
	":":       {1, 1.65},
	"-.":      {6.4, 1.6, 1, 1.6},
	"solid":   nil,
	"dashed":  {3.7, 1.6},
	"dotted":  {1, 1.65},
	"dashdot": {6.4, 1.6, 1, 1.6},
}

func dashes(style string, width float64) []vg.Length {
	var ds []vg.Length
	for _, d := range dashPatterns[style] {
		ds = append(ds, vg.Points(d*math.Max(width, 1)))
	}
	return ds
}
