package tufte

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Surface

// A Surface is the drawable a chart is rendered into: a gonum plot
// together with the size it is meant to be drawn at and the Frame which
// replaces the plot's axis lines.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	*plot.Plot
	Width, Height vg.Length
	Frame         *Frame
}

// NewSurface creates an empty Surface of the given size.
func NewSurface(width, height vg.Length) (*Surface, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	return AdoptPlot(p, width, height), nil
}

// AdoptPlot wraps an existing plot. A Frame is added to p, everything
// else in p is kept.
func AdoptPlot(p *plot.Plot, width, height vg.Length) *Surface {
	s := &Surface{Plot: p, Width: width, Height: height, Frame: NewFrame()}
	p.Add(s.Frame)
	return s
}
