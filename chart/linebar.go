package chart

import (
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/tufte"
	"github.com/vdobler/tufte/data"
)

// LineBarOptions configures a LineBar chart. The embedded Options apply
// to both panels; YLabel is replaced by LineLabel and BarLabel.
type LineBarOptions struct {
	tufte.Options
	LineLabel string `toml:"ylinelabel" yaml:"ylinelabel"`
	BarLabel  string `toml:"ybarlabel" yaml:"ybarlabel"`

	// ShareX gives both panels the same x limits.
	ShareX bool `toml:"sharex" yaml:"sharex"`
}

// DefaultLineBarOptions returns the defaults of a LineBar chart.
func DefaultLineBarOptions() LineBarOptions {
	return LineBarOptions{
		Options:   tufte.DefaultOptions(),
		LineLabel: "yline",
		BarLabel:  "ybar",
	}
}

// LineBar combines a Line chart of YLine in the upper panel with a Bar
// chart of YBar in the lower panel over the common categories X.
type LineBar struct {
	X, YLine, YBar data.Series
}

// panels returns the two charts. X is turned into categories so that
// points and bars share their positions.
func (lb *LineBar) panels(o LineBarOptions) (*Line, *Bar) {
	x := data.AsCategories(lb.X)
	return &Line{XY: XY{X: x, Y: lb.YLine}, Style: o.LineStyle},
		&Bar{X: x, Y: lb.YBar, Align: o.Align, Width: o.BarWidth}
}

// Plot draws lb onto a new two panel Figure. Both panels are validated
// before either is drawn.
func (lb *LineBar) Plot(o LineBarOptions) (*tufte.Figure, error) {
	if err := o.Options.Validate(); err != nil {
		return nil, err
	}
	w := vg.Length(o.FigSize[0]) * vg.Inch
	h := vg.Length(o.FigSize[1]) * vg.Inch
	fig, err := tufte.NewFigure(2, w, h, o.ShareX)
	if err != nil {
		return nil, err
	}

	line, bar := lb.panels(o)
	var drawings []*tufte.Drawing
	for i, p := range []struct {
		v     tufte.Variant
		label string
	}{{line, o.LineLabel}, {bar, o.BarLabel}} {
		po := o.Options
		po.YLabel = p.label
		po.Surface = fig.Panels[i]
		c, err := tufte.NewCanvas(po)
		if err != nil {
			return nil, err
		}
		d, err := c.Prepare(p.v)
		if err != nil {
			return nil, err
		}
		drawings = append(drawings, d)
	}

	for _, d := range drawings {
		d.Commit()
	}
	fig.SyncX()
	return fig, nil
}

// PlotLineBar draws a line chart of yline above a bar chart of ybar,
// both over x.
func PlotLineBar(x, yline, ybar data.Source, t data.Table, o LineBarOptions) (*tufte.Figure, error) {
	xs, ys, err := resolveXY(x, yline, t)
	if err != nil {
		return nil, err
	}
	_, yb, err := resolveXY(x, ybar, t)
	if err != nil {
		return nil, err
	}
	lb := &LineBar{X: xs, YLine: ys, YBar: yb}
	return lb.Plot(o)
}
