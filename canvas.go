package tufte

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// A Variant is one kind of chart (bar, line, ...). It supplies the parts
// of the rendering which differ between chart kinds; the Canvas supplies
// the rest.
type Variant interface {
	// Kind names the chart, e.g. "Bar". It is used in default titles.
	Kind() string

	// AxisValues computes the layout of both axes with the given
	// padding fraction.
	AxisValues(pad float64) (AxisValues, error)

	// Plotters returns the primitives which draw the data. It must not
	// modify anything; all validation of the chart's options happens
	// here or in AxisValues.
	Plotters(st *Style, o *Options) ([]plot.Plotter, error)

	// ApplyBorders applies the chart specific treatment of borders and
	// axes after the base borders have been set.
	ApplyBorders(s *Surface, st *Style)
}

// ----------------------------------------------------------------------------
// Canvas

// A Canvas renders Variants onto one Surface. The Surface is either
// created by the Canvas or borrowed from Options.Surface.
type Canvas struct {
	surface *Surface
	owned   bool
	opts    Options
	style   Style
}

// NewCanvas validates o and sets up the Surface to draw on.
func NewCanvas(o Options) (*Canvas, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	st, err := DefaultStyle(vg.Length(o.FontSize), vg.Length(o.TickLabelSize))
	if err != nil {
		return nil, fmt.Errorf("tufte: cannot load fonts: %w", err)
	}
	if o.GridColor != "" {
		st.Grid.Color = NamedColor(o.GridColor)
	}

	c := &Canvas{surface: o.Surface, opts: o, style: st}
	if c.surface == nil {
		w := vg.Length(o.FigSize[0]) * vg.Inch
		h := vg.Length(o.FigSize[1]) * vg.Inch
		if c.surface, err = NewSurface(w, h); err != nil {
			return nil, err
		}
		c.owned = true
	}
	c.opts.Surface = c.surface
	return c, nil
}

// Surface returns the Surface c draws on.
func (c *Canvas) Surface() *Surface { return c.surface }

// Owned reports whether the Surface was created by c (and not borrowed
// from the caller).
func (c *Canvas) Owned() bool { return c.owned }

// Style returns the style used by c.
func (c *Canvas) Style() *Style { return &c.style }

// Options returns the options c was created with.
func (c *Canvas) Options() Options { return c.opts }

// A Drawing is a fully validated Variant ready to be committed to its
// Canvas.
type Drawing struct {
	canvas   *Canvas
	variant  Variant
	values   AxisValues
	plotters []plot.Plotter
	done     bool
}

// Prepare computes everything needed to draw v. An error is returned
// before the Surface is touched.
func (c *Canvas) Prepare(v Variant) (*Drawing, error) {
	av, err := v.AxisValues(c.opts.Pad)
	if err != nil {
		return nil, fmt.Errorf("%s plot: %w", v.Kind(), err)
	}
	ps, err := v.Plotters(&c.style, &c.opts)
	if err != nil {
		return nil, fmt.Errorf("%s plot: %w", v.Kind(), err)
	}
	return &Drawing{canvas: c, variant: v, values: av, plotters: ps}, nil
}

// Commit draws the data and renders the canvas. Committing twice is a
// no-op.
func (d *Drawing) Commit() *Surface {
	s := d.canvas.surface
	if d.done {
		return s
	}
	d.done = true
	s.Add(d.plotters...)
	d.canvas.render(d.variant, d.values)
	return s
}

// Plot draws v onto the Surface of c and returns the Surface.
func (c *Canvas) Plot(v Variant) (*Surface, error) {
	d, err := c.Prepare(v)
	if err != nil {
		return nil, err
	}
	return d.Commit(), nil
}

// Render formats the Surface for v: borders, axis limits, ticks and
// labels. Rendering is idempotent.
func (c *Canvas) Render(v Variant) error {
	av, err := v.AxisValues(c.opts.Pad)
	if err != nil {
		return fmt.Errorf("%s plot: %w", v.Kind(), err)
	}
	c.render(v, av)
	return nil
}

func (c *Canvas) render(v Variant, av AxisValues) {
	c.applyBaseBorders()
	v.ApplyBorders(c.surface, &c.style)
	c.applyLimits(av)
	c.applyTicks(av)
	c.applyAxisLabels(v.Kind(), av)
	logger.Debug("render", "chart", v.Kind(), "x", av.X.Range, "y", av.Y.Range,
		"owned", c.owned)
}

// applyBaseBorders hides the top and right border, grays out the
// remaining borders and labels and drops gonum's axis lines in favor
// of the Frame.
func (c *Canvas) applyBaseBorders() {
	p, st := c.surface.Plot, &c.style

	p.BackgroundColor = st.Background
	p.Title.TextStyle.Color = st.Title.Color
	p.Title.TextStyle.Font = st.Title.Font

	for _, a := range []struct {
		axis  *plot.Axis
		style *AxisStyle
	}{{&p.X, &st.XAxis}, {&p.Y, &st.YAxis}} {
		a.axis.LineStyle.Width = 0
		a.axis.Padding = 0
		a.axis.Label.TextStyle.Color = a.style.Label.Color
		a.axis.Label.TextStyle.Font = a.style.Label.Font
		a.axis.Tick.LineStyle = a.style.Tick.LineStyle
		a.axis.Tick.Length = a.style.Tick.Length
		a.axis.Tick.Label.Color = a.style.Tick.Label.Color
		a.axis.Tick.Label.Font = a.style.Tick.Label.Font
	}

	f := c.surface.Frame
	f.Top.Visible, f.Right.Visible = false, false
	for _, sp := range []*Spine{&f.Left, &f.Bottom} {
		sp.Visible = true
		sp.LineStyle = st.Border
		sp.Bounds = unsetInterval()
	}
}

// applyLimits sets the display range of both axes and restricts the
// borders to the observed data.
func (c *Canvas) applyLimits(av AxisValues) {
	p, f := c.surface.Plot, c.surface.Frame

	xlim, ylim := av.X.Range.Limits(), av.Y.Range.Limits()
	p.X.Min, p.X.Max = xlim.Min, xlim.Max
	p.Y.Min, p.Y.Max = ylim.Min, ylim.Max

	f.Bottom.Bounds = av.X.Range.Bounds()
	f.Left.Bounds = av.Y.Range.Bounds()
	if av.X.Hidden {
		f.Bottom.Visible = false
	}
	if av.Y.Hidden {
		f.Left.Visible = false
	}
}

// applyTicks places the ticks of the visible axes: one per category for
// nominal axes, range ticks for numeric ones.
func (c *Canvas) applyTicks(av AxisValues) {
	p := c.surface.Plot
	for _, a := range []struct {
		axis   *plot.Axis
		values Axis
	}{{&p.X, av.X}, {&p.Y, av.Y}} {
		if a.values.Hidden {
			continue
		}
		if a.values.Categories != nil {
			a.axis.Tick.Marker = CategoryTicks(a.values.Categories)
			continue
		}
		r := a.values.Range
		a.axis.Tick.Marker = RangeTicks{Min: r.Min, Max: r.Max}
	}
}

func (c *Canvas) applyAxisLabels(kind string, av AxisValues) {
	p, o := c.surface.Plot, &c.opts
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	if av.X.Hidden {
		p.X.Label.Text = ""
	}
	if av.Y.Hidden {
		p.Y.Label.Text = ""
	}
	p.Title.Text = o.Title
	if p.Title.Text == "" {
		p.Title.Text = DefaultTitle(kind, o.XLabel, o.YLabel)
	}
}

// DefaultTitle is the title used when none is configured.
func DefaultTitle(kind, xlabel, ylabel string) string {
	return fmt.Sprintf("%s plot of %s and %s", kind, xlabel, ylabel)
}
