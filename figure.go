package tufte

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Figure

// A Figure stacks several Surfaces vertically, the first on top. All
// panels use the full width of the figure and have the same height.
type Figure struct {
	Title         string
	Panels        []*Surface
	Width, Height vg.Length

	// ShareX makes all panels use the union of their x limits. Only
	// the bottom panel shows x tick labels.
	ShareX bool

	// PadY is the vertical gap between two panels.
	PadY vg.Length
}

// NewFigure creates a figure with rows many empty panels. Each panel is
// a Surface of width w and height h/rows.
func NewFigure(rows int, w, h vg.Length, shareX bool) (*Figure, error) {
	if rows < 1 {
		return nil, invalid("rows", rows, "must be positive")
	}
	f := &Figure{
		Panels: make([]*Surface, rows),
		Width:  w,
		Height: h,
		ShareX: shareX,
		PadY:   vg.Points(6),
	}
	for r := range f.Panels {
		s, err := NewSurface(w, h/vg.Length(rows))
		if err != nil {
			return nil, err
		}
		f.Panels[r] = s
	}
	return f, nil
}

// SyncX extends the x limits of all panels to their union and hides the
// x tick labels of all but the bottom panel. It is a no-op unless
// ShareX is set. Panels which were never rendered keep gonum's infinite
// initial limits and do not contribute to the union.
func (f *Figure) SyncX() {
	if !f.ShareX || len(f.Panels) == 0 {
		return
	}
	lim := unsetInterval()
	for _, s := range f.Panels {
		lim.Update(s.X.Min, s.X.Max)
	}
	if !lim.Valid() {
		return
	}
	for i, s := range f.Panels {
		s.X.Min, s.X.Max = lim.Min, lim.Max
		if i < len(f.Panels)-1 {
			if _, done := s.X.Tick.Marker.(unlabeledTicks); !done {
				s.X.Tick.Marker = unlabeledTicks{s.X.Tick.Marker}
			}
			s.X.Label.Text = ""
		}
	}
	logger.Debug("shared x limits", "min", lim.Min, "max", lim.Max, "panels", len(f.Panels))
}

// Draw draws all panels of f onto c. The data areas of the panels are
// aligned so that the x axes line up.
func (f *Figure) Draw(c draw.Canvas) {
	f.SyncX()

	if f.Title != "" && len(f.Panels) > 0 {
		st := f.Panels[0].Title.TextStyle
		st.XAlign, st.YAlign = draw.XCenter, draw.YTop
		c.FillText(st, vg.Point{X: c.Center().X, Y: c.Max.Y}, f.Title)
		c.Max.Y -= st.Height(f.Title) + f.PadY
	}

	plots := make([][]*plot.Plot, len(f.Panels))
	for r, s := range f.Panels {
		plots[r] = []*plot.Plot{s.Plot}
	}
	tiles := draw.Tiles{Rows: len(f.Panels), Cols: 1, PadY: f.PadY}
	canvases := plot.Align(plots, tiles, c)
	for r, s := range f.Panels {
		s.Draw(canvases[r][0])
	}
}

// unlabeledTicks keeps the tick marks of a Ticker but drops its labels.
type unlabeledTicks struct{ plot.Ticker }

func (u unlabeledTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, t := range u.Ticker.Ticks(min, max) {
		t.Label = ""
		ticks = append(ticks, t)
	}
	return ticks
}
