package tufte

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// points is a minimal Variant drawing a scatter of xs and ys.
type points struct {
	xs, ys []float64
	hideX  bool
	err    error
}

func (p *points) Kind() string { return "Points" }

func (p *points) AxisValues(pad float64) (AxisValues, error) {
	if p.err != nil {
		return AxisValues{}, p.err
	}
	x, err := FitRange(p.xs, pad)
	if err != nil {
		return AxisValues{}, err
	}
	y, err := FitRange(p.ys, pad)
	if err != nil {
		return AxisValues{}, err
	}
	return AxisValues{X: Axis{Range: x, Hidden: p.hideX}, Y: Axis{Range: y}}, nil
}

func (p *points) Plotters(st *Style, o *Options) ([]plot.Plotter, error) {
	xys := make(plotter.XYs, len(p.xs))
	for i := range p.xs {
		xys[i].X, xys[i].Y = p.xs[i], p.ys[i]
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	return []plot.Plotter{s}, nil
}

func (p *points) ApplyBorders(s *Surface, st *Style) {}

var rangeTicksTests = []struct {
	min, max    float64
	first, last string
}{
	{0, 84, "0", "84"},
	{14.375, 65.375, "14.375", "65.375"},
	{3, 3, "3", "3"},
	{-1.5, 1.5, "-1.5", "1.5"},
}

func TestRangeTicks(t *testing.T) {
	for i, tc := range rangeTicksTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			lim := AxisRange{Min: tc.min, Lower: tc.min, Upper: tc.max, Max: tc.max}.Limits()
			ticks := RangeTicks{Min: tc.min, Max: tc.max}.Ticks(lim.Min, lim.Max)
			require.NotEmpty(t, ticks)
			assert.Equal(t, tc.first, ticks[0].Label)
			assert.Equal(t, tc.last, ticks[len(ticks)-1].Label)
			if tc.min == tc.max {
				assert.Len(t, ticks, 1)
				return
			}
			require.True(t, len(ticks) > 2, "no inner ticks in %v", ticks)
			for j, tk := range ticks[1:] {
				assert.False(t, tk.IsMinor())
				assert.True(t, tk.Value > ticks[j].Value, "ticks not increasing: %v", ticks)
			}
		})
	}
}

func TestCategoryTicks(t *testing.T) {
	ticks := CategoryTicks([]string{"a", "b"}).Ticks(-1, 5)
	assert.Equal(t, []plot.Tick{{Value: 0, Label: "a"}, {Value: 1, Label: "b"}}, ticks)
}

func TestFormatTick(t *testing.T) {
	for _, tc := range []struct {
		x    float64
		want string
	}{
		{0, "0"}, {math.Copysign(0, -1), "0"}, {84, "84"}, {88.2, "88.2"},
		{1e7, "1e+07"}, {0.125, "0.125"},
	} {
		assert.Equal(t, tc.want, FormatTick(tc.x))
	}
}

func TestNewCanvas(t *testing.T) {
	c, err := NewCanvas(DefaultOptions())
	require.NoError(t, err)
	assert.True(t, c.Owned())
	assert.Equal(t, 20*vg.Inch, c.Surface().Width)
	assert.Equal(t, 10*vg.Inch, c.Surface().Height)

	s, err := NewSurface(300, 200)
	require.NoError(t, err)
	o := DefaultOptions()
	o.Surface = s
	o.GridColor = "Black"
	c, err = NewCanvas(o)
	require.NoError(t, err)
	assert.False(t, c.Owned())
	assert.Same(t, s, c.Surface())
	assert.Equal(t, MustParseColor("black"), c.Style().Grid.Color)

	o.Alpha = 3
	_, err = NewCanvas(o)
	var ia *InvalidArgumentError
	assert.True(t, errors.As(err, &ia), "got %v", err)
}

func TestCanvasRender(t *testing.T) {
	o := DefaultOptions()
	o.XLabel, o.YLabel = "time", "speed"
	c, err := NewCanvas(o)
	require.NoError(t, err)

	v := &points{xs: []float64{0, 10}, ys: []float64{5, 7}}
	s, err := c.Plot(v)
	require.NoError(t, err)

	assert.Equal(t, "Points plot of time and speed", s.Title.Text)
	assert.Equal(t, "time", s.X.Label.Text)
	assert.InDelta(t, -0.5, s.X.Min, 1e-12)
	assert.InDelta(t, 10.5, s.X.Max, 1e-12)
	assert.Equal(t, Interval{0, 10}, s.Frame.Bottom.Bounds)
	assert.Equal(t, Interval{5, 7}, s.Frame.Left.Bounds)
	assert.False(t, s.Frame.Top.Visible)
	assert.False(t, s.Frame.Right.Visible)
	assert.Equal(t, vg.Length(0), s.X.LineStyle.Width)
	assert.Equal(t, Foreground, s.X.Tick.Label.Color)

	ticks := s.Y.Tick.Marker.Ticks(s.Y.Min, s.Y.Max)
	assert.Equal(t, 5.0, ticks[0].Value)
	assert.Equal(t, 7.0, ticks[len(ticks)-1].Value)

	// Rendering again changes nothing.
	xmin, xmax := s.X.Min, s.X.Max
	require.NoError(t, c.Render(v))
	assert.Equal(t, xmin, s.X.Min)
	assert.Equal(t, xmax, s.X.Max)
	assert.Equal(t, ticks, s.Y.Tick.Marker.Ticks(s.Y.Min, s.Y.Max))

	img := vgimg.New(4*vg.Inch, 3*vg.Inch)
	s.Draw(draw.New(img))
}

func TestCanvasHiddenAxis(t *testing.T) {
	c, err := NewCanvas(DefaultOptions())
	require.NoError(t, err)
	s, err := c.Plot(&points{xs: []float64{1}, ys: []float64{1}, hideX: true})
	require.NoError(t, err)
	assert.Equal(t, "", s.X.Label.Text)
	assert.False(t, s.Frame.Bottom.Visible)
	// degenerate ranges are widened
	assert.InDelta(t, 0.95, s.X.Min, 1e-12)
	assert.InDelta(t, 1.05, s.X.Max, 1e-12)
}

func TestPrepareDoesNotTouchSurface(t *testing.T) {
	s, err := NewSurface(300, 200)
	require.NoError(t, err)
	o := DefaultOptions()
	o.Surface = s
	c, err := NewCanvas(o)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = c.Plot(&points{err: boom})
	assert.True(t, errors.Is(err, boom))
	assert.True(t, s.Frame.Top.Visible)
	assert.Equal(t, "", s.Title.Text)

	_, err = c.Plot(&points{})
	assert.True(t, errors.Is(err, ErrEmptyInput))

	d, err := c.Prepare(&points{xs: []float64{1, 2}, ys: []float64{3, 4}})
	require.NoError(t, err)
	assert.True(t, s.Frame.Top.Visible)
	assert.Same(t, s, d.Commit())
	assert.False(t, s.Frame.Top.Visible)
}

func TestFrame(t *testing.T) {
	f := NewFrame()
	for _, sp := range []Spine{f.Left, f.Bottom, f.Top, f.Right} {
		assert.True(t, sp.drawn())
		assert.False(t, sp.Bounds.Valid())
	}
	f.Left.Visible = false
	assert.False(t, f.Left.drawn())
	f.Bottom.Width = 0
	assert.False(t, f.Bottom.drawn())

	// Drawing bounds outside the data area must not fail.
	s, err := NewSurface(200, 100)
	require.NoError(t, err)
	s.X.Min, s.X.Max, s.Y.Min, s.Y.Max = 0, 1, 0, 1
	s.Frame.Bottom.Bounds = Interval{5, 6}
	s.Frame.Left.Bounds = Interval{0.2, 0.8}
	s.Draw(draw.New(vgimg.New(200, 100)))
}

func TestFigure(t *testing.T) {
	_, err := NewFigure(0, 100, 100, false)
	assert.Error(t, err)

	f, err := NewFigure(2, 400, 300, true)
	require.NoError(t, err)
	require.Len(t, f.Panels, 2)
	assert.Equal(t, vg.Length(150), f.Panels[0].Height)

	for i, p := range f.Panels {
		p.X.Min, p.X.Max = float64(i), float64(2+i)
		p.Y.Min, p.Y.Max = 0, 1
		p.X.Tick.Marker = CategoryTicks([]string{"a", "b", "c", "d"})
	}
	f.SyncX()
	f.SyncX()
	for _, p := range f.Panels {
		assert.Equal(t, 0.0, p.X.Min)
		assert.Equal(t, 3.0, p.X.Max)
	}
	top := f.Panels[0].X.Tick.Marker.Ticks(0, 3)
	require.Len(t, top, 4)
	assert.Equal(t, "", top[0].Label)
	bottom := f.Panels[1].X.Tick.Marker.Ticks(0, 3)
	assert.Equal(t, "a", bottom[0].Label)

	f.Title = "Two panels"
	f.Draw(draw.New(vgimg.New(400, 300)))
}

func TestFigureSyncXSkipsUnrendered(t *testing.T) {
	f, err := NewFigure(2, 400, 300, true)
	require.NoError(t, err)
	f.SyncX()
	for _, p := range f.Panels {
		assert.True(t, math.IsInf(p.X.Min, 1), "untouched panel got %v", p.X.Min)
	}

	f.Panels[1].X.Min, f.Panels[1].X.Max = 2, 5
	f.SyncX()
	for _, p := range f.Panels {
		assert.Equal(t, 2.0, p.X.Min)
		assert.Equal(t, 5.0, p.X.Max)
	}
}
